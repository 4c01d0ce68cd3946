package ristretto255

import (
	"decaf.mleku.dev"
)

// Sign produces a deterministic 64-byte Schnorr signature over msg:
// the encoding of the nonce element R followed by the canonical
// encoding of s = r + e*secret mod l.
func Sign(priv *PrivateKey, msg []byte) []byte {
	tr := decaf.NewTranscript(domainSignMessage)
	tr.Absorb(msg)
	return SignTranscript(priv, tr)
}

// Verify checks a 64-byte signature over msg against a 32-byte
// public-key encoding. Any failure returns ErrVerify.
func Verify(sig, pub, msg []byte) error {
	tr := decaf.NewTranscript(domainSignMessage)
	tr.Absorb(msg)
	return VerifyTranscript(sig, pub, tr)
}

// SignTranscript signs a caller-built transcript. The transcript is
// squeezed (finalizing it) into a digest that both the nonce and the
// challenge derivations commit to.
func SignTranscript(priv *PrivateKey, tr decaf.Transcript) []byte {
	var md [wideScalarBytes]byte
	tr.Squeeze(md[:])
	tr.Clear()

	var wide [wideScalarBytes]byte
	nt := decaf.NewTranscript(domainSignNonce)
	nt.Absorb(priv.sym[:])
	nt.Absorb(md[:])
	nt.Squeeze(wide[:])
	nt.Clear()
	r := NewScalar()
	if _, err := r.SetUniformBytes(wide[:]); err != nil {
		panic("ristretto255: scalar reduction failed: " + err.Error())
	}
	wipeBytes(wide[:])

	var nonce Element
	nonce.ScalarBaseMul(r)
	sig := nonce.Encode(nil)

	e := challengeScalar(sig[:SerBytes], priv.pub[:], md[:])

	s := NewScalar()
	s.Multiply(e, &priv.secretScalar)
	s.Add(s, r)
	r.Set(NewScalar())

	sig = append(sig, s.Bytes()...)
	s.Set(NewScalar())
	return sig
}

// VerifyTranscript checks a signature over a caller-built transcript.
func VerifyTranscript(sig, pub []byte, tr decaf.Transcript) error {
	var md [wideScalarBytes]byte
	tr.Squeeze(md[:])
	tr.Clear()

	if len(sig) != SignatureBytes {
		return ErrVerify
	}
	var nonce, pubElem Element
	if err := nonce.Decode(sig[:SerBytes], true); err != nil {
		return ErrVerify
	}
	if err := pubElem.Decode(pub, true); err != nil {
		return ErrVerify
	}
	s := NewScalar()
	if _, err := s.SetCanonicalBytes(sig[SerBytes:]); err != nil {
		return ErrVerify
	}

	e := challengeScalar(sig[:SerBytes], pub, md[:])

	var lhs, rhs Element
	lhs.ScalarBaseMul(s)
	rhs.ScalarMul(&pubElem, e)
	rhs.Add(&rhs, &nonce)
	if lhs.Equal(&rhs) != 1 {
		return ErrVerify
	}
	return nil
}

// challengeScalar derives the Schnorr challenge from the nonce
// encoding, the public key encoding and the message digest.
func challengeScalar(nonceEnc, pub, md []byte) *Scalar {
	ct := decaf.NewTranscript(domainSignChallenge)
	ct.Absorb(nonceEnc)
	ct.Absorb(pub)
	ct.Absorb(md)
	var wide [wideScalarBytes]byte
	ct.Squeeze(wide[:])
	ct.Clear()
	e := NewScalar()
	if _, err := e.SetUniformBytes(wide[:]); err != nil {
		panic("ristretto255: scalar reduction failed: " + err.Error())
	}
	wipeBytes(wide[:])
	return e
}
