package decaf

import "unsafe"

// Sign produces a deterministic 112-byte Schnorr signature over msg:
// the encoding of the nonce point R followed by the canonical encoding
// of s = r + e*secret mod l.
func Sign(priv *PrivateKey, msg []byte) []byte {
	tr := NewTranscript(domainSignMessage)
	tr.Absorb(msg)
	return SignTranscript(priv, tr)
}

// Verify checks a 112-byte signature over msg against a 56-byte
// public-key encoding. Any failure, malformed signature or key
// included, returns ErrVerify.
func Verify(sig, pub, msg []byte) error {
	tr := NewTranscript(domainSignMessage)
	tr.Absorb(msg)
	return VerifyTranscript(sig, pub, tr)
}

// SignTranscript signs a caller-built transcript, so protocols can
// sign a running transcript instead of a byte message. The transcript
// is squeezed (finalizing it) into a digest that both the nonce and
// the challenge derivations commit to.
func SignTranscript(priv *PrivateKey, tr Transcript) []byte {
	var md [wideScalarBytes]byte
	tr.Squeeze(md[:])
	tr.Clear()

	// Deterministic nonce from the seed and the message digest.
	var wide [wideScalarBytes]byte
	nt := NewTranscript(domainSignNonce)
	nt.Absorb(priv.sym[:])
	nt.Absorb(md[:])
	nt.Squeeze(wide[:])
	nt.Clear()
	var r Scalar
	r.SetUniformBytes(wide[:])
	memclear(unsafe.Pointer(&wide[0]), wideScalarBytes)

	var nonce Point
	nonce.ScalarBaseMul(&r)
	sig := nonce.Encode(nil)

	e := challengeScalar(sig[:SerBytes], priv.pub[:], md[:])

	var s Scalar
	s.Mul(e, &priv.secretScalar)
	s.Add(&s, &r)
	r.clear()

	sig = s.Bytes(sig)
	s.clear()
	e.clear()
	return sig
}

// VerifyTranscript checks a signature over a caller-built transcript.
func VerifyTranscript(sig, pub []byte, tr Transcript) error {
	var md [wideScalarBytes]byte
	tr.Squeeze(md[:])
	tr.Clear()

	if len(sig) != SignatureBytes {
		return ErrVerify
	}
	var nonce, pubPoint Point
	if err := nonce.Decode(sig[:SerBytes], true); err != nil {
		return ErrVerify
	}
	if err := pubPoint.Decode(pub, true); err != nil {
		return ErrVerify
	}
	var s Scalar
	if err := s.SetCanonicalBytes(sig[SerBytes:]); err != nil {
		return ErrVerify
	}

	e := challengeScalar(sig[:SerBytes], pub, md[:])

	var lhs, rhs Point
	lhs.ScalarBaseMul(&s)
	rhs.ScalarMul(&pubPoint, e)
	rhs.Add(&rhs, &nonce)
	if lhs.Equal(&rhs) != 1 {
		return ErrVerify
	}
	return nil
}

// challengeScalar derives the Schnorr challenge from the nonce point
// encoding, the public key encoding and the message digest.
func challengeScalar(nonceEnc, pub, md []byte) *Scalar {
	ct := NewTranscript(domainSignChallenge)
	ct.Absorb(nonceEnc)
	ct.Absorb(pub)
	ct.Absorb(md)
	var wide [wideScalarBytes]byte
	ct.Squeeze(wide[:])
	ct.Clear()
	e := new(Scalar)
	e.SetUniformBytes(wide[:])
	memclear(unsafe.Pointer(&wide[0]), wideScalarBytes)
	return e
}
