package ristretto255

import (
	"decaf.mleku.dev"
)

// Domain labels for the derivation transcripts.
const (
	domainDerive        = "ristretto255/derive_private_key"
	domainSharedSecret  = "ristretto255/shared_secret"
	domainSignMessage   = "ristretto255/sign"
	domainSignNonce     = "ristretto255/sign/nonce"
	domainSignChallenge = "ristretto255/sign/challenge"
)

// wideScalarBytes is the transcript squeeze width for scalar
// derivation; the edwards25519 scalar reduction takes exactly 64
// bytes.
const wideScalarBytes = 64

// PrivateKey holds a symmetric seed, the secret scalar derived from
// it, and the cached public-key encoding. Obtain one from
// DerivePrivateKey; the zero value is unusable.
type PrivateKey struct {
	sym          [SymKeyBytes]byte
	secretScalar Scalar
	pub          [SerBytes]byte
}

// DerivePrivateKey deterministically derives a private key from a
// 32-byte seed, mirroring the decaf448 derivation at 255-bit sizes.
func DerivePrivateKey(seed *[SymKeyBytes]byte) *PrivateKey {
	priv := new(PrivateKey)
	priv.sym = *seed

	tr := decaf.NewTranscript(domainDerive)
	tr.Absorb(priv.sym[:])
	var wide [wideScalarBytes]byte
	tr.Squeeze(wide[:])
	tr.Clear()
	if _, err := priv.secretScalar.SetUniformBytes(wide[:]); err != nil {
		panic("ristretto255: scalar reduction failed: " + err.Error())
	}
	wipeBytes(wide[:])

	var pub Element
	pub.ScalarBaseMul(&priv.secretScalar)
	pub.Encode(priv.pub[:0])
	return priv
}

// Public returns the 32-byte public-key encoding. The cached copy is
// returned without recomputation.
func (priv *PrivateKey) Public() []byte {
	out := make([]byte, SerBytes)
	copy(out, priv.pub[:])
	return out
}

// Destroy zeroizes the key material. The key must not be used
// afterwards.
func (priv *PrivateKey) Destroy() {
	wipeBytes(priv.sym[:])
	priv.secretScalar.Set(NewScalar())
	wipeBytes(priv.pub[:])
}

// SharedSecret computes n bytes of Diffie-Hellman shared secret
// between priv and the peer's 32-byte public key. The side that
// passes meFirst = true absorbs its own public key before the
// peer's. Malformed and identity peer keys are rejected with
// ErrInvalidEncoding.
func SharedSecret(priv *PrivateKey, yourPub []byte, meFirst bool, n int) ([]byte, error) {
	var peer Element
	if err := peer.Decode(yourPub, false); err != nil {
		return nil, err
	}

	var shared Element
	shared.ScalarMul(&peer, &priv.secretScalar)
	var enc [SerBytes]byte
	shared.Encode(enc[:0])
	shared.wipe()

	tr := decaf.NewTranscript(domainSharedSecret)
	if meFirst {
		tr.Absorb(priv.pub[:])
		tr.Absorb(yourPub)
	} else {
		tr.Absorb(yourPub)
		tr.Absorb(priv.pub[:])
	}
	tr.Absorb(enc[:])
	out := make([]byte, n)
	tr.Squeeze(out)
	tr.Clear()
	wipeBytes(enc[:])
	return out, nil
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
