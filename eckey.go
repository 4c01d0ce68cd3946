package decaf

import "unsafe"

// Domain labels for the derivation transcripts.
const (
	domainDerive        = "decaf448/derive_private_key"
	domainSharedSecret  = "decaf448/shared_secret"
	domainSignMessage   = "decaf448/sign"
	domainSignNonce     = "decaf448/sign/nonce"
	domainSignChallenge = "decaf448/sign/challenge"
)

// wideScalarBytes is the transcript squeeze width for scalar
// derivation; 114 bytes leave the reduced scalar within 2^-460 of
// uniform.
const wideScalarBytes = 114

// PrivateKey holds a symmetric seed, the secret scalar derived from
// it, and the cached public-key encoding. Obtain one from
// DerivePrivateKey; the zero value is unusable.
type PrivateKey struct {
	sym          [SymKeyBytes]byte
	secretScalar Scalar
	pub          [SerBytes]byte
}

// DerivePrivateKey deterministically derives a private key from a
// 32-byte seed: the seed is expanded through the transcript into the
// secret scalar and the public key scalar*B is computed and cached.
func DerivePrivateKey(seed *[SymKeyBytes]byte) *PrivateKey {
	priv := new(PrivateKey)
	priv.sym = *seed

	tr := NewTranscript(domainDerive)
	tr.Absorb(priv.sym[:])
	var wide [wideScalarBytes]byte
	tr.Squeeze(wide[:])
	tr.Clear()
	priv.secretScalar.SetUniformBytes(wide[:])
	memclear(unsafe.Pointer(&wide[0]), wideScalarBytes)

	var pub Point
	pub.ScalarBaseMul(&priv.secretScalar)
	pub.Encode(priv.pub[:0])
	return priv
}

// Public returns the 56-byte public-key encoding. The cached copy is
// returned without recomputation.
func (priv *PrivateKey) Public() []byte {
	out := make([]byte, SerBytes)
	copy(out, priv.pub[:])
	return out
}

// Destroy zeroizes the key material. The key must not be used
// afterwards.
func (priv *PrivateKey) Destroy() {
	memclear(unsafe.Pointer(&priv.sym[0]), SymKeyBytes)
	priv.secretScalar.clear()
	memclear(unsafe.Pointer(&priv.pub[0]), SerBytes)
}
