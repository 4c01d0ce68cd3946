// Package decaf implements the decaf448 prime-order group: a group of
// prime order
//
//	l = 2^446 - 13818066809895115352007386748515426880336692474882178609894547503885
//
// built on an Edwards curve isogenous to Ed448-Goldilocks with the
// cofactor wiped out, as specified in RFC 9496. Every group element has
// exactly one canonical 56-byte encoding, and every 56-byte string
// decodes to at most one element.
//
// The point formulas are complete: Add, Sub, Double and ScalarMul are
// defined for all inputs, including the identity and doubling, with no
// special cases. None of the group operations contain data-dependent
// branches, timing, or memory accesses; the only input-dependent
// outcome visible to a caller is the success/failure result of Decode,
// which is derived from public bytes.
//
// On top of the group the package provides example asymmetric
// primitives in the style of the original Decaf library: private-key
// derivation from a 32-byte seed, Diffie-Hellman shared secrets, and
// Schnorr-style signatures, all deriving their scalars through a
// SHAKE256 transcript.
//
// A 255-bit instantiation of the same design (ristretto255) lives in
// the ristretto255 subpackage; its types are independent of this
// package's and the two must never be mixed.
package decaf

import "errors"

// Serialized object sizes, in bytes.
const (
	// SerBytes is the length of a canonical point encoding.
	SerBytes = 56

	// ScalarBytes is the length of a canonical scalar encoding.
	ScalarBytes = 56

	// SymKeyBytes is the length of the symmetric seed a private key is
	// derived from.
	SymKeyBytes = 32

	// SignatureBytes is the length of a signature: a point encoding
	// followed by a scalar encoding.
	SignatureBytes = SerBytes + ScalarBytes

	// UniformBytes is the input length of FromUniformBytes.
	UniformBytes = 112
)

// The two failure modes of the library. Decoding failures are safe to
// retry with corrected input. Verification failures are reported
// identically regardless of cause so that callers cannot distinguish a
// malformed signature from an incorrect one.
var (
	// ErrInvalidEncoding is returned whenever a byte string is not the
	// canonical encoding of a point or scalar, or when a decoded value
	// violates policy (identity disallowed).
	ErrInvalidEncoding = errors.New("decaf: invalid encoding")

	// ErrVerify is returned when signature verification fails for any
	// reason.
	ErrVerify = errors.New("decaf: verification failed")
)
