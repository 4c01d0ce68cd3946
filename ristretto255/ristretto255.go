// Package ristretto255 implements the ristretto255 prime-order group
// of RFC 9496: a quotient of the twisted Edwards curve edwards25519
// with the cofactor eliminated, so every element has exactly one
// canonical 32-byte encoding. Field arithmetic is
// filippo.io/edwards25519/field; scalars are edwards25519 scalars.
//
// Encodings are byte-compatible with github.com/gtank/ristretto255.
// The key derivation, Diffie-Hellman and signature layers mirror the
// decaf448 layers in the parent package at 255-bit sizes.
package ristretto255

import "errors"

const (
	// SerBytes is the length of a canonical element encoding.
	SerBytes = 32
	// ScalarBytes is the length of a canonical scalar encoding.
	ScalarBytes = 32
	// SymKeyBytes is the length of a private-key seed.
	SymKeyBytes = 32
	// SignatureBytes is the length of a signature.
	SignatureBytes = 64
	// UniformBytes is the input length of FromUniformBytes.
	UniformBytes = 64
)

var (
	// ErrInvalidEncoding is returned for any byte string that is not
	// the canonical encoding of an element or scalar.
	ErrInvalidEncoding = errors.New("ristretto255: invalid encoding")
	// ErrVerify is returned for any signature that does not verify.
	ErrVerify = errors.New("ristretto255: verification failed")
)
