// Package signer abstracts the group instantiation behind a small
// signing interface, so callers can swap decaf448 and ristretto255
// without touching key handling code.
package signer

// I is the common surface of a signing identity: a secret seed plus
// the derived keys, or just a public key for verification.
type I interface {
	// Generate creates a fresh key pair from system entropy.
	Generate() error
	// InitSec initialises the secret key from a 32-byte seed and
	// derives the public key.
	InitSec(sec []byte) error
	// InitPub initialises only the public (verification) key.
	InitPub(pub []byte) error
	// Sec returns the secret seed bytes, or nil without a secret.
	Sec() []byte
	// Pub returns the public key encoding, or nil when uninitialised.
	Pub() []byte
	// Sign signs an arbitrary-length message with the stored secret.
	Sign(msg []byte) (sig []byte, err error)
	// Verify checks a signature against the stored public key.
	Verify(msg, sig []byte) (valid bool, err error)
	// ECDH derives a 32-byte shared secret with the given public key.
	// Both peers obtain the same bytes regardless of who initiates.
	ECDH(pub []byte) (secret []byte, err error)
	// Zero wipes the secret key material.
	Zero()
}
