package signer

import (
	"bytes"
	"crypto/rand"
	"errors"

	"decaf.mleku.dev/ristretto255"
)

// Ristretto255Signer implements the I interface over the ristretto255
// group.
type Ristretto255Signer struct {
	sec       [ristretto255.SymKeyBytes]byte
	priv      *ristretto255.PrivateKey
	pub       []byte
	hasSecret bool
}

// NewRistretto255Signer creates an uninitialised signer.
func NewRistretto255Signer() *Ristretto255Signer {
	return &Ristretto255Signer{}
}

// Generate creates a fresh key pair from system entropy.
func (s *Ristretto255Signer) Generate() error {
	var seed [ristretto255.SymKeyBytes]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return err
	}
	return s.InitSec(seed[:])
}

// InitSec initialises the secret key from a 32-byte seed and derives
// the public key.
func (s *Ristretto255Signer) InitSec(sec []byte) error {
	if len(sec) != ristretto255.SymKeyBytes {
		return errors.New("secret seed must be 32 bytes")
	}
	copy(s.sec[:], sec)
	s.priv = ristretto255.DerivePrivateKey(&s.sec)
	s.pub = s.priv.Public()
	s.hasSecret = true
	return nil
}

// InitPub initialises only the public key; the signer can then verify
// but not sign.
func (s *Ristretto255Signer) InitPub(pub []byte) error {
	var e ristretto255.Element
	if err := e.Decode(pub, false); err != nil {
		return err
	}
	s.pub = append([]byte(nil), pub...)
	s.priv = nil
	s.hasSecret = false
	return nil
}

// Sec returns the secret seed bytes, or nil without a secret.
func (s *Ristretto255Signer) Sec() []byte {
	if !s.hasSecret {
		return nil
	}
	return s.sec[:]
}

// Pub returns the 32-byte public key encoding.
func (s *Ristretto255Signer) Pub() []byte {
	return s.pub
}

// Sign signs a message with the stored secret key.
func (s *Ristretto255Signer) Sign(msg []byte) ([]byte, error) {
	if !s.hasSecret {
		return nil, errors.New("no secret key available for signing")
	}
	return ristretto255.Sign(s.priv, msg), nil
}

// Verify checks a signature against the stored public key.
func (s *Ristretto255Signer) Verify(msg, sig []byte) (bool, error) {
	if s.pub == nil {
		return false, errors.New("no public key available for verification")
	}
	if err := ristretto255.Verify(sig, s.pub, msg); err != nil {
		return false, nil
	}
	return true, nil
}

// ECDH derives a 32-byte shared secret with the given public key.
// The transcript absorbs the two public keys in lexicographic order,
// so both peers derive the same bytes.
func (s *Ristretto255Signer) ECDH(pub []byte) ([]byte, error) {
	if !s.hasSecret {
		return nil, errors.New("no secret key available for ECDH")
	}
	meFirst := bytes.Compare(s.pub, pub) <= 0
	return ristretto255.SharedSecret(s.priv, pub, meFirst, 32)
}

// Zero wipes the secret key material.
func (s *Ristretto255Signer) Zero() {
	for i := range s.sec {
		s.sec[i] = 0
	}
	if s.priv != nil {
		s.priv.Destroy()
		s.priv = nil
	}
	s.hasSecret = false
	s.pub = nil
}
