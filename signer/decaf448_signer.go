package signer

import (
	"bytes"
	"crypto/rand"
	"errors"

	"decaf.mleku.dev"
)

// Decaf448Signer implements the I interface over the decaf448 group.
type Decaf448Signer struct {
	sec       [decaf.SymKeyBytes]byte
	priv      *decaf.PrivateKey
	pub       []byte
	hasSecret bool
}

// NewDecaf448Signer creates an uninitialised signer.
func NewDecaf448Signer() *Decaf448Signer {
	return &Decaf448Signer{}
}

// Generate creates a fresh key pair from system entropy.
func (s *Decaf448Signer) Generate() error {
	var seed [decaf.SymKeyBytes]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return err
	}
	return s.InitSec(seed[:])
}

// InitSec initialises the secret key from a 32-byte seed and derives
// the public key.
func (s *Decaf448Signer) InitSec(sec []byte) error {
	if len(sec) != decaf.SymKeyBytes {
		return errors.New("secret seed must be 32 bytes")
	}
	copy(s.sec[:], sec)
	s.priv = decaf.DerivePrivateKey(&s.sec)
	s.pub = s.priv.Public()
	s.hasSecret = true
	return nil
}

// InitPub initialises only the public key; the signer can then verify
// but not sign.
func (s *Decaf448Signer) InitPub(pub []byte) error {
	var p decaf.Point
	if err := p.Decode(pub, false); err != nil {
		return err
	}
	s.pub = append([]byte(nil), pub...)
	s.priv = nil
	s.hasSecret = false
	return nil
}

// Sec returns the secret seed bytes, or nil without a secret.
func (s *Decaf448Signer) Sec() []byte {
	if !s.hasSecret {
		return nil
	}
	return s.sec[:]
}

// Pub returns the 56-byte public key encoding.
func (s *Decaf448Signer) Pub() []byte {
	return s.pub
}

// Sign signs a message with the stored secret key.
func (s *Decaf448Signer) Sign(msg []byte) ([]byte, error) {
	if !s.hasSecret {
		return nil, errors.New("no secret key available for signing")
	}
	return decaf.Sign(s.priv, msg), nil
}

// Verify checks a signature against the stored public key.
func (s *Decaf448Signer) Verify(msg, sig []byte) (bool, error) {
	if s.pub == nil {
		return false, errors.New("no public key available for verification")
	}
	if err := decaf.Verify(sig, s.pub, msg); err != nil {
		return false, nil
	}
	return true, nil
}

// ECDH derives a 32-byte shared secret with the given public key.
// The transcript absorbs the two public keys in lexicographic order,
// so both peers derive the same bytes.
func (s *Decaf448Signer) ECDH(pub []byte) ([]byte, error) {
	if !s.hasSecret {
		return nil, errors.New("no secret key available for ECDH")
	}
	meFirst := bytes.Compare(s.pub, pub) <= 0
	return decaf.SharedSecret(s.priv, pub, meFirst, 32)
}

// Zero wipes the secret key material.
func (s *Decaf448Signer) Zero() {
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
