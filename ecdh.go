package decaf

import "unsafe"

// SharedSecret computes n bytes of Diffie-Hellman shared secret
// between priv and the peer's 56-byte public key. Both sides must
// agree on the ordering: the side that passes meFirst = true absorbs
// its own public key before the peer's. The peer key is rejected with
// ErrInvalidEncoding when malformed or when it encodes the identity,
// so a poisoned key can never silence the secret.
func SharedSecret(priv *PrivateKey, yourPub []byte, meFirst bool, n int) ([]byte, error) {
	var peer Point
	if err := peer.Decode(yourPub, false); err != nil {
		return nil, err
	}

	var shared Point
	shared.ScalarMul(&peer, &priv.secretScalar)
	var enc [SerBytes]byte
	shared.Encode(enc[:0])
	shared.clear()

	tr := NewTranscript(domainSharedSecret)
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
	memclear(unsafe.Pointer(&enc[0]), SerBytes)
	return out, nil
}
