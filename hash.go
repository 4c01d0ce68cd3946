package decaf

import "golang.org/x/crypto/sha3"

// Transcript is the extensible-output sponge that all key, nonce,
// challenge and shared-secret derivation runs through. Absorb may not
// be called after the first Squeeze.
type Transcript interface {
	Absorb(b []byte)
	Squeeze(b []byte)
	Clear()
}

type shakeTranscript struct {
	st sha3.ShakeHash
}

// NewTranscript returns a SHAKE256 transcript domain-separated by the
// given label.
func NewTranscript(domain string) Transcript {
	st := sha3.NewShake256()
	st.Write([]byte(domain))
	return &shakeTranscript{st: st}
}

func (t *shakeTranscript) Absorb(b []byte) {
	t.st.Write(b)
}

func (t *shakeTranscript) Squeeze(b []byte) {
	t.st.Read(b)
}

func (t *shakeTranscript) Clear() {
	t.st.Reset()
}
