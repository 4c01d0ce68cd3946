package decaf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscriptDeterministic(t *testing.T) {
	squeeze := func() []byte {
		tr := NewTranscript("test/domain")
		tr.Absorb([]byte("alpha"))
		tr.Absorb([]byte("beta"))
		out := make([]byte, 64)
		tr.Squeeze(out)
		return out
	}
	require.Equal(t, squeeze(), squeeze())
}

func TestTranscriptDomainSeparation(t *testing.T) {
	out := func(domain string) []byte {
		tr := NewTranscript(domain)
		tr.Absorb([]byte("same input"))
		b := make([]byte, 32)
		tr.Squeeze(b)
		return b
	}
	require.NotEqual(t, out("domain/a"), out("domain/b"))
}

func TestTranscriptStream(t *testing.T) {
	// Two squeezes read consecutive bytes of one stream.
	tr := NewTranscript("test/stream")
	tr.Absorb([]byte("data"))
	first := make([]byte, 16)
	second := make([]byte, 16)
	tr.Squeeze(first)
	tr.Squeeze(second)

	tr2 := NewTranscript("test/stream")
	tr2.Absorb([]byte("data"))
	both := make([]byte, 32)
	tr2.Squeeze(both)

	require.Equal(t, append(first, second...), both)
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript("test/clear")
	tr.Absorb([]byte("secret"))
	tr.Clear()

	// After Clear the state is reset; the old absorbed data is gone.
	out := make([]byte, 32)
	tr.Squeeze(out)

	fresh := NewTranscript("unrelated")
	fresh.Clear()
	out2 := make([]byte, 32)
	fresh.Squeeze(out2)

	require.Equal(t, out, out2, "cleared transcripts should coincide on the empty state")
}
