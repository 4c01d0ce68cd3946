package decaf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	key := DerivePrivateKey(testSeed(0x11))
	msg := []byte("the quick brown fox jumps over the lazy dog")

	sig := Sign(key, msg)
	require.Len(t, sig, SignatureBytes)
	require.NoError(t, Verify(sig, key.Public(), msg))

	// Deterministic: signing again gives the same bytes.
	require.Equal(t, sig, Sign(key, msg))
}

func TestVerifyRejects(t *testing.T) {
	key := DerivePrivateKey(testSeed(0x11))
	other := DerivePrivateKey(testSeed(0x22))
	msg := []byte("message one")
	sig := Sign(key, msg)

	testCases := []struct {
		name string
		run  func() error
	}{
		{"wrong_message", func() error {
			return Verify(sig, key.Public(), []byte("message two"))
		}},
		{"wrong_key", func() error {
			return Verify(sig, other.Public(), msg)
		}},
		{"truncated_signature", func() error {
			return Verify(sig[:SignatureBytes-1], key.Public(), msg)
		}},
		{"flipped_nonce_bit", func() error {
			bad := append([]byte(nil), sig...)
			bad[0] ^= 0x02
			return Verify(bad, key.Public(), msg)
		}},
		{"flipped_scalar_bit", func() error {
			bad := append([]byte(nil), sig...)
			bad[SerBytes] ^= 0x01
			return Verify(bad, key.Public(), msg)
		}},
		{"non_canonical_scalar", func() error {
			bad := append([]byte(nil), sig...)
			for i := SerBytes; i < SignatureBytes; i++ {
				bad[i] = 0xff
			}
			bad[SignatureBytes-1] = 0x3f
			return Verify(bad, key.Public(), msg)
		}},
		{"malformed_public_key", func() error {
			return Verify(sig, make([]byte, SerBytes-1), msg)
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(), ErrVerify)
		})
	}
}

func TestSignVerifyTranscript(t *testing.T) {
	key := DerivePrivateKey(testSeed(0x33))

	buildTranscript := func(parts ...[]byte) Transcript {
		tr := NewTranscript("example/protocol")
		for _, p := range parts {
			tr.Absorb(p)
		}
		return tr
	}

	sig := SignTranscript(key, buildTranscript([]byte("round 1"), []byte("round 2")))
	require.Len(t, sig, SignatureBytes)
	require.NoError(t, VerifyTranscript(sig, key.Public(), buildTranscript([]byte("round 1"), []byte("round 2"))))

	// A transcript with different contents must not verify.
	require.ErrorIs(t,
		VerifyTranscript(sig, key.Public(), buildTranscript([]byte("round 1"))),
		ErrVerify)

	// A different domain label must not verify either.
	other := NewTranscript("other/protocol")
	other.Absorb([]byte("round 1"))
	other.Absorb([]byte("round 2"))
	require.ErrorIs(t, VerifyTranscript(sig, key.Public(), other), ErrVerify)
}

func TestSignaturesBindPublicKey(t *testing.T) {
	// Same message, two keys: signatures and challenges must differ.
	k1 := DerivePrivateKey(testSeed(0x44))
	k2 := DerivePrivateKey(testSeed(0x55))
	msg := []byte("shared message")

	s1 := Sign(k1, msg)
	s2 := Sign(k2, msg)
	require.NotEqual(t, s1, s2)
	require.NoError(t, Verify(s1, k1.Public(), msg))
	require.NoError(t, Verify(s2, k2.Public(), msg))
	require.ErrorIs(t, Verify(s1, k2.Public(), msg), ErrVerify)
}

func BenchmarkSign(b *testing.B) {
	key := DerivePrivateKey(testSeed(0x11))
	msg := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sign(key, msg)
	}
}

func BenchmarkVerify(b *testing.B) {
	key := DerivePrivateKey(testSeed(0x11))
	msg := []byte("benchmark message")
	sig := Sign(key, msg)
	pub := key.Public()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Verify(sig, pub, msg); err != nil {
			b.Fatal(err)
		}
	}
}
