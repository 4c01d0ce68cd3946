package ristretto255

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, v := range generatorMultiples[1:] {
		var e Element
		if err := e.Decode(mustHex(t, v), false); err != nil {
			t.Fatalf("%s does not decode: %v", v, err)
		}
		if got := elementHex(&e); got != v {
			t.Errorf("round trip mismatch:\n got %s\nwant %s", got, v)
		}
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad test vector %q", s)
	}
	return b
}

func TestDecodeRejections(t *testing.T) {
	allFF := bytes.Repeat([]byte{0xff}, 32)

	odd := make([]byte, 32)
	odd[0] = 3

	testCases := []struct {
		name          string
		b             []byte
		allowIdentity bool
	}{
		{"wrong_length", make([]byte, 31), true},
		{"non_canonical_high_bit", allFF, true},
		{"negative_odd", odd, true},
		{"identity_disallowed", make([]byte, 32), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var e Element
			err := e.Decode(tc.b, tc.allowIdentity)
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("Decode = %v, want ErrInvalidEncoding", err)
			}
		})
	}

	var e Element
	if err := e.Decode(make([]byte, 32), true); err != nil {
		t.Errorf("identity should decode when allowed: %v", err)
	}
	if e.IsIdentity() != 1 {
		t.Error("all-zero encoding should decode to the identity")
	}
}

func TestFromUniformBytesRoundTrip(t *testing.T) {
	in := make([]byte, UniformBytes)
	for i := range in {
		in[i] = byte(i * 7)
	}
	var e Element
	e.FromUniformBytes(in)

	var q Element
	if err := q.Decode(e.Encode(nil), true); err != nil {
		t.Fatalf("mapped element does not decode: %v", err)
	}
	if q.Equal(&e) != 1 {
		t.Error("mapped element round trip mismatch")
	}

	// Deterministic.
	var e2 Element
	e2.FromUniformBytes(in)
	if e2.Equal(&e) != 1 {
		t.Error("map is not deterministic")
	}
}

func TestEncodeAppends(t *testing.T) {
	b := Generator()
	prefix := []byte{9, 9}
	out := b.Encode(prefix)
	if len(out) != 2+SerBytes {
		t.Fatalf("Encode returned %d bytes, want %d", len(out), 2+SerBytes)
	}
	if !bytes.Equal(out[:2], prefix) {
		t.Error("Encode clobbered the prefix")
	}
}
