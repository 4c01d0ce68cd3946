package decaf

import (
	"encoding/hex"
	"errors"
	"testing"
)

func scalarFromHex(t *testing.T, s string) *Scalar {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad scalar vector %q", s)
	}
	sc := new(Scalar)
	if err := sc.SetCanonicalBytes(b); err != nil {
		t.Fatalf("scalar vector %q is not canonical: %v", s, err)
	}
	return sc
}

func scalarHex(s *Scalar) string {
	return hex.EncodeToString(s.Bytes(nil))
}

const (
	scalarXHex = "38b4e652e44da7f2370d9e260e27136550a4a3a6d07f5c0c332f8b1224083fd22b902f8911e81818f8c99d5d5d9831957504d90e6597383a"
	scalarYHex = "f54ee781cc75f636d85099095aa300165a67036f9b540d6b8f0be21124179c3dd9f73817ce6e118d264aad6cb6dd210faf94acd3b3643024"
)

func TestScalarArithmeticVectors(t *testing.T) {
	x := scalarFromHex(t, scalarXHex)
	y := scalarFromHex(t, scalarYHex)

	var r Scalar
	r.Mul(x, y)
	if got, want := scalarHex(&r), "bbfbc47436558fcf727064270193249427ae8a6b5004c772eeb8877b9f4ad0cd33f2bd820c873a628e3bc18f9d02726f98c9cd4e9d798c39"; got != want {
		t.Errorf("Mul mismatch:\n got %s\nwant %s", got, want)
	}
	r.Add(x, y)
	if got, want := scalarHex(&r), "3abe75291e012506bbce71a2f507a7591ad5d06622f91ab3d816a3a7481fdb0f058868a0df562aa51e144bca137653a4249985e218fc681e"; got != want {
		t.Errorf("Add mismatch:\n got %s\nwant %s", got, want)
	}
	r.Sub(x, y)
	if got, want := scalarHex(&r), "4365ffd017d8b0bb5fbc041db483124ff63ca037352b4fa1a323a90000f1a2945298f6714379078bd17ff0f0a6ba0f86c66f2c3bb1320816"; got != want {
		t.Errorf("Sub mismatch:\n got %s\nwant %s", got, want)
	}
	r.Invert(x)
	if got, want := scalarHex(&r), "c9174341754f244a771bb2b05945d963760424d65566a2c70173be74f99eb52a3dbb1caf518436b53b7abd4f69f5661a44f9e8273f1f7619"; got != want {
		t.Errorf("Invert mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestScalarIdentities(t *testing.T) {
	x := scalarFromHex(t, scalarXHex)
	y := scalarFromHex(t, scalarYHex)

	var one, inv, prod Scalar
	one.One()
	inv.Invert(x)
	prod.Mul(x, &inv)
	if prod.Equal(&one) != 1 {
		t.Error("x * 1/x != 1")
	}

	// x + y - y == x
	var r Scalar
	r.Add(x, y)
	r.Sub(&r, y)
	if r.Equal(x) != 1 {
		t.Error("x + y - y != x")
	}

	// x + (-x) == 0
	var nx, zero Scalar
	nx.Negate(x)
	r.Add(x, &nx)
	if r.Equal(&zero) != 1 {
		t.Error("x + (-x) != 0")
	}

	// x * 0 == 0
	r.Mul(x, &zero)
	if r.Equal(&zero) != 1 {
		t.Error("x * 0 != 0")
	}
}

func TestScalarCanonicalBoundary(t *testing.T) {
	lMinus1, _ := hex.DecodeString("f24458ab92c27823558fc58d72c26c219036d6ae49db4ec4e923ca7cffffffffffffffffffffffffffffffffffffffffffffffffffffff3f")
	lEnc, _ := hex.DecodeString("f34458ab92c27823558fc58d72c26c219036d6ae49db4ec4e923ca7cffffffffffffffffffffffffffffffffffffffffffffffffffffff3f")

	var s Scalar
	if err := s.SetCanonicalBytes(lMinus1); err != nil {
		t.Errorf("l-1 should be canonical: %v", err)
	}
	if err := s.SetCanonicalBytes(lEnc); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("l should be rejected, got %v", err)
	}
	if err := s.SetCanonicalBytes(lEnc[:55]); !errors.Is(err, ErrInvalidEncoding) {
		t.Error("short input should be rejected")
	}

	// SetReducedBytes accepts l and reduces it to zero.
	var zero Scalar
	s.SetReducedBytes(lEnc)
	if s.Equal(&zero) != 1 {
		t.Error("SetReducedBytes(l) != 0")
	}
}

func TestScalarSetUniformBytes(t *testing.T) {
	in := make([]byte, 114)
	for i := range in {
		in[i] = byte(i)
	}
	var s Scalar
	s.SetUniformBytes(in)
	if got, want := scalarHex(&s), "36389e5a5809a7491d7bbb887ff501806431c77e4e3113e0261f81c8613bebe4d5c2f21ca2f4e11ee0f8d6d1b7bad91ad1a772d427bf0d17"; got != want {
		t.Errorf("wide reduction mismatch:\n got %s\nwant %s", got, want)
	}

	// A canonical 56-byte input reduces to itself.
	x := scalarFromHex(t, scalarXHex)
	s.SetUniformBytes(x.Bytes(nil))
	if s.Equal(x) != 1 {
		t.Error("56-byte canonical input should reduce to itself")
	}
}

func TestScalarRoundTrip(t *testing.T) {
	x := scalarFromHex(t, scalarXHex)
	if got := scalarHex(x); got != scalarXHex {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, scalarXHex)
	}
}

func TestScalarCmovClear(t *testing.T) {
	x := scalarFromHex(t, scalarXHex)
	y := scalarFromHex(t, scalarYHex)

	r := new(Scalar).Set(x)
	r.cmov(y, 0)
	if r.Equal(x) != 1 {
		t.Error("cmov with zero mask changed the value")
	}
	r.cmov(y, ^uint64(0))
	if r.Equal(y) != 1 {
		t.Error("cmov with full mask did not copy")
	}

	var zero Scalar
	r.clear()
	if r.Equal(&zero) != 1 {
		t.Error("clear did not zero the scalar")
	}
}

func BenchmarkScalarMul(b *testing.B) {
	var x, y Scalar
	x.One()
	y.SetReducedBytes(append([]byte{0x39}, make([]byte, 55)...))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Mul(&x, &y)
	}
}
