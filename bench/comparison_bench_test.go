package bench

import (
	"testing"

	gtank "github.com/gtank/ristretto255"
	"golang.org/x/crypto/sha3"

	"decaf.mleku.dev/ristretto255"
	"decaf.mleku.dev/signer"
)

// Benchmarks comparing the two 255-bit group implementations:
// 1. this module's ristretto255 (scalar mult via filippo.io/edwards25519)
// 2. gtank/ristretto255 (the reference implementation)
// plus signer-level comparisons against the decaf448 instantiation.

var (
	benchSeckey  = make([]byte, 32)
	benchMessage = []byte("benchmark message for signer comparison")

	signDecaf = &signer.Decaf448Signer{}
	signR255  = &signer.Ristretto255Signer{}
)

func init() {
	sha3.ShakeSum256(benchSeckey, []byte("bench signer seed"))
	if err := signDecaf.InitSec(benchSeckey); err != nil {
		panic(err)
	}
	if err := signR255.InitSec(benchSeckey); err != nil {
		panic(err)
	}
}

func benchScalarSeed() []byte {
	out := make([]byte, 64)
	sha3.ShakeSum256(out, []byte("bench scalar seed"))
	return out
}

func BenchmarkScalarBaseMulOurs(b *testing.B) {
	s := ristretto255.NewScalar()
	if _, err := s.SetUniformBytes(benchScalarSeed()); err != nil {
		b.Fatal(err)
	}
	var e ristretto255.Element
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ScalarBaseMul(s)
	}
}

func BenchmarkScalarBaseMulGtank(b *testing.B) {
	s := gtank.NewScalar().FromUniformBytes(benchScalarSeed())
	e := gtank.NewElement()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ScalarBaseMult(s)
	}
}

func BenchmarkScalarMulOurs(b *testing.B) {
	s := ristretto255.NewScalar()
	if _, err := s.SetUniformBytes(benchScalarSeed()); err != nil {
		b.Fatal(err)
	}
	base := ristretto255.Generator()
	var e ristretto255.Element
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ScalarMul(base, s)
	}
}

func BenchmarkScalarMulGtank(b *testing.B) {
	s := gtank.NewScalar().FromUniformBytes(benchScalarSeed())
	base := gtank.NewElement()
	if err := base.Decode(ristretto255.Generator().Encode(nil)); err != nil {
		b.Fatal(err)
	}
	e := gtank.NewElement()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ScalarMult(s, base)
	}
}

func BenchmarkDecodeOurs(b *testing.B) {
	enc := ristretto255.Generator().Encode(nil)
	var e ristretto255.Element
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.Decode(enc, false); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeGtank(b *testing.B) {
	enc := ristretto255.Generator().Encode(nil)
	e := gtank.NewElement()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSignDecaf448(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := signDecaf.Sign(benchMessage); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSignRistretto255(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := signR255.Sign(benchMessage); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerifyDecaf448(b *testing.B) {
	sig, err := signDecaf.Sign(benchMessage)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := signDecaf.Verify(benchMessage, sig)
		if err != nil {
			b.Fatal(err)
		}
		if !ok {
			b.Fatal("verify failed")
		}
	}
}

func BenchmarkVerifyRistretto255(b *testing.B) {
	sig, err := signR255.Sign(benchMessage)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := signR255.Verify(benchMessage, sig)
		if err != nil {
			b.Fatal(err)
		}
		if !ok {
			b.Fatal("verify failed")
		}
	}
}

func BenchmarkECDHDecaf448(b *testing.B) {
	peer := &signer.Decaf448Signer{}
	if err := peer.Generate(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signDecaf.ECDH(peer.Pub()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkECDHRistretto255(b *testing.B) {
	peer := &signer.Ristretto255Signer{}
	if err := peer.Generate(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signR255.ECDH(peer.Pub()); err != nil {
			b.Fatal(err)
		}
	}
}
