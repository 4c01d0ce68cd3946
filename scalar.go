package decaf

import (
	"math/bits"
	"unsafe"
)

// Scalar is an integer modulo the group order
// l = 2^446 - 13818066809895115352007386748515426880336692474882178609894547503885,
// held as 7 little-endian 64-bit limbs, always fully reduced.
type Scalar struct {
	n [7]uint64
}

// Limbs of l.
var scalarL = [7]uint64{
	0x2378c292ab5844f3, 0x216cc2728dc58f55, 0xc44edb49aed63690,
	0xffffffff7cca23e9, 0xffffffffffffffff, 0xffffffffffffffff,
	0x3fffffffffffffff,
}

// 2^896 mod l, for conversion into the Montgomery domain.
var scalarR2 = [7]uint64{
	0xe3539257049b9b60, 0x7af32c4bc1b195d9, 0x0d66de2388ea1859,
	0xae17cf725ee4d838, 0x1a9cc14ba3c47c44, 0x2052bcb7e4d070af,
	0x3402a939f823b729,
}

// -1/l mod 2^64.
const montFactor = 0x3bd440fae918bc5

var (
	scalarZero = Scalar{}
	scalarOne  = Scalar{n: [7]uint64{1}}
)

// NewScalar returns a zero scalar.
func NewScalar() *Scalar {
	return new(Scalar)
}

// Set sets r = a and returns r.
func (r *Scalar) Set(a *Scalar) *Scalar {
	*r = *a
	return r
}

// Zero sets r = 0 and returns r.
func (r *Scalar) Zero() *Scalar {
	*r = scalarZero
	return r
}

// One sets r = 1 and returns r.
func (r *Scalar) One() *Scalar {
	*r = scalarOne
	return r
}

// condSubL subtracts l if r >= l; r must be below 2l.
func (r *Scalar) condSubL() {
	var d [7]uint64
	var borrow uint64
	for i := 0; i < 7; i++ {
		d[i], borrow = bits.Sub64(r.n[i], scalarL[i], borrow)
	}
	keep := nonzeroMask64(borrow) // ^0 if r < l
	for i := 0; i < 7; i++ {
		r.n[i] = (keep & r.n[i]) | (^keep & d[i])
	}
}

// reduce448 reduces a 7-limb value below 2^448 modulo l. Since
// 2^448 < 4l, four conditional subtractions always suffice.
func (r *Scalar) reduce448() {
	for i := 0; i < 4; i++ {
		r.condSubL()
	}
}

// montmul sets r = a * b / 2^448 mod l (CIOS). With both operands
// below l the single trailing conditional subtraction yields a fully
// reduced result.
func (r *Scalar) montmul(a, b *Scalar) {
	var acc [8]uint64
	for i := 0; i < 7; i++ {
		ai := a.n[i]
		var carry uint64
		for j := 0; j < 7; j++ {
			hi, lo := bits.Mul64(ai, b.n[j])
			var c uint64
			lo, c = bits.Add64(lo, acc[j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			acc[j] = lo
			carry = hi
		}
		acc[7] += carry
		m := acc[0] * montFactor
		carry = 0
		for j := 0; j < 7; j++ {
			hi, lo := bits.Mul64(m, scalarL[j])
			var c uint64
			lo, c = bits.Add64(lo, acc[j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			acc[j] = lo
			carry = hi
		}
		acc[7] += carry
		copy(acc[:7], acc[1:])
		acc[7] = 0
	}
	copy(r.n[:], acc[:7])
	r.condSubL()
}

// Mul sets r = a * b mod l and returns r.
func (r *Scalar) Mul(a, b *Scalar) *Scalar {
	var t Scalar
	t.montmul(a, b)
	r.montmul(&t, &Scalar{n: scalarR2})
	t.clear()
	return r
}

// Add sets r = a + b mod l and returns r.
func (r *Scalar) Add(a, b *Scalar) *Scalar {
	var carry uint64
	for i := 0; i < 7; i++ {
		r.n[i], carry = bits.Add64(a.n[i], b.n[i], carry)
	}
	// Both inputs are below l < 2^446, so the sum never carries out.
	r.condSubL()
	return r
}

// Sub sets r = a - b mod l and returns r.
func (r *Scalar) Sub(a, b *Scalar) *Scalar {
	var d [7]uint64
	var borrow uint64
	for i := 0; i < 7; i++ {
		d[i], borrow = bits.Sub64(a.n[i], b.n[i], borrow)
	}
	// Add l back if the subtraction borrowed.
	addBack := nonzeroMask64(borrow)
	var carry uint64
	for i := 0; i < 7; i++ {
		r.n[i], carry = bits.Add64(d[i], addBack&scalarL[i], carry)
	}
	return r
}

// Negate sets r = -a mod l and returns r.
func (r *Scalar) Negate(a *Scalar) *Scalar {
	return r.Sub(&scalarZero, a)
}

// Invert sets r = 1/a mod l and returns r; the result is zero when a
// is zero. Fermat exponentiation by l-2, square-and-multiply over the
// public constant exponent in the Montgomery domain.
func (r *Scalar) Invert(a *Scalar) *Scalar {
	exp := scalarL
	exp[0] -= 2

	var am, acc Scalar
	am.montmul(a, &Scalar{n: scalarR2}) // a * 2^448
	acc.montmul(&scalarOne, &Scalar{n: scalarR2})
	for i := 6; i >= 0; i-- {
		for bit := 63; bit >= 0; bit-- {
			acc.montmul(&acc, &acc)
			if exp[i]>>uint(bit)&1 == 1 {
				acc.montmul(&acc, &am)
			}
		}
	}
	r.montmul(&acc, &scalarOne) // leave the Montgomery domain
	am.clear()
	acc.clear()
	return r
}

// Equal returns 1 if r and a are equal, 0 otherwise, in constant time.
func (r *Scalar) Equal(a *Scalar) int {
	var acc uint64
	for i := 0; i < 7; i++ {
		acc |= r.n[i] ^ a.n[i]
	}
	return int(^nonzeroMask64(acc) & 1)
}

// cmov sets r = a if mask is all ones; mask must be 0 or ^0.
func (r *Scalar) cmov(a *Scalar, mask uint64) {
	for i := 0; i < 7; i++ {
		r.n[i] ^= mask & (r.n[i] ^ a.n[i])
	}
}

// SetCanonicalBytes sets r from a 56-byte little-endian encoding,
// rejecting values of l or above.
func (r *Scalar) SetCanonicalBytes(b []byte) error {
	if len(b) != ScalarBytes {
		return ErrInvalidEncoding
	}
	var t Scalar
	for i := 0; i < 7; i++ {
		t.n[i] = leUint64(b[8*i:])
	}
	var borrow uint64
	for i := 0; i < 7; i++ {
		_, borrow = bits.Sub64(t.n[i], scalarL[i], borrow)
	}
	if borrow == 0 {
		return ErrInvalidEncoding
	}
	*r = t
	return nil
}

// SetReducedBytes sets r from a 56-byte little-endian encoding reduced
// mod l, accepting any value, and returns r.
func (r *Scalar) SetReducedBytes(b []byte) *Scalar {
	if len(b) != ScalarBytes {
		panic("decaf: scalar encoding must be 56 bytes")
	}
	for i := 0; i < 7; i++ {
		r.n[i] = leUint64(b[8*i:])
	}
	r.reduce448()
	return r
}

// SetUniformBytes sets r from len(b) little-endian bytes reduced mod l
// and returns r. Inputs of 64 bytes or more give a distribution within
// 2^-120 of uniform; the nonce and challenge derivations use 114.
func (r *Scalar) SetUniformBytes(b []byte) *Scalar {
	r.Zero()
	nchunk := (len(b) + ScalarBytes - 1) / ScalarBytes
	var chunk [ScalarBytes]byte
	var c Scalar
	for k := nchunk - 1; k >= 0; k-- {
		part := b[ScalarBytes*k:]
		if len(part) > ScalarBytes {
			part = part[:ScalarBytes]
		}
		copy(chunk[:], part)
		for i := len(part); i < ScalarBytes; i++ {
			chunk[i] = 0
		}
		r.montmul(r, &Scalar{n: scalarR2}) // r *= 2^448 mod l
		c.SetReducedBytes(chunk[:])
		r.Add(r, &c)
	}
	memclear(unsafe.Pointer(&chunk[0]), ScalarBytes)
	c.clear()
	return r
}

// Bytes writes the canonical 56-byte little-endian encoding of r into
// dst, which must be nil or have room for ScalarBytes more bytes, and
// returns the extended slice.
func (r *Scalar) Bytes(dst []byte) []byte {
	out := append(dst, make([]byte, ScalarBytes)...)
	b := out[len(out)-ScalarBytes:]
	for i := 0; i < 7; i++ {
		putLeUint64(b[8*i:], r.n[i])
	}
	return out
}

// clear zeroes a scalar holding secret material.
func (r *Scalar) clear() {
	memclear(unsafe.Pointer(&r.n[0]), unsafe.Sizeof(r.n))
}

func leUint64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 |
		uint64(b[3])<<24 | uint64(b[4])<<32 | uint64(b[5])<<40 |
		uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLeUint64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
