package decaf

import "unsafe"

// fieldElement represents an element of the field modulo the
// Ed448-Goldilocks prime p = 2^448 - 2^224 - 1.
//
// The representation uses 16 limbs of 28 bits each, so that the
// reduction 2^448 = 2^224 + 1 (mod p) is limb-aligned. Between
// operations every limb is kept below 2^28; the value may exceed p but
// is always below 2^448. strongReduce produces the canonical
// representative in [0, p).
type fieldElement struct {
	n [16]uint32
}

const (
	limbBits = 28
	limbMask = (1 << limbBits) - 1
)

// Limbs of 2*p. Adding 2p before a limbwise subtraction keeps every
// limb non-negative for any operand with limbs below 2^28.
var twoP = [16]uint64{
	2 * limbMask, 2 * limbMask, 2 * limbMask, 2 * limbMask,
	2 * limbMask, 2 * limbMask, 2 * limbMask, 2 * limbMask,
	1<<(limbBits+1) - 4, 2 * limbMask, 2 * limbMask, 2 * limbMask,
	2 * limbMask, 2 * limbMask, 2 * limbMask, 2 * limbMask,
}

// Limbs of p.
var fieldP = [16]uint32{
	limbMask, limbMask, limbMask, limbMask,
	limbMask, limbMask, limbMask, limbMask,
	limbMask - 1, limbMask, limbMask, limbMask,
	limbMask, limbMask, limbMask, limbMask,
}

var (
	feZero = fieldElement{}
	feOne  = fieldElement{n: [16]uint32{1}}
)

// nonzeroMask64 returns ^0 if v != 0 and 0 otherwise.
func nonzeroMask64(v uint64) uint64 {
	return -((v | -v) >> 63)
}

// setSmall sets r to the small constant v.
func (r *fieldElement) setSmall(v uint32) {
	*r = fieldElement{}
	r.n[0] = v
}

// reduce64 propagates carries on a 16-limb accumulator and folds any
// overflow past 2^448 back in with 2^448 = 2^224 + 1, storing a value
// below 2^448 with all limbs below 2^28 into r. Three fixed passes
// suffice for any accumulator limbs below 2^63.
func (r *fieldElement) reduce64(t *[16]uint64) {
	for pass := 0; pass < 3; pass++ {
		var carry uint64
		for i := 0; i < 16; i++ {
			v := t[i] + carry
			t[i] = v & limbMask
			carry = v >> limbBits
		}
		t[0] += carry
		t[8] += carry
	}
	for i := 0; i < 16; i++ {
		r.n[i] = uint32(t[i])
	}
}

// add sets r = a + b.
func (r *fieldElement) add(a, b *fieldElement) {
	var t [16]uint64
	for i := 0; i < 16; i++ {
		t[i] = uint64(a.n[i]) + uint64(b.n[i])
	}
	r.reduce64(&t)
}

// sub sets r = a - b.
func (r *fieldElement) sub(a, b *fieldElement) {
	var t [16]uint64
	for i := 0; i < 16; i++ {
		t[i] = uint64(a.n[i]) + twoP[i] - uint64(b.n[i])
	}
	r.reduce64(&t)
}

// neg sets r = -a.
func (r *fieldElement) neg(a *fieldElement) {
	var t [16]uint64
	for i := 0; i < 16; i++ {
		t[i] = twoP[i] - uint64(a.n[i])
	}
	r.reduce64(&t)
}

// strongReduce brings r into the canonical range [0, p).
func (r *fieldElement) strongReduce() {
	// Trial-subtract p; keep the difference unless it borrowed.
	var d [16]uint32
	var borrow uint64
	for i := 0; i < 16; i++ {
		v := uint64(r.n[i]) - uint64(fieldP[i]) - borrow
		d[i] = uint32(v) & limbMask
		borrow = v >> 63
	}
	keep := uint32(nonzeroMask64(borrow)) // ^0 if r < p
	for i := 0; i < 16; i++ {
		r.n[i] = (keep & r.n[i]) | (^keep & d[i])
	}
}

// cmov sets r = a if mask is all ones; mask must be 0 or ^0.
func (r *fieldElement) cmov(a *fieldElement, mask uint32) {
	for i := 0; i < 16; i++ {
		r.n[i] ^= mask & (r.n[i] ^ a.n[i])
	}
}

// cswap exchanges r and a if mask is all ones; mask must be 0 or ^0.
func (r *fieldElement) cswap(a *fieldElement, mask uint32) {
	for i := 0; i < 16; i++ {
		x := mask & (r.n[i] ^ a.n[i])
		r.n[i] ^= x
		a.n[i] ^= x
	}
}

// equalMask returns ^0 if r and a represent the same field element and
// 0 otherwise, in constant time.
func (r *fieldElement) equalMask(a *fieldElement) uint32 {
	x, y := *r, *a
	x.strongReduce()
	y.strongReduce()
	var acc uint32
	for i := 0; i < 16; i++ {
		acc |= x.n[i] ^ y.n[i]
	}
	return ^uint32(nonzeroMask64(uint64(acc)))
}

// isZeroMask returns ^0 if r == 0 and 0 otherwise.
func (r *fieldElement) isZeroMask() uint32 {
	return r.equalMask(&feZero)
}

// isNegativeMask returns ^0 if the canonical form of r is odd (the
// sign convention of RFC 9496) and 0 otherwise.
func (r *fieldElement) isNegativeMask() uint32 {
	x := *r
	x.strongReduce()
	return -(x.n[0] & 1)
}

// condNeg negates r if mask is all ones; mask must be 0 or ^0.
func (r *fieldElement) condNeg(mask uint32) {
	var n fieldElement
	n.neg(r)
	r.cmov(&n, mask)
}

// abs replaces r with its non-negative (even canonical) representative.
func (r *fieldElement) abs() {
	r.condNeg(r.isNegativeMask())
}

// setB56 sets r from a 56-byte little-endian encoding, returning ^0 if
// the encoding is canonical (the value is below p) and 0 otherwise. On
// a non-canonical input r holds the value reduced only by truncation;
// callers must reject via the mask.
func (r *fieldElement) setB56(b []byte) uint32 {
	if len(b) != 56 {
		panic("field element encoding must be 56 bytes")
	}
	// Two 28-bit limbs per 7 bytes.
	for i := 0; i < 8; i++ {
		lo := uint64(b[7*i]) | uint64(b[7*i+1])<<8 | uint64(b[7*i+2])<<16 |
			uint64(b[7*i+3])<<24 | uint64(b[7*i+4])<<32 | uint64(b[7*i+5])<<40 |
			uint64(b[7*i+6])<<48
		r.n[2*i] = uint32(lo & limbMask)
		r.n[2*i+1] = uint32(lo >> limbBits)
	}
	// Canonical iff the trial subtraction of p borrows.
	var borrow uint64
	for i := 0; i < 16; i++ {
		v := uint64(r.n[i]) - uint64(fieldP[i]) - borrow
		borrow = v >> 63
	}
	return uint32(nonzeroMask64(borrow))
}

// getB56 writes the canonical 56-byte little-endian encoding of r.
func (r *fieldElement) getB56(b []byte) {
	if len(b) != 56 {
		panic("field element encoding must be 56 bytes")
	}
	x := *r
	x.strongReduce()
	for i := 0; i < 8; i++ {
		lo := uint64(x.n[2*i]) | uint64(x.n[2*i+1])<<limbBits
		b[7*i] = byte(lo)
		b[7*i+1] = byte(lo >> 8)
		b[7*i+2] = byte(lo >> 16)
		b[7*i+3] = byte(lo >> 24)
		b[7*i+4] = byte(lo >> 32)
		b[7*i+5] = byte(lo >> 40)
		b[7*i+6] = byte(lo >> 48)
	}
}

// clear zeroes a field element holding secret material.
func (r *fieldElement) clear() {
	memclear(unsafe.Pointer(&r.n[0]), unsafe.Sizeof(r.n))
}

// memclear explicitly zeroes n bytes at ptr.
func memclear(ptr unsafe.Pointer, n uintptr) {
	b := (*[1 << 30]byte)(ptr)[:n:n]
	for i := range b {
		b[i] = 0
	}
}
