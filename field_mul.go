package decaf

// mul sets r = a * b. Partial products are accumulated in 64-bit
// columns; with 28-bit limbs a column never exceeds 2^62, so no
// intermediate carries are needed before the fold.
func (r *fieldElement) mul(a, b *fieldElement) {
	var cols [31]uint64
	for i := 0; i < 16; i++ {
		ai := uint64(a.n[i])
		for j := 0; j < 16; j++ {
			cols[i+j] += ai * uint64(b.n[j])
		}
	}
	r.foldColumns(&cols)
}

// sqr sets r = a * a.
func (r *fieldElement) sqr(a *fieldElement) {
	r.mul(a, a)
}

// mulSmall sets r = a * v for a small constant v.
func (r *fieldElement) mulSmall(a *fieldElement, v uint32) {
	var t [16]uint64
	vv := uint64(v)
	var carry uint64
	for i := 0; i < 16; i++ {
		w := uint64(a.n[i])*vv + carry
		t[i] = w & limbMask
		carry = w >> limbBits
	}
	t[0] += carry
	t[8] += carry
	r.reduce64(&t)
}

// foldColumns reduces a 31-column product accumulator into 16 limbs,
// using 2^448 = 2^224 + 1: column k >= 16 contributes to columns k-16
// and k-8. High columns are folded top-down so spills into columns
// 16..22 are themselves folded before the loop reaches them.
func (r *fieldElement) foldColumns(cols *[31]uint64) {
	for k := 30; k >= 16; k-- {
		c := cols[k]
		cols[k-16] += c
		cols[k-8] += c
	}
	var t [16]uint64
	var carry uint64
	for i := 0; i < 16; i++ {
		v := cols[i] + carry
		t[i] = v & limbMask
		carry = v >> limbBits
	}
	t[0] += carry
	t[8] += carry
	r.reduce64(&t)
}

// powP34 sets r = a^((p-3)/4). For a square input this is 1/sqrt(a);
// p = 3 (mod 4) makes the exponent 2^446 - 2^222 - 1, computed with the
// addition chain (2^223-1)*2^223 + (2^222-1).
func (r *fieldElement) powP34(a *fieldElement) {
	nsqr := func(dst, src *fieldElement, n int) {
		*dst = *src
		for i := 0; i < n; i++ {
			dst.sqr(dst)
		}
	}
	var x2, x3, x6, x9, x11, x22, x44, x88, x176, x220, x222, t fieldElement
	x2.sqr(a)
	x2.mul(&x2, a) // 2^2 - 1
	x3.sqr(&x2)
	x3.mul(&x3, a) // 2^3 - 1
	nsqr(&t, &x3, 3)
	x6.mul(&t, &x3) // 2^6 - 1
	nsqr(&t, &x6, 3)
	x9.mul(&t, &x3) // 2^9 - 1
	nsqr(&t, &x9, 2)
	x11.mul(&t, &x2) // 2^11 - 1
	nsqr(&t, &x11, 11)
	x22.mul(&t, &x11) // 2^22 - 1
	nsqr(&t, &x22, 22)
	x44.mul(&t, &x22) // 2^44 - 1
	nsqr(&t, &x44, 44)
	x88.mul(&t, &x44) // 2^88 - 1
	nsqr(&t, &x88, 88)
	x176.mul(&t, &x88) // 2^176 - 1
	nsqr(&t, &x176, 44)
	x220.mul(&t, &x44) // 2^220 - 1
	nsqr(&t, &x220, 2)
	x222.mul(&t, &x2) // 2^222 - 1
	t.sqr(&x222)
	t.mul(&t, a) // 2^223 - 1
	nsqr(&t, &t, 223)
	r.mul(&t, &x222)
}

// isr sets r to the inverse square root of a and returns ^0 if a was a
// nonzero square. When a is a non-square, r holds 1/sqrt(-a) instead
// and the mask is 0; when a is zero, r is zero and the mask is 0.
func (r *fieldElement) isr(a *fieldElement) uint32 {
	var cand, chk fieldElement
	cand.powP34(a)
	chk.sqr(&cand)
	chk.mul(&chk, a)
	ok := chk.equalMask(&feOne)
	cand.abs()
	*r = cand
	return ok
}

// sqrtRatio sets r to the non-negative square root of u/v and returns
// ^0 when u/v is square. Otherwise it returns 0 and r holds the
// non-negative root of -u/v (u or v zero yields r = 0).
func (r *fieldElement) sqrtRatio(u, v *fieldElement) uint32 {
	var uv, cand, chk fieldElement
	uv.mul(u, v)
	cand.powP34(&uv)
	cand.mul(&cand, u)
	chk.sqr(&cand)
	chk.mul(&chk, v)
	ok := chk.equalMask(u)
	cand.abs()
	*r = cand
	return ok
}

// invert sets r = 1/a; the result is zero when a is zero. Uses
// a^(p-2) = (a^((p-3)/4))^4 * a.
func (r *fieldElement) invert(a *fieldElement) {
	var t fieldElement
	t.powP34(a)
	t.sqr(&t)
	t.sqr(&t)
	r.mul(&t, a)
}
