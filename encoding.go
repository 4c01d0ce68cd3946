package decaf

// Curve constants used by the codec and the one-way map, as field
// elements. sqrt(-d) and 1/sqrt(-d) are derived at startup rather than
// hardcoded; variable initialization runs before any init function, so
// they are ready when the generator encoding is decoded.
var (
	oneMinusD                 = smallFieldElement(39082) // 1 - d
	oneMinusTwoD              = smallFieldElement(78163) // 1 - 2d
	sqrtMinusD, invSqrtMinusD = deriveSqrtMinusD()
)

func smallFieldElement(v uint32) fieldElement {
	var r fieldElement
	r.setSmall(v)
	return r
}

func deriveSqrtMinusD() (sq, inv fieldElement) {
	var negD fieldElement
	negD.setSmall(curveD) // -d = 39081
	inv.powP34(&negD)     // (-d)^((p-3)/4) = 1/sqrt(-d)
	sq.mul(&negD, &inv)
	sq.abs()
	inv.abs()
	return
}

// Encode writes the canonical 56-byte encoding of p into dst, which
// must be nil or have room for SerBytes more bytes, and returns the
// extended slice. Every representative of a group element encodes to
// the same bytes, and the identity encodes to all zeros.
func (p *Point) Encode(dst []byte) []byte {
	out := append(dst, make([]byte, SerBytes)...)
	b := out[len(out)-SerBytes:]

	var u1, u2, v, invsqrt, ratio, s, tmp fieldElement
	tmp.sub(&p.x, &p.t)
	u1.add(&p.x, &p.t)
	u1.mul(&u1, &tmp) // (x+t)(x-t)

	v.sqr(&p.x)
	v.mul(&v, &oneMinusD)
	v.mul(&v, &u1)
	invsqrt.isr(&v) // 1/sqrt((1-d) x^2 (x+t)(x-t)); zero for the identity, which encodes as zero

	ratio.mul(&invsqrt, &u1)
	ratio.mul(&ratio, &sqrtMinusD)
	ratio.abs()

	u2.mul(&ratio, &invSqrtMinusD)
	u2.mul(&u2, &p.z)
	u2.sub(&u2, &p.t)

	s.mul(&oneMinusD, &invsqrt)
	s.mul(&s, &p.x)
	s.mul(&s, &u2)
	s.abs()

	s.getB56(b)
	return out
}

// Decode sets p from a 56-byte canonical encoding. It returns
// ErrInvalidEncoding when the bytes are not the canonical encoding of
// any group element, and also when they encode the identity while
// allowIdentity is false. The running time depends only on the length
// and validity of the input, never on which element it encodes.
func (p *Point) Decode(b []byte, allowIdentity bool) error {
	if len(b) != SerBytes {
		return ErrInvalidEncoding
	}
	var s fieldElement
	ok := s.setB56(b)
	ok &= ^s.isNegativeMask()
	if !allowIdentity {
		ok &= ^s.isZeroMask()
	}

	var ss, u1, u2, v, invsqrt, u3, x, y fieldElement
	ss.sqr(&s)
	u1.add(&feOne, &ss)
	u2.sqr(&u1)
	v.mulSmall(&ss, 4*curveD) // -4d = 156324
	u2.add(&u2, &v)           // u1^2 - 4 d s^2

	v.sqr(&u1)
	v.mul(&v, &u2)
	ok &= invsqrt.isr(&v) // 1/sqrt(u2 u1^2)

	u3.add(&s, &s)
	u3.mul(&u3, &invsqrt)
	u3.mul(&u3, &u1)
	u3.mul(&u3, &sqrtMinusD)
	u3.abs()

	x.mul(&u3, &invsqrt)
	x.mul(&x, &u2)
	x.mul(&x, &invSqrtMinusD)

	y.sub(&feOne, &ss)
	y.mul(&y, &invsqrt)
	y.mul(&y, &u1)

	if ok != ^uint32(0) {
		return ErrInvalidEncoding
	}
	p.x = x
	p.y = y
	p.z = feOne
	p.t.mul(&x, &y)
	return nil
}

// FromUniformBytes sets p from UniformBytes (112) bytes of uniformly
// random input, mapping each 56-byte half onto the curve and adding
// the results. The output is indistinguishable from a uniformly random
// group element when the input is uniform; fixed input gives a fixed
// point, so this also serves as a hash-to-group primitive.
func (p *Point) FromUniformBytes(b []byte) *Point {
	if len(b) != UniformBytes {
		panic("decaf: uniform input must be 112 bytes")
	}
	var q Point
	p.mapToPoint(b[:SerBytes])
	q.mapToPoint(b[SerBytes:])
	return p.Add(p, &q)
}

// mapToPoint applies the Elligator-style map of RFC 9496 to 56 bytes,
// interpreted little-endian and reduced mod p.
func (p *Point) mapToPoint(b []byte) {
	var t, r, u0, u1, v, tv, sgn, s, tmp fieldElement
	t.setB56(b) // reduced by truncation; further reduction is implicit

	r.sqr(&t)
	r.neg(&r) // -t^2

	u0.sub(&r, &feOne)
	u0.mulSmall(&u0, curveD)
	u0.neg(&u0) // d(r-1)

	tmp.sub(&u0, &r)
	u1.add(&u0, &feOne)
	u1.mul(&u1, &tmp) // (u0+1)(u0-r)

	tmp.add(&r, &feOne)
	tmp.mul(&tmp, &u1)
	wasSquare := v.sqrtRatio(&oneMinusTwoD, &tmp)

	tv.mul(&t, &v)
	v.cmov(&tv, ^wasSquare) // v' = v if square else t*v

	sgn = feOne
	sgn.condNeg(^wasSquare) // +1 if square else -1

	tmp.add(&r, &feOne)
	s.mul(&v, &tmp) // s = v'(r+1)

	var w0, w1, w2, w3 fieldElement
	w0 = s
	w0.abs()
	w0.add(&w0, &w0) // 2|s|

	w1.sqr(&s)
	w2.sub(&w1, &feOne) // s^2 - 1
	w1.add(&w1, &feOne) // s^2 + 1

	w3.sub(&r, &feOne)
	w3.mul(&w3, &s)
	w3.mul(&w3, &v)
	w3.mul(&w3, &oneMinusTwoD)
	w3.add(&w3, &sgn) // v' s (r-1)(1-2d) + sgn

	p.x.mul(&w0, &w3)
	p.y.mul(&w2, &w1)
	p.z.mul(&w1, &w3)
	p.t.mul(&w0, &w2)
}
