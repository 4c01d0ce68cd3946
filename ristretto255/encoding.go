package ristretto255

import (
	"bytes"

	"filippo.io/edwards25519/field"
)

// Encode appends the canonical 32-byte encoding of e to dst and
// returns the extended slice. Every representative of a group element
// encodes to the same bytes; the identity encodes to all zeros.
func (e *Element) Encode(dst []byte) []byte {
	var u1, u2, v, invsqrt, den1, den2, zInv, ix, iy, enchanted field.Element

	u1.Add(&e.z, &e.y)
	v.Subtract(&e.z, &e.y)
	u1.Multiply(&u1, &v) // (z+y)(z-y)
	u2.Multiply(&e.x, &e.y)

	v.Square(&u2)
	v.Multiply(&v, &u1)
	invsqrt.SqrtRatio(&feOne, &v)

	den1.Multiply(&invsqrt, &u1)
	den2.Multiply(&invsqrt, &u2)
	zInv.Multiply(&den1, &den2)
	zInv.Multiply(&zInv, &e.t)

	ix.Multiply(&e.x, &sqrtM1)
	iy.Multiply(&e.y, &sqrtM1)
	enchanted.Multiply(&den1, &invSqrtAMinusD)

	var rotT field.Element
	rotT.Multiply(&e.t, &zInv)
	rotate := rotT.IsNegative()

	var sx, sy, denInv field.Element
	sx.Select(&iy, &e.x, rotate)
	sy.Select(&ix, &e.y, rotate)
	denInv.Select(&enchanted, &den2, rotate)

	var xz field.Element
	xz.Multiply(&sx, &zInv)
	var negY field.Element
	negY.Negate(&sy)
	sy.Select(&negY, &sy, xz.IsNegative())

	var s field.Element
	s.Subtract(&e.z, &sy)
	s.Multiply(&s, &denInv)
	s.Absolute(&s)

	return append(dst, s.Bytes()...)
}

// Decode sets e from a 32-byte canonical encoding. It returns
// ErrInvalidEncoding for anything that is not the canonical encoding
// of a group element, and for the identity encoding when allowIdentity
// is false. Timing depends only on input length and validity.
func (e *Element) Decode(b []byte, allowIdentity bool) error {
	if len(b) != SerBytes {
		return ErrInvalidEncoding
	}
	var s field.Element
	if _, err := s.SetBytes(b); err != nil {
		return ErrInvalidEncoding
	}
	// SetBytes masks the top bit and accepts non-canonical values, so
	// canonicality is a re-encoding check.
	if !bytes.Equal(s.Bytes(), b) || s.IsNegative() == 1 {
		return ErrInvalidEncoding
	}
	if !allowIdentity && s.Equal(new(field.Element).Zero()) == 1 {
		return ErrInvalidEncoding
	}

	var ss, u1, u2, u2Sq, v, invsqrt, denX, denY, x, y, t field.Element
	ss.Square(&s)
	u1.Subtract(&feOne, &ss)
	u2.Add(&feOne, &ss)
	u2Sq.Square(&u2)

	v.Multiply(&curveD, &u1)
	v.Multiply(&v, &u1)
	v.Negate(&v)
	v.Subtract(&v, &u2Sq) // -(d u1^2) - u2^2

	var arg field.Element
	arg.Multiply(&v, &u2Sq)
	_, wasSquare := invsqrt.SqrtRatio(&feOne, &arg)

	denX.Multiply(&invsqrt, &u2)
	denY.Multiply(&invsqrt, &denX)
	denY.Multiply(&denY, &v)

	x.Add(&s, &s)
	x.Multiply(&x, &denX)
	x.Absolute(&x)
	y.Multiply(&u1, &denY)
	t.Multiply(&x, &y)

	if wasSquare == 0 || t.IsNegative() == 1 || y.Equal(new(field.Element).Zero()) == 1 {
		return ErrInvalidEncoding
	}
	e.x.Set(&x)
	e.y.Set(&y)
	e.z.One()
	e.t.Set(&t)
	return nil
}

// FromUniformBytes sets e from 64 bytes of uniformly random input,
// mapping each 32-byte half onto the curve and adding the results; a
// uniform input gives an output indistinguishable from a uniform
// group element.
func (e *Element) FromUniformBytes(b []byte) *Element {
	if len(b) != UniformBytes {
		panic("ristretto255: uniform input must be 64 bytes")
	}
	var q Element
	e.mapToElement(b[:SerBytes])
	q.mapToElement(b[SerBytes:])
	return e.Add(e, &q)
}

// mapToElement applies the RFC 9496 ristretto255 map to 32 bytes,
// interpreted as a field element with the top bit masked.
func (e *Element) mapToElement(b []byte) {
	var t field.Element
	t.SetBytes(b)

	var r, u, v, s, sPrime, c, n field.Element
	r.Square(&t)
	r.Multiply(&r, &sqrtM1)

	u.Add(&r, &feOne)
	u.Multiply(&u, &oneMinusDSq)

	var rd field.Element
	rd.Multiply(&r, &curveD)
	v.Negate(&feOne)
	v.Subtract(&v, &rd) // -1 - r*d
	rd.Add(&r, &curveD)
	v.Multiply(&v, &rd) // (-1 - r*d)(r + d)

	_, wasSquare := s.SqrtRatio(&u, &v)

	sPrime.Multiply(&s, &t)
	sPrime.Absolute(&sPrime)
	sPrime.Negate(&sPrime)

	// s = s_prime and c = r in the non-square case; otherwise s is the
	// root already and c = -1.
	notSquare := 1 - wasSquare
	s.Select(&sPrime, &s, notSquare)
	var minusOne field.Element
	minusOne.Negate(&feOne)
	c.Select(&r, &minusOne, notSquare)

	n.Subtract(&r, &feOne)
	n.Multiply(&n, &c)
	n.Multiply(&n, &dMinusOneSq)
	n.Subtract(&n, &v) // c(r-1)(d-1)^2 - v

	var w0, w1, w2, w3, sSq field.Element
	w0.Multiply(&s, &v)
	w0.Add(&w0, &w0)
	w1.Multiply(&n, &sqrtADMinusOne)
	sSq.Square(&s)
	w2.Subtract(&feOne, &sSq)
	w3.Add(&feOne, &sSq)

	e.x.Multiply(&w0, &w3)
	e.y.Multiply(&w2, &w1)
	e.z.Multiply(&w1, &w3)
	e.t.Multiply(&w0, &w2)
}
