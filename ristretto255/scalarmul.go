package ristretto255

import "filippo.io/edwards25519"

// Scalar is an integer modulo the group order, reusing the
// edwards25519 scalar arithmetic; ristretto255 shares the order of
// the edwards25519 prime-order subgroup.
type Scalar = edwards25519.Scalar

// NewScalar returns a zero scalar.
func NewScalar() *Scalar {
	return edwards25519.NewScalar()
}

// toEdwards lifts the representative onto an edwards25519 point.
// Every Element ever produced lies on the curve with a consistent
// extended T coordinate, so the conversion cannot fail.
func (e *Element) toEdwards() *edwards25519.Point {
	p, err := new(edwards25519.Point).SetExtendedCoordinates(&e.x, &e.y, &e.z, &e.t)
	if err != nil {
		panic("ristretto255: representative left the curve: " + err.Error())
	}
	return p
}

func (e *Element) fromEdwards(p *edwards25519.Point) *Element {
	x, y, z, t := p.ExtendedCoordinates()
	e.x.Set(x)
	e.y.Set(y)
	e.z.Set(z)
	e.t.Set(t)
	return e
}

// ScalarMul sets e = s * u and returns e. Scalar multiplication runs
// constant time on the underlying edwards25519 point; multiplying a
// representative multiplies the group element, so the quotient needs
// no extra work.
func (e *Element) ScalarMul(u *Element, s *Scalar) *Element {
	p := u.toEdwards()
	p.ScalarMult(s, p)
	return e.fromEdwards(p)
}

// ScalarBaseMul sets e = s * B, where B is the group generator, and
// returns e, using the precomputed basepoint tables.
func (e *Element) ScalarBaseMul(s *Scalar) *Element {
	return e.fromEdwards(new(edwards25519.Point).ScalarBaseMult(s))
}
