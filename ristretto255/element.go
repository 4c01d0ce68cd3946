package ristretto255

import (
	"encoding/hex"

	"filippo.io/edwards25519/field"
)

// Element is a ristretto255 group element, held as a representative on
// edwards25519 (-x^2 + y^2 = 1 + d x^2 y^2) in extended coordinates.
// Up to eight representatives denote the same element; Encode and
// Equal quotient them out.
//
// The zero value is not valid; obtain elements from Identity,
// Generator, Decode or FromUniformBytes.
type Element struct {
	x, y, z, t field.Element
}

// Curve constants, derived once at startup rather than hardcoded:
// d = -121665/121666, SQRT_M1 = sqrt(-1), SQRT_AD_MINUS_ONE = the odd
// root of a*d - 1, INVSQRT_A_MINUS_D = 1/sqrt(a - d) (a = -1),
// ONE_MINUS_D_SQ = 1 - d^2 and D_MINUS_ONE_SQ = (d - 1)^2.
var (
	feOne          field.Element
	curveD         field.Element
	sqrtM1         field.Element
	sqrtADMinusOne field.Element
	invSqrtAMinusD field.Element
	oneMinusDSq    field.Element
	dMinusOneSq    field.Element

	identityElement Element
	baseElement     Element
)

func init() {
	feOne.One()

	var num, den field.Element
	num.Mult32(&feOne, 121665)
	den.Mult32(&feOne, 121666)
	den.Invert(&den)
	curveD.Multiply(&num, &den)
	curveD.Negate(&curveD)

	var minusOne field.Element
	minusOne.Negate(&feOne)
	sqrtM1.SqrtRatio(&minusOne, &feOne)

	// For a = -1 both radicands coincide: a*d - 1 = a - d = -d - 1.
	var aMinusD field.Element
	aMinusD.Negate(&curveD)
	aMinusD.Subtract(&aMinusD, &feOne)
	// SQRT_AD_MINUS_ONE is the odd root of a*d - 1; SqrtRatio returns
	// the even one.
	sqrtADMinusOne.SqrtRatio(&aMinusD, &feOne)
	sqrtADMinusOne.Negate(&sqrtADMinusOne)
	invSqrtAMinusD.SqrtRatio(&feOne, &aMinusD)

	var dSq field.Element
	dSq.Square(&curveD)
	oneMinusDSq.Subtract(&feOne, &dSq)

	var dMinusOne field.Element
	dMinusOne.Subtract(&curveD, &feOne)
	dMinusOneSq.Square(&dMinusOne)

	identityElement.y.One()
	identityElement.z.One()

	genEnc, err := hex.DecodeString("e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76")
	if err != nil {
		panic("ristretto255: bad generator constant")
	}
	if err := baseElement.Decode(genEnc, false); err != nil {
		panic("ristretto255: generator does not decode")
	}
}

// Identity returns the neutral element.
func Identity() *Element {
	e := new(Element)
	e.Set(&identityElement)
	return e
}

// Generator returns the standard base point (the edwards25519
// basepoint's ristretto image).
func Generator() *Element {
	e := new(Element)
	e.Set(&baseElement)
	return e
}

// Set sets e = u and returns e.
func (e *Element) Set(u *Element) *Element {
	*e = *u
	return e
}

// Add sets e = a + b and returns e, using the complete twisted
// Edwards formulas; identity and doubling need no special handling.
func (e *Element) Add(a, b *Element) *Element {
	var pa, pb, pc, pd, pe, pf, pg, ph, tmp field.Element
	pa.Multiply(&a.x, &b.x)
	pb.Multiply(&a.y, &b.y)
	pc.Multiply(&a.t, &b.t)
	pc.Multiply(&pc, &curveD)
	pd.Multiply(&a.z, &b.z)
	pe.Add(&a.x, &a.y)
	tmp.Add(&b.x, &b.y)
	pe.Multiply(&pe, &tmp)
	pe.Subtract(&pe, &pa)
	pe.Subtract(&pe, &pb)
	pf.Subtract(&pd, &pc)
	pg.Add(&pd, &pc)
	ph.Add(&pb, &pa) // a = -1: H = B - a*A
	e.x.Multiply(&pe, &pf)
	e.y.Multiply(&pg, &ph)
	e.z.Multiply(&pf, &pg)
	e.t.Multiply(&pe, &ph)
	return e
}

// Double sets e = 2u and returns e.
func (e *Element) Double(u *Element) *Element {
	return e.Add(u, u)
}

// Negate sets e = -u and returns e.
func (e *Element) Negate(u *Element) *Element {
	e.x.Negate(&u.x)
	e.y.Set(&u.y)
	e.z.Set(&u.z)
	e.t.Negate(&u.t)
	return e
}

// Sub sets e = a - b and returns e.
func (e *Element) Sub(a, b *Element) *Element {
	var nb Element
	nb.Negate(b)
	return e.Add(a, &nb)
}

// Equal returns 1 if e and u are the same group element, 0 otherwise,
// in constant time. Two clauses cover the rotated representatives of
// the quotient.
func (e *Element) Equal(u *Element) int {
	var f0, f1, f2, f3 field.Element
	f0.Multiply(&e.x, &u.y)
	f1.Multiply(&e.y, &u.x)
	f2.Multiply(&e.y, &u.y)
	f3.Multiply(&e.x, &u.x)
	return f0.Equal(&f1) | f2.Equal(&f3)
}

// IsIdentity returns 1 if e is the neutral element, 0 otherwise.
func (e *Element) IsIdentity() int {
	return e.Equal(&identityElement)
}

// wipe resets the representation to the identity, dropping whatever
// secret-derived value it held.
func (e *Element) wipe() {
	e.Set(&identityElement)
}
