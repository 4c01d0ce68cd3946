package decaf

// Point is an element of the decaf448 prime-order group, held as a
// representative on the underlying Edwards curve x^2 + y^2 = 1 + d x^2 y^2
// in extended coordinates (X:Y:Z:T) with XY = ZT. Two representatives
// denote the same group element when X1 Y2 = X2 Y1.
//
// The zero value is not valid; obtain points from Identity, Generator,
// Decode or FromUniformBytes.
type Point struct {
	x, y, z, t fieldElement
}

const curveD = 39081 // curve constant is -39081; the sign is folded into the formulas

// Initializer functions keep package variable setup in dependency
// order: the generator decode needs the derived curve constants, and
// the fixed-base table needs the generator.
var (
	identityPoint = Point{y: feOne, z: feOne}
	basePoint     = decodeGenerator()
)

func decodeGenerator() Point {
	var enc [SerBytes]byte
	for i := 0; i < 28; i++ {
		enc[i] = 0x66
		enc[28+i] = 0x33
	}
	var b Point
	if err := b.Decode(enc[:], false); err != nil {
		panic("decaf: bad generator encoding")
	}
	return b
}

// Identity returns the neutral element of the group.
func Identity() *Point {
	p := new(Point)
	p.Set(&identityPoint)
	return p
}

// Generator returns the standard base point.
func Generator() *Point {
	p := new(Point)
	p.Set(&basePoint)
	return p
}

// Set sets p = q and returns p.
func (p *Point) Set(q *Point) *Point {
	*p = *q
	return p
}

// Add sets p = a + b and returns p. The formulas are complete: any
// combination of inputs, including doubling and the identity, is
// handled without exceptional cases.
func (p *Point) Add(a, b *Point) *Point {
	var pa, pb, pc, pd, pe, pf, pg, ph, tmp fieldElement
	pa.mul(&a.x, &b.x)
	pb.mul(&a.y, &b.y)
	pc.mul(&a.t, &b.t)
	pc.mulSmall(&pc, curveD)
	pd.mul(&a.z, &b.z)
	pe.add(&a.x, &a.y)
	tmp.add(&b.x, &b.y)
	pe.mul(&pe, &tmp)
	pe.sub(&pe, &pa)
	pe.sub(&pe, &pb)
	// d = -39081, so d*T1*T2 = -pc
	pf.add(&pd, &pc)
	pg.sub(&pd, &pc)
	ph.sub(&pb, &pa)
	p.x.mul(&pe, &pf)
	p.y.mul(&pg, &ph)
	p.z.mul(&pf, &pg)
	p.t.mul(&pe, &ph)
	return p
}

// Double sets p = 2q and returns p.
func (p *Point) Double(q *Point) *Point {
	return p.Add(q, q)
}

// Negate sets p = -q and returns p.
func (p *Point) Negate(q *Point) *Point {
	p.x.neg(&q.x)
	p.y = q.y
	p.z = q.z
	p.t.neg(&q.t)
	return p
}

// Sub sets p = a - b and returns p.
func (p *Point) Sub(a, b *Point) *Point {
	var nb Point
	nb.Negate(b)
	return p.Add(a, &nb)
}

// Equal returns 1 if p and q are the same group element, 0 otherwise.
// The comparison is constant time.
func (p *Point) Equal(q *Point) int {
	var l, r fieldElement
	l.mul(&p.x, &q.y)
	r.mul(&q.x, &p.y)
	return int(l.equalMask(&r) & 1)
}

// IsIdentity returns 1 if p is the neutral element, 0 otherwise.
func (p *Point) IsIdentity() int {
	return int(p.x.isZeroMask() & 1)
}

// cmov sets p = q if mask is ^0 and leaves p unchanged if mask is 0.
func (p *Point) cmov(q *Point, mask uint32) {
	p.x.cmov(&q.x, mask)
	p.y.cmov(&q.y, mask)
	p.z.cmov(&q.z, mask)
	p.t.cmov(&q.t, mask)
}

// clear zeroes the point representation.
func (p *Point) clear() {
	p.x.clear()
	p.y.clear()
	p.z.clear()
	p.t.clear()
}
