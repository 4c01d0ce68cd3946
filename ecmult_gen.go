package decaf

// Fixed-base multiplication uses a table of the first sixteen
// multiples of the generator, consumed four scalar bits at a time.
// Table lookups scan every entry with conditional moves so the access
// pattern is independent of the scalar.

var genTable = makeGenTable()

func makeGenTable() (t [16]Point) {
	t[0].Set(&identityPoint)
	for i := 1; i < 16; i++ {
		t[i].Add(&t[i-1], &basePoint)
	}
	return
}

// lookupGen sets p = idx * B for 0 <= idx < 16 in constant time.
func (p *Point) lookupGen(idx uint64) {
	p.Set(&genTable[0])
	for i := 1; i < 16; i++ {
		hit := ^nonzeroMask64(idx ^ uint64(i))
		p.cmov(&genTable[i], uint32(hit))
	}
}

// ScalarBaseMul sets p = s * B, where B is the group generator, and
// returns p.
func (p *Point) ScalarBaseMul(s *Scalar) *Point {
	var acc, win Point
	acc.Set(&identityPoint)
	for i := 6; i >= 0; i-- {
		w := s.n[i]
		for shift := 60; shift >= 0; shift -= 4 {
			acc.Double(&acc)
			acc.Double(&acc)
			acc.Double(&acc)
			acc.Double(&acc)
			win.lookupGen(w >> uint(shift) & 0xf)
			acc.Add(&acc, &win)
		}
	}
	p.Set(&acc)
	acc.clear()
	win.clear()
	return p
}
