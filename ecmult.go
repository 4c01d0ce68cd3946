package decaf

// ScalarMulWords sets p = k * q, where k is given as little-endian
// 64-bit words and processed as exactly 64*len(words) bits, most
// significant first. The ladder doubles and conditionally accumulates
// with a point-wide conditional move, so the sequence of group
// operations depends only on the word count. Scalar 0 and q =
// Identity need no special handling; the formulas are complete.
func (p *Point) ScalarMulWords(q *Point, words []uint64) *Point {
	var acc, sum, base Point
	base.Set(q)
	acc.Set(&identityPoint)
	for i := len(words) - 1; i >= 0; i-- {
		w := words[i]
		for bit := 63; bit >= 0; bit-- {
			acc.Double(&acc)
			sum.Add(&acc, &base)
			acc.cmov(&sum, uint32(nonzeroMask64(w>>uint(bit)&1)))
		}
	}
	p.Set(&acc)
	acc.clear()
	sum.clear()
	base.clear()
	return p
}

// ScalarMul sets p = s * q and returns p.
func (p *Point) ScalarMul(q *Point, s *Scalar) *Point {
	return p.ScalarMulWords(q, s.n[:])
}
