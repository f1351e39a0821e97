package bitvec

// Binary algebra extends both operands with their own tails out to the
// longer explicit length, so a co-finite operand behaves exactly as if its
// missing words were materialized all-ones. The result tail is the same
// boolean operation applied to the operand tails.

// And returns the intersection of b and o as a new BitSet.
func (b *BitSet) And(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	out := &BitSet{words: make([]uint64, n), tail: b.tail & o.tail}
	for k := range out.words {
		out.words[k] = b.wordOrTail(k) & o.wordOrTail(k)
	}
	return out.compact()
}

// Or returns the union of b and o as a new BitSet.
func (b *BitSet) Or(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	out := &BitSet{words: make([]uint64, n), tail: b.tail | o.tail}
	for k := range out.words {
		out.words[k] = b.wordOrTail(k) | o.wordOrTail(k)
	}
	return out.compact()
}

// Xor returns the symmetric difference of b and o as a new BitSet.
func (b *BitSet) Xor(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	out := &BitSet{words: make([]uint64, n), tail: b.tail ^ o.tail}
	for k := range out.words {
		out.words[k] = b.wordOrTail(k) ^ o.wordOrTail(k)
	}
	return out.compact()
}

// AndNot returns the difference b \ o as a new BitSet.
func (b *BitSet) AndNot(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	out := &BitSet{words: make([]uint64, n), tail: b.tail &^ o.tail}
	for k := range out.words {
		out.words[k] = b.wordOrTail(k) &^ o.wordOrTail(k)
	}
	return out.compact()
}

// Not returns the complement of b as a new BitSet. The complement of a
// finite set is indefinite and vice versa.
func (b *BitSet) Not() *BitSet {
	out := &BitSet{words: make([]uint64, len(b.words)), tail: ^b.tail}
	for k, w := range b.words {
		out.words[k] = ^w
	}
	return out.compact()
}

// InPlaceAnd intersects o into b and returns b.
func (b *BitSet) InPlaceAnd(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	b.ensureWords(n - 1)
	for k := 0; k < n; k++ {
		b.words[k] &= o.wordOrTail(k)
	}
	b.tail &= o.tail
	return b.compact()
}

// InPlaceOr unions o into b and returns b.
func (b *BitSet) InPlaceOr(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	b.ensureWords(n - 1)
	for k := 0; k < n; k++ {
		b.words[k] |= o.wordOrTail(k)
	}
	b.tail |= o.tail
	return b.compact()
}

// InPlaceXor replaces b with the symmetric difference of b and o and
// returns b.
func (b *BitSet) InPlaceXor(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	b.ensureWords(n - 1)
	for k := 0; k < n; k++ {
		b.words[k] ^= o.wordOrTail(k)
	}
	b.tail ^= o.tail
	return b.compact()
}

// InPlaceAndNot removes the members of o from b and returns b.
func (b *BitSet) InPlaceAndNot(o *BitSet) *BitSet {
	n := max(len(b.words), len(o.words))
	b.ensureWords(n - 1)
	for k := 0; k < n; k++ {
		b.words[k] &^= o.wordOrTail(k)
	}
	b.tail &^= o.tail
	return b.compact()
}

// Equal reports whether b and o contain exactly the same members: same
// tail, and index-wise equal bits after extending the shorter explicit
// sequence with its own tail.
func (b *BitSet) Equal(o *BitSet) bool {
	if b.tail != o.tail {
		return false
	}
	n := max(len(b.words), len(o.words))
	for k := 0; k < n; k++ {
		if b.wordOrTail(k) != o.wordOrTail(k) {
			return false
		}
	}
	return true
}
