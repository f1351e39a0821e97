package bitvec

// Lsh shifts the set toward higher indices by s in place and returns b:
// every member i becomes i+s. The vacated indices [0,s) are cleared, so
// an indefinite set grows explicit zero words at the bottom while its
// tail stays all-ones.
//
// Lsh panics with *IndexError if s is negative.
func (b *BitSet) Lsh(s int) *BitSet {
	checkIndex("Lsh", s)
	if s == 0 || b.IsEmpty() {
		return b
	}
	ws, bs := s>>log2WordBits, uint(s)&(wordBits-1)
	n := len(b.words) + ws
	if bs != 0 {
		n++
	}
	words := make([]uint64, n)
	for k, w := range b.words {
		words[k+ws] |= w << bs
		if bs != 0 {
			words[k+ws+1] |= w >> (wordBits - bs)
		}
	}
	if b.tail != tailZero && bs != 0 {
		// The relocated tail begins mid-word; pad the top word up to it.
		words[n-1] |= tailOne << bs
	}
	b.words = words
	return b.compact()
}

// Rsh shifts the set toward lower indices by s in place and returns b:
// every member i >= s becomes i-s, members below s fall off. The tail
// rides along, so shifting an indefinite set keeps it indefinite.
//
// Rsh panics with *IndexError if s is negative.
func (b *BitSet) Rsh(s int) *BitSet {
	checkIndex("Rsh", s)
	if s == 0 || b.IsEmpty() {
		return b
	}
	ws, bs := s>>log2WordBits, uint(s)&(wordBits-1)
	n := len(b.words) - ws
	if n <= 0 {
		b.words = b.words[:0]
		return b
	}
	for k := 0; k < n; k++ {
		w := b.wordOrTail(k+ws) >> bs
		if bs != 0 {
			w |= b.wordOrTail(k+ws+1) << (wordBits - bs)
		}
		b.words[k] = w
	}
	b.words = b.words[:n]
	return b.compact()
}
