package bitvec

import "math/bits"

// Msb returns the index of the most significant set bit, or -1 for the
// empty set. On an indefinite set there is no highest member and
// ErrIndefinite is returned.
func (b *BitSet) Msb() (int, error) {
	if b.tail != tailZero {
		return -1, ErrIndefinite
	}
	for k := len(b.words) - 1; k >= 0; k-- {
		if w := b.words[k]; w != 0 {
			return k<<log2WordBits + bits.Len64(w) - 1, nil
		}
	}
	return -1, nil
}

// Lsb returns the index of the least significant set bit, or -1 for the
// empty set. Indefinite sets always have a least member, so Lsb never
// fails: with no explicit set bit it is the first tail position.
func (b *BitSet) Lsb() int {
	for k, w := range b.words {
		if w != 0 {
			return k<<log2WordBits + bits.TrailingZeros64(w)
		}
	}
	if b.tail != tailZero {
		return b.Len()
	}
	return -1
}

// Ntz returns the number of trailing zeros, which for this representation
// is the index of the lowest set bit: identical to Lsb.
func (b *BitSet) Ntz() int { return b.Lsb() }

// NextSet returns the first member at or after i, honoring the tail: on an
// indefinite set the search always succeeds. The boolean is false when no
// member exists at or after i.
//
// NextSet panics with *IndexError if i is negative.
func (b *BitSet) NextSet(i int) (int, bool) {
	checkIndex("NextSet", i)
	k := i >> log2WordBits
	if k >= len(b.words) {
		if b.tail != tailZero {
			return i, true
		}
		return 0, false
	}
	if w := b.words[k] >> (uint(i) & (wordBits - 1)); w != 0 {
		return i + bits.TrailingZeros64(w), true
	}
	for k++; k < len(b.words); k++ {
		if w := b.words[k]; w != 0 {
			return k<<log2WordBits + bits.TrailingZeros64(w), true
		}
	}
	if b.tail != tailZero {
		return b.Len(), true
	}
	return 0, false
}

// NextClear returns the first non-member at or after i. On a finite set
// the search always succeeds; on an indefinite set it fails once the
// explicit words are exhausted.
//
// NextClear panics with *IndexError if i is negative.
func (b *BitSet) NextClear(i int) (int, bool) {
	checkIndex("NextClear", i)
	k := i >> log2WordBits
	if k >= len(b.words) {
		if b.tail == tailZero {
			return i, true
		}
		return 0, false
	}
	if w := ^b.words[k] >> (uint(i) & (wordBits - 1)); w != 0 {
		return i + bits.TrailingZeros64(w), true
	}
	for k++; k < len(b.words); k++ {
		if w := ^b.words[k]; w != 0 {
			return k<<log2WordBits + bits.TrailingZeros64(w), true
		}
	}
	if b.tail == tailZero {
		return b.Len(), true
	}
	return 0, false
}
