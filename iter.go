package bitvec

import (
	"iter"
	"math/bits"
)

// Iterator returns a lazy ascending sequence over the members of the set.
// The sequence is restartable: each range statement walks the words from
// the start. Mutating b while a walk is in progress is undefined.
//
// Indefinite sets cannot be enumerated; Iterator reports ErrIndefinite
// before any loop runs.
func (b *BitSet) Iterator() (iter.Seq[int], error) {
	if b.tail != tailZero {
		return nil, ErrIndefinite
	}
	return func(yield func(int) bool) {
		for k, w := range b.words {
			for w != 0 {
				if !yield(k<<log2WordBits + bits.TrailingZeros64(w)) {
					return
				}
				w &= w - 1
			}
		}
	}, nil
}

// ToArray returns the members of the set in ascending order. Indefinite
// sets report ErrIndefinite.
func (b *BitSet) ToArray() ([]int, error) {
	n, err := b.Cardinality()
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, n)
	for k, w := range b.words {
		for w != 0 {
			out = append(out, k<<log2WordBits+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
	return out, nil
}
