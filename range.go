package bitvec

// Get returns the logical bit at index i: an explicit word bit when i is
// covered by the words, the tail's value beyond them. It never fails for
// a valid index.
//
// Get panics with *IndexError if i is negative.
func (b *BitSet) Get(i int) uint {
	checkIndex("Get", i)
	if k := i >> log2WordBits; k < len(b.words) {
		return uint(b.words[k] >> (uint(i) & (wordBits - 1)) & 1)
	}
	return uint(b.tail & 1)
}

// Test reports whether i is a member of the set.
//
// Test panics with *IndexError if i is negative.
func (b *BitSet) Test(i int) bool {
	checkIndex("Test", i)
	if k := i >> log2WordBits; k < len(b.words) {
		return b.words[k]>>(uint(i)&(wordBits-1))&1 != 0
	}
	return b.tail != tailZero
}

// Set adds i to the set and returns b.
//
// Set panics with *IndexError if i is negative.
func (b *BitSet) Set(i int) *BitSet {
	checkIndex("Set", i)
	return b.setTo(i, true)
}

// Clear removes i from the set and returns b.
//
// Clear panics with *IndexError if i is negative.
func (b *BitSet) Clear(i int) *BitSet {
	checkIndex("Clear", i)
	return b.setTo(i, false)
}

// SetTo writes bit i to the given value and returns b.
//
// SetTo panics with *IndexError if i is negative.
func (b *BitSet) SetTo(i int, v bool) *BitSet {
	checkIndex("SetTo", i)
	return b.setTo(i, v)
}

// Flip inverts bit i and returns b.
//
// Flip panics with *IndexError if i is negative.
func (b *BitSet) Flip(i int) *BitSet {
	checkIndex("Flip", i)
	k := i >> log2WordBits
	b.ensureWords(k)
	b.words[k] ^= 1 << (uint(i) & (wordBits - 1))
	return b.compact()
}

func (b *BitSet) setTo(i int, v bool) *BitSet {
	k := i >> log2WordBits
	if k >= len(b.words) && v == (b.tail != tailZero) {
		return b // the tail already holds that value
	}
	b.ensureWords(k)
	if v {
		b.words[k] |= 1 << (uint(i) & (wordBits - 1))
	} else {
		b.words[k] &^= 1 << (uint(i) & (wordBits - 1))
	}
	return b.compact()
}

// SetRange adds every index in the half-open range [from,to) and
// returns b. An empty range is a no-op.
//
// SetRange panics with *IndexError if from is negative or from > to.
func (b *BitSet) SetRange(from, to int) *BitSet {
	checkRange("SetRange", from, to)
	return b.setRangeTo(from, to, true)
}

// ClearRange removes every index in [from,to) and returns b.
//
// ClearRange panics with *IndexError if from is negative or from > to.
func (b *BitSet) ClearRange(from, to int) *BitSet {
	checkRange("ClearRange", from, to)
	return b.setRangeTo(from, to, false)
}

// SetRangeTo writes every bit in [from,to) to the given value and
// returns b.
//
// SetRangeTo panics with *IndexError if from is negative or from > to.
func (b *BitSet) SetRangeTo(from, to int, v bool) *BitSet {
	checkRange("SetRangeTo", from, to)
	return b.setRangeTo(from, to, v)
}

// FlipRange inverts every bit in [from,to) and returns b.
//
// FlipRange panics with *IndexError if from is negative or from > to.
func (b *BitSet) FlipRange(from, to int) *BitSet {
	checkRange("FlipRange", from, to)
	if from == to {
		return b
	}
	sw, ew := from>>log2WordBits, (to-1)>>log2WordBits
	b.ensureWords(ew)
	startMask := tailOne << (uint(from) & (wordBits - 1))
	endMask := tailOne >> (wordBits - 1 - (uint(to-1) & (wordBits - 1)))
	if sw == ew {
		b.words[sw] ^= startMask & endMask
		return b.compact()
	}
	b.words[sw] ^= startMask
	for k := sw + 1; k < ew; k++ {
		b.words[k] = ^b.words[k]
	}
	b.words[ew] ^= endMask
	return b.compact()
}

func (b *BitSet) setRangeTo(from, to int, v bool) *BitSet {
	if v == (b.tail != tailZero) && to > b.Len() {
		// Bits at or beyond the explicit words already hold v.
		to = b.Len()
	}
	if from >= to {
		return b
	}
	sw, ew := from>>log2WordBits, (to-1)>>log2WordBits
	b.ensureWords(ew)
	startMask := tailOne << (uint(from) & (wordBits - 1))
	endMask := tailOne >> (wordBits - 1 - (uint(to-1) & (wordBits - 1)))
	if sw == ew {
		b.applyMask(sw, startMask&endMask, v)
		return b.compact()
	}
	b.applyMask(sw, startMask, v)
	for k := sw + 1; k < ew; k++ {
		if v {
			b.words[k] = tailOne
		} else {
			b.words[k] = 0
		}
	}
	b.applyMask(ew, endMask, v)
	return b.compact()
}

func (b *BitSet) applyMask(k int, mask uint64, v bool) {
	if v {
		b.words[k] |= mask
	} else {
		b.words[k] &^= mask
	}
}

// ClearAll resets b to the canonical empty set and returns b. It empties
// indefinite sets too: the tail is reset to zero.
func (b *BitSet) ClearAll() *BitSet {
	b.words = b.words[:0]
	b.tail = tailZero
	return b
}

// FlipAll complements the whole set in place and returns b. It is the
// mutating counterpart of Not: the tail flips, so a finite set becomes
// indefinite and vice versa.
func (b *BitSet) FlipAll() *BitSet {
	for k := range b.words {
		b.words[k] = ^b.words[k]
	}
	b.tail = ^b.tail
	return b.compact()
}

// Slice returns the bits of [from,to) re-indexed to start at 0 as a new,
// always finite BitSet. Tail bits of an indefinite source inside the
// window arrive as ones.
//
// Slice panics with *IndexError if from is negative or from > to.
func (b *BitSet) Slice(from, to int) *BitSet {
	checkRange("Slice", from, to)
	m := to - from
	if m == 0 {
		return New()
	}
	nw := (m + wordBits - 1) >> log2WordBits
	base, off := from>>log2WordBits, uint(from)&(wordBits-1)
	out := &BitSet{words: make([]uint64, nw)}
	for r := 0; r < nw; r++ {
		w := b.wordOrTail(base+r) >> off
		if off != 0 {
			w |= b.wordOrTail(base+r+1) << (wordBits - off)
		}
		out.words[r] = w
	}
	if rem := uint(m) & (wordBits - 1); rem != 0 {
		out.words[nw-1] &= 1<<rem - 1
	}
	return out.compact()
}

// SliceFrom is Slice with the upper bound defaulting to the explicit bit
// length Len. For a start at or beyond Len the result is empty; in
// particular the tail of an indefinite set is not expanded.
//
// SliceFrom panics with *IndexError if from is negative.
func (b *BitSet) SliceFrom(from int) *BitSet {
	checkIndex("SliceFrom", from)
	to := b.Len()
	if to < from {
		to = from
	}
	return b.Slice(from, to)
}
