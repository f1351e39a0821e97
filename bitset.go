package bitvec

import "math/bits"

const (
	// wordBits is the number of bits per storage word.
	wordBits = 64
	// log2WordBits is used to turn bit indices into word indices.
	log2WordBits = 6
	// tailZero and tailOne are the only legal tail patterns: the value of
	// every bit beyond the explicit words, spread across a full word.
	tailZero = uint64(0)
	tailOne  = ^uint64(0)
)

// BitSet is a set of non-negative integers backed by a growable sequence
// of 64-bit words plus a tail: the implicit value of every bit position at
// or beyond len(words)*64. A zero tail makes the set finite; an all-ones
// tail makes it indefinite (co-finite), the complement of a finite set,
// such as the result of Not on a finite value.
//
// The representation is kept canonical at all times: the highest explicit
// word never equals the tail pattern, and the canonical empty set has no
// words and a zero tail. Every operation re-canonicalizes before
// returning, so two BitSets holding the same logical set always have
// identical words and tail.
//
// Operations come in two families. Value-returning operations (And, Or,
// Xor, AndNot, Not, Clone, Slice, SliceFrom) leave their operands
// untouched and return a fresh BitSet owning its own storage.
// Mutating operations (Set, Clear, Flip, SetRange, Lsh, Rsh, InPlace*,
// ...) modify the receiver and return it for chaining. No two reachable
// BitSets ever share a words slice.
//
// A BitSet is not safe for concurrent mutation. Concurrent readers of an
// instance that is not being mutated are safe.
type BitSet struct {
	words []uint64
	tail  uint64
}

// New returns the canonical empty set.
func New() *BitSet {
	return &BitSet{}
}

// From returns a finite BitSet whose explicit words are a copy of buf,
// with buf[0] covering bits [0,64). Trailing zero words are trimmed.
func From(buf []uint64) *BitSet {
	b := &BitSet{words: make([]uint64, len(buf))}
	copy(b.words, buf)
	return b.compact()
}

// Clone returns a deep copy of b.
func (b *BitSet) Clone() *BitSet {
	out := &BitSet{tail: b.tail}
	if len(b.words) > 0 {
		out.words = make([]uint64, len(b.words))
		copy(out.words, b.words)
	}
	return out
}

// Words returns a copy of the explicit words, least significant first.
// The tail is not included; combine with IsFinite to interpret bits beyond
// the returned slice.
func (b *BitSet) Words() []uint64 {
	if len(b.words) == 0 {
		return nil
	}
	out := make([]uint64, len(b.words))
	copy(out, b.words)
	return out
}

// WordCount returns the number of explicit words.
func (b *BitSet) WordCount() int { return len(b.words) }

// Len returns the explicit bit length, len(words)*64. Bits at or beyond
// Len take the tail's value: 0 for finite sets, 1 for indefinite ones.
func (b *BitSet) Len() int { return len(b.words) << log2WordBits }

// IsFinite reports whether the set has finitely many members.
func (b *BitSet) IsFinite() bool { return b.tail == tailZero }

// IsEmpty reports whether the set has no members at all. It is answerable
// for every value: an indefinite set is never empty.
func (b *BitSet) IsEmpty() bool { return b.tail == tailZero && len(b.words) == 0 }

// Cardinality returns the number of members. On an indefinite set the
// count is unbounded and ErrIndefinite is returned instead of a number.
func (b *BitSet) Cardinality() (int, error) {
	if b.tail != tailZero {
		return 0, ErrIndefinite
	}
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n, nil
}

// Rank returns the number of members in [0,i]. The window is finite, so
// Rank is defined for indefinite sets too.
//
// Rank panics with *IndexError if i is negative.
func (b *BitSet) Rank(i int) int {
	checkIndex("Rank", i)
	k := i >> log2WordBits
	n := 0
	for j := 0; j < k && j < len(b.words); j++ {
		n += bits.OnesCount64(b.words[j])
	}
	low := uint(i & (wordBits - 1))
	if k < len(b.words) {
		n += bits.OnesCount64(b.words[k] << (wordBits - 1 - low) >> (wordBits - 1 - low))
		return n
	}
	if b.tail != tailZero {
		n += i - b.Len() + 1
	}
	return n
}

// wordOrTail returns word k, or the tail pattern when k lies beyond the
// explicit words. It lets algebra, ranged operations and shifts treat the
// infinite extension uniformly without materializing it.
func (b *BitSet) wordOrTail(k int) uint64 {
	if k < len(b.words) {
		return b.words[k]
	}
	return b.tail
}

// ensureWords grows the explicit words with tail-valued entries so that
// word index k exists. It never shrinks.
func (b *BitSet) ensureWords(k int) {
	if k < len(b.words) {
		return
	}
	n := len(b.words)
	b.words = append(b.words, make([]uint64, k+1-n)...)
	if b.tail != tailZero {
		for i := n; i < len(b.words); i++ {
			b.words[i] = b.tail
		}
	}
}

// compact restores the canonical form by trimming trailing words equal to
// the tail pattern. It returns b for chaining.
func (b *BitSet) compact() *BitSet {
	n := len(b.words)
	for n > 0 && b.words[n-1] == b.tail {
		n--
	}
	b.words = b.words[:n]
	return b
}
