package bitvec

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ToRoaring converts a finite set to a 64-bit roaring bitmap holding the
// same members. Indefinite sets report ErrIndefinite.
func (b *BitSet) ToRoaring() (*roaring64.Bitmap, error) {
	if b.tail != tailZero {
		return nil, ErrIndefinite
	}
	rb := roaring64.New()
	for k, w := range b.words {
		for w != 0 {
			rb.Add(uint64(k<<log2WordBits + bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return rb, nil
}

// FromRoaring builds a finite BitSet from the members of rb. Roaring
// members beyond the int range cannot be represented densely and are
// reported as a *ParseError.
func FromRoaring(rb *roaring64.Bitmap) (*BitSet, error) {
	b := New()
	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		if v > math.MaxInt {
			return nil, &ParseError{Input: strconv.FormatUint(v, 10), Pos: -1, Reason: "index exceeds int range"}
		}
		b.setTo(int(v), true)
	}
	return b, nil
}
