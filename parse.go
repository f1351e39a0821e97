package bitvec

import (
	"math/big"
	"math/rand"
	"strconv"
	"strings"
)

// Parse builds a BitSet from its textual form. It accepts an optional
// leading "~" (complement marker, the String form of indefinite sets),
// followed by either "0x"-prefixed hexadecimal digits or binary digits
// with an optional "0b" prefix. The leftmost digit is the most
// significant, as in ordinary numerals.
//
// Malformed input is reported as a *ParseError.
func Parse(s string) (*BitSet, error) {
	t, off := s, 0
	indefinite := false
	if strings.HasPrefix(t, "~") {
		indefinite = true
		t, off = t[1:], 1
	}
	var (
		b   *BitSet
		err error
	)
	if d, n := trimBasePrefix(t, 'x'); n != 0 {
		b, err = parseHex(s, d, off+n)
	} else {
		d, n = trimBasePrefix(t, 'b')
		b, err = parseBinary(s, d, off+n)
	}
	if err != nil {
		return nil, err
	}
	if indefinite {
		b.FlipAll()
	}
	return b, nil
}

// FromBinaryString builds a BitSet from binary digits with an optional
// "0b" prefix. Digits other than '0' and '1' are reported as a
// *ParseError.
func FromBinaryString(s string) (*BitSet, error) {
	d, off := trimBasePrefix(s, 'b')
	return parseBinary(s, d, off)
}

// FromHexString builds a BitSet from case-insensitive hexadecimal digits
// with an optional "0x" prefix.
func FromHexString(s string) (*BitSet, error) {
	d, off := trimBasePrefix(s, 'x')
	return parseHex(s, d, off)
}

// FromUint builds a finite BitSet from the binary expansion of u.
func FromUint(u uint64) *BitSet {
	if u == 0 {
		return New()
	}
	return &BitSet{words: []uint64{u}}
}

// FromBigInt builds a finite BitSet from the binary expansion of x.
// Negative values have no such expansion and are reported as a
// *ParseError.
func FromBigInt(x *big.Int) (*BitSet, error) {
	if x.Sign() < 0 {
		return nil, &ParseError{Input: x.String(), Pos: -1, Reason: "negative value"}
	}
	return FromBytes(x.Bytes()), nil
}

// FromBytes builds a finite BitSet from a big-endian byte sequence: the
// last byte holds bits 0 through 7. It interprets bytes exactly like
// math/big.Int.SetBytes and is the inverse of ToBytes.
func FromBytes(p []byte) *BitSet {
	b := &BitSet{words: make([]uint64, (len(p)+7)>>3)}
	for j := 0; j < len(p); j++ {
		b.words[j>>3] |= uint64(p[len(p)-1-j]) << (uint(j&7) << 3)
	}
	return b.compact()
}

// FromIndices builds a finite BitSet holding exactly the listed indices.
// Duplicates are harmless. A negative index is malformed input and is
// reported as a *ParseError.
func FromIndices(idx []int) (*BitSet, error) {
	b := New()
	for _, i := range idx {
		if i < 0 {
			return nil, &ParseError{Input: strconv.Itoa(i), Pos: -1, Reason: "negative index"}
		}
		b.setTo(i, true)
	}
	return b, nil
}

// Random returns a finite BitSet of n uniformly random bits.
//
// Random panics with *IndexError if n is negative.
func Random(n int) *BitSet {
	checkIndex("Random", n)
	if n == 0 {
		return New()
	}
	b := &BitSet{words: make([]uint64, (n+wordBits-1)>>log2WordBits)}
	for k := range b.words {
		b.words[k] = rand.Uint64()
	}
	if rem := uint(n) & (wordBits - 1); rem != 0 {
		b.words[len(b.words)-1] &= 1<<rem - 1
	}
	return b.compact()
}

// trimBasePrefix strips a "0x"/"0X" style prefix, returning the digits
// and the number of bytes removed.
func trimBasePrefix(s string, lower byte) (string, int) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == lower || s[1] == lower-'a'+'A') {
		return s[2:], 2
	}
	return s, 0
}

func parseBinary(input, digits string, off int) (*BitSet, error) {
	if digits == "" {
		return nil, &ParseError{Input: input, Pos: -1, Reason: "empty input"}
	}
	b := New()
	n := len(digits)
	for idx := 0; idx < n; idx++ {
		switch digits[idx] {
		case '0':
		case '1':
			b.setTo(n-1-idx, true)
		default:
			return nil, &ParseError{Input: input, Pos: off + idx, Reason: "invalid binary digit"}
		}
	}
	return b, nil
}

func parseHex(input, digits string, off int) (*BitSet, error) {
	if digits == "" {
		return nil, &ParseError{Input: input, Pos: -1, Reason: "empty input"}
	}
	b := New()
	n := len(digits)
	for idx := 0; idx < n; idx++ {
		v, ok := hexVal(digits[idx])
		if !ok {
			return nil, &ParseError{Input: input, Pos: off + idx, Reason: "invalid hexadecimal digit"}
		}
		if v == 0 {
			continue
		}
		pos := (n - 1 - idx) << 2
		k := pos >> log2WordBits
		b.ensureWords(k)
		b.words[k] |= v << (uint(pos) & (wordBits - 1))
	}
	return b.compact(), nil
}

func hexVal(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}
