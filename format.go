package bitvec

import (
	"math/big"
)

const hexDigits = "0123456789abcdef"

// String renders the set as binary digits, most significant bit first,
// with the empty set rendering as "0". An indefinite set renders as "~"
// followed by the binary form of its finite complement, so every value
// has a finite text form. Parse accepts both shapes back unchanged.
func (b *BitSet) String() string {
	s, _ := b.ToString(2)
	return s
}

// ToString renders the set in the given base, 2 or 16. Other bases are
// reported as ErrUnsupportedBase. Base 16 carries a "0x" prefix so the
// result stays unambiguous as Parse input; base 2 is bare digits.
// Indefinite sets use the "~" complement form in either base.
func (b *BitSet) ToString(base int) (string, error) {
	switch base {
	case 2, 16:
	default:
		return "", ErrUnsupportedBase
	}
	if b.tail != tailZero {
		inner, err := b.Not().ToString(base)
		if err != nil {
			return "", err
		}
		return "~" + inner, nil
	}
	if base == 16 {
		return "0x" + string(b.appendHex(nil)), nil
	}
	return string(b.appendBinary(nil)), nil
}

func (b *BitSet) appendBinary(dst []byte) []byte {
	hi, _ := b.Msb()
	if hi < 0 {
		return append(dst, '0')
	}
	for i := hi; i >= 0; i-- {
		dst = append(dst, '0'+byte(b.words[i>>log2WordBits]>>(uint(i)&(wordBits-1))&1))
	}
	return dst
}

func (b *BitSet) appendHex(dst []byte) []byte {
	hi, _ := b.Msb()
	if hi < 0 {
		return append(dst, '0')
	}
	for pos := hi >> 2 << 2; pos >= 0; pos -= 4 {
		nib := b.words[pos>>log2WordBits] >> (uint(pos) & (wordBits - 1)) & 0xf
		dst = append(dst, hexDigits[nib])
	}
	return dst
}

// ToBytes returns the minimal big-endian byte form of a finite set, the
// exact inverse of FromBytes and byte-compatible with math/big.Int.Bytes.
// The empty set yields an empty slice. Indefinite sets report
// ErrIndefinite.
func (b *BitSet) ToBytes() ([]byte, error) {
	if b.tail != tailZero {
		return nil, ErrIndefinite
	}
	hi, _ := b.Msb()
	if hi < 0 {
		return []byte{}, nil
	}
	n := hi>>3 + 1
	out := make([]byte, n)
	for j := 0; j < n; j++ {
		out[n-1-j] = byte(b.words[j>>3] >> (uint(j&7) << 3))
	}
	return out, nil
}

// ToBigInt returns the finite set as a non-negative big integer whose
// binary expansion matches the set. Indefinite sets report ErrIndefinite.
func (b *BitSet) ToBigInt() (*big.Int, error) {
	p, err := b.ToBytes()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(p), nil
}
