package bitvec

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Binary snapshot layout: version byte, flags byte (bit 0 = indefinite),
// uint64 word count, then the words, everything little-endian. Decoding
// re-canonicalizes, so snapshots written by older or foreign producers
// never leak non-canonical states.
const (
	snapshotVersion = 0x01

	flagIndefinite = 0x01

	// snapshotHeaderLen covers the version and flags bytes plus the word
	// count.
	snapshotHeaderLen = 10

	// snapshotChunkWords caps the words decoded per read; the declared
	// count never sizes an allocation on its own.
	snapshotChunkWords = 512
)

var (
	_ encoding.BinaryMarshaler   = (*BitSet)(nil)
	_ encoding.BinaryUnmarshaler = (*BitSet)(nil)
	_ encoding.TextMarshaler     = (*BitSet)(nil)
	_ encoding.TextUnmarshaler   = (*BitSet)(nil)
	_ json.Marshaler             = (*BitSet)(nil)
	_ json.Unmarshaler           = (*BitSet)(nil)
	_ io.WriterTo                = (*BitSet)(nil)
	_ io.ReaderFrom              = (*BitSet)(nil)
	_ fmt.Stringer               = (*BitSet)(nil)
)

// WriteTo writes the binary snapshot form of the set to w and returns
// the number of bytes written.
func (b *BitSet) WriteTo(w io.Writer) (int64, error) {
	var flags uint8
	if b.tail != tailZero {
		flags |= flagIndefinite
	}
	if err := binary.Write(w, binary.LittleEndian, [2]uint8{snapshotVersion, flags}); err != nil {
		return 0, err
	}
	n := int64(2)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(b.words))); err != nil {
		return n, err
	}
	n += 8
	if err := binary.Write(w, binary.LittleEndian, b.words); err != nil {
		return n, err
	}
	return n + int64(len(b.words))*8, nil
}

// ReadFrom replaces the contents of b with a snapshot read from r and
// returns the number of bytes consumed. The decoded value is
// re-canonicalized.
func (b *BitSet) ReadFrom(r io.Reader) (int64, error) {
	var hdr [2]uint8
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return 0, err
	}
	n := int64(2)
	if hdr[0] != snapshotVersion {
		return n, fmt.Errorf("bitvec: unsupported snapshot version %d", hdr[0])
	}
	if hdr[1]&^flagIndefinite != 0 {
		return n, fmt.Errorf("bitvec: unknown snapshot flags %#02x", hdr[1])
	}
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return n, err
	}
	n += 8
	if count > uint64(math.MaxInt)>>3 {
		return n, fmt.Errorf("bitvec: snapshot word count %d out of range", count)
	}
	hint := count
	if hint > snapshotChunkWords {
		hint = snapshotChunkWords
	}
	words := make([]uint64, 0, hint)
	var buf [snapshotChunkWords * 8]byte
	for remaining := count; remaining > 0; {
		chunk := remaining
		if chunk > snapshotChunkWords {
			chunk = snapshotChunkWords
		}
		p := buf[:chunk*8]
		nr, err := io.ReadFull(r, p)
		n += int64(nr)
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return n, err
		}
		for off := 0; off < len(p); off += 8 {
			words = append(words, binary.LittleEndian.Uint64(p[off:off+8]))
		}
		remaining -= chunk
	}
	b.words = words
	b.tail = tailZero
	if hdr[1]&flagIndefinite != 0 {
		b.tail = tailOne
	}
	b.compact()
	return n, nil
}

// MarshalBinary returns the binary snapshot form of the set.
func (b *BitSet) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(snapshotHeaderLen + len(b.words)*8)
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the contents of b with a decoded binary
// snapshot. Trailing bytes after the snapshot are rejected, as is a
// word count the data cannot hold.
func (b *BitSet) UnmarshalBinary(data []byte) error {
	if len(data) >= snapshotHeaderLen {
		count := binary.LittleEndian.Uint64(data[2:snapshotHeaderLen])
		if count > uint64(len(data)-snapshotHeaderLen)>>3 {
			return fmt.Errorf("bitvec: snapshot word count %d out of range", count)
		}
	}
	r := bytes.NewReader(data)
	if _, err := b.ReadFrom(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("bitvec: %d trailing bytes after snapshot", r.Len())
	}
	return nil
}

// MarshalText returns the String form of the set.
func (b *BitSet) MarshalText() ([]byte, error) {
	return b.appendText(nil), nil
}

// UnmarshalText replaces the contents of b with the parsed text form.
func (b *BitSet) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = *v
	return nil
}

// MarshalJSON encodes the set as a JSON string of its text form.
func (b *BitSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON replaces the contents of b with the value decoded from a
// JSON string of the text form.
func (b *BitSet) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}

func (b *BitSet) appendText(dst []byte) []byte {
	if b.tail != tailZero {
		return b.Not().appendBinary(append(dst, '~'))
	}
	return b.appendBinary(dst)
}
