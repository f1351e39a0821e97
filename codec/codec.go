// Package codec frames bit-vector snapshots for storage and transport.
//
// A frame is self-describing: it records the compression actually used,
// so readers never need out-of-band configuration. The payload is the
// snapshot form produced by bitvec.BitSet.MarshalBinary; if you change
// that form, frames written by older producers may no longer decode.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/bitvec"
)

// Compression selects the payload compression of a frame.
type Compression uint8

const (
	// CompressionNone stores the snapshot bytes as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, moderate ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Frame layout:
//
//	[4]byte magic "BVC1" | uint8 compression | uint32 raw len |
//	uint32 payload len | payload
//
// The compression byte records what the payload actually is: an encoder
// asked for compression still writes CompressionNone when compressing
// would not pay for itself.
const (
	frameMagic  = "BVC1"
	headerSize  = 4 + 1 + 4 + 4
	maxFrameLen = math.MaxUint32
)

// Options configures Encode.
type Options struct {
	// Compression is the requested payload compression. Incompressible
	// payloads fall back to CompressionNone regardless.
	Compression Compression
}

// DefaultOptions holds the Encode defaults.
var DefaultOptions = Options{
	Compression: CompressionZSTD,
}

// FormatError reports a malformed or unsupported frame.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "bitvec/codec: " + e.Reason
}

// Encode writes b to w as a single frame.
func Encode(w io.Writer, b *bitvec.BitSet, optFns ...func(o *Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	raw, err := b.MarshalBinary()
	if err != nil {
		return err
	}
	if uint64(len(raw)) > maxFrameLen {
		return &FormatError{Reason: "snapshot exceeds frame capacity"}
	}

	payload, stored, err := compress(raw, opts.Compression)
	if err != nil {
		return err
	}

	var hdr [headerSize]byte
	copy(hdr[:4], frameMagic)
	hdr[4] = uint8(stored)
	binary.LittleEndian.PutUint32(hdr[5:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(hdr[9:], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Decode reads a single frame from r and returns the snapshot it holds.
func Decode(r io.Reader) (*bitvec.BitSet, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if string(hdr[:4]) != frameMagic {
		return nil, &FormatError{Reason: "bad magic"}
	}
	stored := Compression(hdr[4])
	rawLen := binary.LittleEndian.Uint32(hdr[5:])
	payloadLen := binary.LittleEndian.Uint32(hdr[9:])

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	raw, err := decompress(payload, stored, rawLen)
	if err != nil {
		return nil, err
	}

	b := new(bitvec.BitSet)
	if err := b.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return b, nil
}

// EncodeBytes is Encode into a fresh byte slice.
func EncodeBytes(b *bitvec.BitSet, optFns ...func(o *Options)) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b, optFns...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBytes decodes exactly one frame from p.
func DecodeBytes(p []byte) (*bitvec.BitSet, error) {
	r := bytes.NewReader(p)
	b, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, &FormatError{Reason: "trailing bytes after frame"}
	}
	return b, nil
}
