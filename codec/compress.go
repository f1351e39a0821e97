package codec

import (
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the stored payload and the compression it actually
// carries. If compression doesn't help (ratio > 0.9), the payload is
// stored uncompressed.
func compress(raw []byte, want Compression) ([]byte, Compression, error) {
	if want == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var compressed []byte
	var err error

	switch want {
	case CompressionLZ4:
		compressed, err = compressLZ4(raw)
	case CompressionZSTD:
		compressed, err = compressZSTD(raw)
	default:
		return nil, 0, &FormatError{Reason: "unknown compression " + want.String()}
	}

	if err != nil {
		return nil, 0, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(raw))*0.9 {
		return raw, CompressionNone, nil
	}
	return compressed, want, nil
}

func compressLZ4(raw []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(raw)))

	n, err := lz4.CompressBlock(raw, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(raw []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(raw, nil), nil
}

// decompress recovers the snapshot bytes of a frame payload.
func decompress(payload []byte, stored Compression, rawLen uint32) ([]byte, error) {
	switch stored {
	case CompressionNone:
		if uint32(len(payload)) != rawLen {
			return nil, &FormatError{Reason: "payload length mismatch"}
		}
		return payload, nil

	case CompressionLZ4:
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, err
		}
		if uint32(n) != rawLen {
			return nil, &FormatError{Reason: "decompressed size mismatch"}
		}
		return out, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(payload, make([]byte, 0, rawLen))
		if err != nil {
			return nil, err
		}
		if uint32(len(out)) != rawLen {
			return nil, &FormatError{Reason: "decompressed size mismatch"}
		}
		return out, nil

	default:
		return nil, &FormatError{Reason: "unknown compression " + stored.String()}
	}
}
