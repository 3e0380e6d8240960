package persistence

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for the
// binary payload.
type CompressionType uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone CompressionType = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// ZSTD encoder/decoder pools for efficiency.
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

// compressPayload compresses data with the requested algorithm.
// If compression does not shrink the payload it falls back to storing
// it uncompressed; the returned CompressionType reflects what was
// actually stored.
func compressPayload(data []byte, compression CompressionType) ([]byte, CompressionType, error) {
	switch compression {
	case CompressionNone:
		return data, CompressionNone, nil

	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compression failed: %w", err)
		}
		if n == 0 || n >= len(data) {
			// Incompressible
			return data, CompressionNone, nil
		}
		return dst[:n], CompressionLZ4, nil

	case CompressionZSTD:
		enc := getZstdEncoder()
		dst := enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
		if len(dst) >= len(data) {
			return data, CompressionNone, nil
		}
		return dst, CompressionZSTD, nil

	default:
		return nil, 0, fmt.Errorf("unsupported compression type: %v", compression)
	}
}

// decompressPayload reverses compressPayload. rawSize is the expected
// uncompressed size from the file header.
func decompressPayload(data []byte, compression CompressionType, rawSize int) ([]byte, error) {
	switch compression {
	case CompressionNone:
		if len(data) != rawSize {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPayload, len(data), rawSize)
		}
		return data, nil

	case CompressionLZ4:
		dst := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(data, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		if n != rawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrInvalidPayload, n, rawSize)
		}
		return dst, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		dst, err := dec.DecodeAll(data, nil)
		putZstdDecoder(dec)
		if err != nil {
			return nil, fmt.Errorf("zstd decompression failed: %w", err)
		}
		if len(dst) != rawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrInvalidPayload, len(dst), rawSize)
		}
		return dst, nil

	default:
		return nil, fmt.Errorf("unsupported compression type: %v", compression)
	}
}
