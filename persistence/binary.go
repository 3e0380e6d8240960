package persistence

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"unsafe"

	"github.com/hupe1980/framego/frame"
)

const complexSize = 16 // bytes per complex128 element

type options struct {
	compression CompressionType
}

// Option configures binary frame serialization.
type Option func(*options)

// WithCompression selects the payload compression algorithm.
// Default is CompressionNone.
func WithCompression(c CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WriteFrame writes a frame in binary format: a 64-byte FileHeader
// followed by the (optionally compressed) raw complex128 payload.
func WriteFrame(w io.Writer, f *frame.Frame, optFns ...Option) error {
	opts := options{compression: CompressionNone}
	for _, fn := range optFns {
		fn(&opts)
	}

	raw := complexToBytes(f.Vectors())

	stored, compression, err := compressPayload(raw, opts.compression)
	if err != nil {
		return err
	}

	n, d := f.Shape()
	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(compression),
		N:           uint32(n), //nolint:gosec
		D:           uint32(d), //nolint:gosec
		PayloadSize: uint64(len(stored)),
		RawSize:     uint64(len(raw)),
		Checksum:    CalculateChecksum(stored),
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	return nil
}

// ReadFrame reads a frame written by WriteFrame. The payload checksum
// is verified and the frame goes through the construction-and-gauge-fix
// path, so the result satisfies the frame invariants.
func ReadFrame(r io.Reader) (*frame.Frame, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}

	n, d := int(header.N), int(header.D)
	wantRaw := uint64(n) * uint64(d) * complexSize
	if header.RawSize != wantRaw || header.PayloadSize > math.MaxInt32 {
		return nil, fmt.Errorf("%w: raw=%d payload=%d (n=%d, d=%d)", ErrInvalidPayload, header.RawSize, header.PayloadSize, n, d)
	}

	stored := make([]byte, header.PayloadSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if actual := CalculateChecksum(stored); actual != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	raw, err := decompressPayload(stored, CompressionType(header.Compression), int(header.RawSize))
	if err != nil {
		return nil, err
	}

	return frame.FromSlice(bytesToComplex(raw), n, d, frame.WithoutCopy())
}

// SaveFrame writes a frame to a file, creating or truncating it.
func SaveFrame(path string, f *frame.Frame, optFns ...Option) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteFrame(file, f, optFns...); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// LoadFrame reads a frame from a file written by SaveFrame.
func LoadFrame(path string) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return ReadFrame(file)
}

// complexToBytes reinterprets a complex128 slice as raw bytes without
// copying. Byte order is the native one (little-endian on x86/ARM).
func complexToBytes(vec []complex128) []byte {
	if len(vec) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&vec[0])), len(vec)*complexSize)
}

// bytesToComplex copies raw bytes into a freshly allocated complex128
// slice. The destination is written through an unsafe view to avoid
// per-element decoding.
func bytesToComplex(raw []byte) []complex128 {
	count := len(raw) / complexSize
	dst := make([]complex128, count)
	if count == 0 {
		return dst
	}

	dstBytes := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), count*complexSize)
	copy(dstBytes, raw)

	return dst
}
