package persistence

import "errors"

const (
	// MagicNumber identifies framego binary files (ASCII: "FRM0").
	MagicNumber = 0x46524D30
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrInvalidPayload = errors.New("invalid payload size")
)

// FileHeader is the 64-byte header at the start of every frame file.
type FileHeader struct {
	Magic       uint32 // 0x46524D30 ("FRM0")
	Version     uint32 // File format version
	Compression uint8  // CompressionType of the stored payload
	Padding1    [3]byte
	N           uint32 // Number of vectors (rows)
	D           uint32 // Ambient complex dimension (columns)
	PayloadSize uint64 // Stored payload bytes (after compression)
	RawSize     uint64 // Uncompressed payload bytes (16*n*d)
	Checksum    uint32 // CRC32 of the stored payload
	Padding2    [4]byte
	Reserved    [20]byte // Future use
}
