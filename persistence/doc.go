// Package persistence provides binary and plain-text serialization for
// frames.
//
// # Binary container
//
// A frame is stored as a fixed 64-byte header followed by the raw
// complex128 payload in row-major order, optionally block-compressed
// with LZ4 or ZSTD. The header carries magic, format version, shape,
// compression type and a CRC32 checksum of the stored payload. Loading
// re-applies the construction-and-gauge-fix path, so a loaded frame
// always satisfies the frame invariants.
//
// # Text export
//
// The plain-text format is pure ASCII and bit-reproducible: 2·n·d
// lines, one number per line in %.15e notation — first all real parts
// in row-major order, then all imaginary parts. Downstream tooling
// names these files <d>x<n>_<tag>.txt; the writer does not enforce the
// convention, TextFileName builds it.
//
// All I/O here is plain synchronous file access. Failures are surfaced
// to the caller and never retried.
package persistence
