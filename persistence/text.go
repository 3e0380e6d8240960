package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hupe1980/framego/frame"
)

// WriteText writes a frame in the plain-text submission format:
// 2·n·d ASCII lines, one number per line in %.15e notation — first all
// real parts in row-major order, then all imaginary parts in the same
// order. The output is bit-reproducible for a given frame.
func WriteText(w io.Writer, f *frame.Frame) error {
	bw := bufio.NewWriter(w)

	for _, z := range f.Vectors() {
		if _, err := fmt.Fprintf(bw, "%.15e\n", real(z)); err != nil {
			return fmt.Errorf("failed to write real part: %w", err)
		}
	}
	for _, z := range f.Vectors() {
		if _, err := fmt.Fprintf(bw, "%.15e\n", imag(z)); err != nil {
			return fmt.Errorf("failed to write imaginary part: %w", err)
		}
	}

	return bw.Flush()
}

// ReadText reads a frame of known shape from the plain-text format.
// The parsed values go through the construction-and-gauge-fix path.
func ReadText(r io.Reader, n, d int) (*frame.Frame, error) {
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%w: n=%d, d=%d", frame.ErrInvalidDimensionality, n, d)
	}

	want := 2 * n * d
	vec := make([]float64, 0, want)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %w", len(vec)+1, err)
		}
		vec = append(vec, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text frame: %w", err)
	}
	if len(vec) != want {
		return nil, fmt.Errorf("%w: got %d lines, want %d (n=%d, d=%d)", frame.ErrInvalidDimensionality, len(vec), want, n, d)
	}

	return frame.FromRealVector(vec, n, d)
}

// ExportText writes a frame to a text file, creating or truncating it.
func ExportText(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteText(file, f); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// ImportText reads a frame of known shape from a text file written by
// ExportText.
func ImportText(path string, n, d int) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return ReadText(file, n, d)
}

// TextFileName builds the <d>x<n>_<tag>.txt file name used by
// downstream tooling. The convention is not enforced by the writer.
func TextFileName(d, n int, tag string) string {
	return fmt.Sprintf("%dx%d_%s.txt", d, n, tag)
}
