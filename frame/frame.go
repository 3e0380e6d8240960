package frame

import (
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/framego/util"
)

// eps is the magnitude below which a value is treated as numerically
// zero: gauge pivot selection, the Taylor branch of Retract and the
// zero branch of LogMap all share it.
const eps = 1e-12

// Frame is an ordered collection of n unit vectors in C^d, stored as a
// flat row-major []complex128 of length n*d.
//
// Invariants after any public operation that produces a valid Frame:
//
//  1. n >= 1 and d >= 1.
//  2. Every row has Euclidean norm 1 (within floating-point tolerance).
//  3. In every row, the first coordinate with magnitude above eps has
//     zero imaginary part and strictly positive real part.
type Frame struct {
	data []complex128
	n    int
	d    int
}

type options struct {
	noCopy bool
}

// Option configures Frame construction.
type Option func(*options)

// WithoutCopy makes FromSlice take ownership of the caller's buffer
// instead of deep-copying it. The caller must not alias the buffer
// afterward: renormalisation mutates it in place.
func WithoutCopy() Option {
	return func(o *options) {
		o.noCopy = true
	}
}

// FromSlice wraps a flat row-major buffer of length n*d as a Frame.
// The result is renormalised, so every publicly constructed Frame
// satisfies the unit-norm and gauge invariants.
func FromSlice(data []complex128, n, d int, optFns ...Option) (*Frame, error) {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%w: n=%d, d=%d", ErrInvalidDimensionality, n, d)
	}
	if len(data) != n*d {
		return nil, fmt.Errorf("%w: got %d elements, want %d (n=%d, d=%d)", ErrInvalidDimensionality, len(data), n*d, n, d)
	}

	vecs := data
	if !opts.noCopy {
		vecs = make([]complex128, len(data))
		copy(vecs, data)
	}

	f := &Frame{data: vecs, n: n, d: d}
	f.Renormalise()

	return f, nil
}

// FromRows builds a Frame from a slice of rows. All rows must have the
// same nonzero length. The input is copied and never mutated.
func FromRows(rows [][]complex128) (*Frame, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensionality)
	}

	d := len(rows[0])
	if d == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrInvalidDimensionality)
	}

	data := make([]complex128, 0, len(rows)*d)
	for i, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensionality, i, len(row), d)
		}
		data = append(data, row...)
	}

	return FromSlice(data, len(rows), d, WithoutCopy())
}

// Random returns a Frame whose rows are sampled uniformly from the unit
// sphere S^{2d-1} and then gauge-fixed.
//
// Uniformity follows from normalising iid complex-Gaussian vectors,
// which is equivalent to taking a column of a Haar-random unitary. The
// subsequent gauge fix picks one representative per projective
// equivalence class without biasing the induced distribution.
//
// If rng is nil, a fresh time-seeded generator is used; pass an
// explicit generator for reproducible sampling.
func Random(n, d int, rng *util.RNG) (*Frame, error) {
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%w: n=%d, d=%d", ErrInvalidDimensionality, n, d)
	}

	if rng == nil {
		rng = util.NewRNG(time.Now().UnixNano())
	}

	return FromSlice(rng.GenerateGaussianMatrix(n, d), n, d, WithoutCopy())
}

// N returns the number of vectors (rows).
func (f *Frame) N() int { return f.n }

// D returns the ambient complex dimension (columns).
func (f *Frame) D() int { return f.d }

// Shape returns (n, d).
func (f *Frame) Shape() (int, int) { return f.n, f.d }

// Row returns the i-th vector as a view into the Frame's storage.
// Callers must treat it as read-only; writing through it breaks the
// Frame invariants.
func (f *Frame) Row(i int) []complex128 {
	return f.data[i*f.d : (i+1)*f.d]
}

// At returns the element in row i, column j.
func (f *Frame) At(i, j int) complex128 {
	return f.data[i*f.d+j]
}

// Vectors returns the flat row-major backing slice. Callers must treat
// it as read-only.
func (f *Frame) Vectors() []complex128 {
	return f.data
}

// Copy returns a deep copy owning fresh storage.
func (f *Frame) Copy() *Frame {
	data := make([]complex128, len(f.data))
	copy(data, f.data)

	return &Frame{data: data, n: f.n, d: f.d}
}

// Renormalise scales every row to unit L2 norm and removes the global
// U(1) phase by rotating each row so that its first coordinate with
// magnitude above eps becomes real-positive.
//
// Idempotent: applying it twice leaves the storage unchanged up to
// floating-point round-off. This is the only method that mutates a
// Frame in place.
//
// An identically-zero row is left untouched: it has no norm to fix and
// no gauge pivot (degenerate input, kept degenerate).
func (f *Frame) Renormalise() {
	for i := 0; i < f.n; i++ {
		row := f.Row(i)

		norm := rowNorm(row)
		if norm > 0 {
			inv := complex(1/norm, 0)
			for j := range row {
				row[j] *= inv
			}
		}

		// Gauge fix: rotate by the conjugate phase of the pivot.
		for j := range row {
			if abs := absC(row[j]); abs > eps {
				w := conj(row[j]) / complex(abs, 0)
				for k := range row {
					row[k] *= w
				}
				break
			}
		}
	}
}

// String implements fmt.Stringer.
func (f *Frame) String() string {
	return fmt.Sprintf("Frame(n=%d, d=%d)", f.n, f.d)
}

func rowNorm(row []complex128) float64 {
	sum := 0.0
	for _, z := range row {
		sum += real(z)*real(z) + imag(z)*imag(z)
	}

	return math.Sqrt(sum)
}

func absC(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
