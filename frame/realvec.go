package frame

import "fmt"

// RealVector encodes the Frame as a flat real vector of length 2·n·d:
// all real parts in row-major order, followed by all imaginary parts in
// the same order. This is the fixed convention shared with external
// derivative-free optimizers, and the inverse of FromRealVector.
func (f *Frame) RealVector() []float64 {
	nd := f.n * f.d

	vec := make([]float64, 2*nd)
	for i, z := range f.data {
		vec[i] = real(z)
		vec[nd+i] = imag(z)
	}

	return vec
}

// FromRealVector decodes a flat real vector of length 2·n·d (real parts
// row-major, then imaginary parts) into a Frame via the
// construction-and-gauge-fix path. Decoding therefore projects
// arbitrary ambient optimizer samples back onto the manifold.
func FromRealVector(vec []float64, n, d int) (*Frame, error) {
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%w: n=%d, d=%d", ErrInvalidDimensionality, n, d)
	}

	nd := n * d
	if len(vec) != 2*nd {
		return nil, fmt.Errorf("%w: got %d reals, want %d (n=%d, d=%d)", ErrInvalidDimensionality, len(vec), 2*nd, n, d)
	}

	data := make([]complex128, nd)
	for i := range data {
		data[i] = complex(vec[i], vec[nd+i])
	}

	return FromSlice(data, n, d, WithoutCopy())
}
