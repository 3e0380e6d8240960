package frame

import (
	"fmt"
	"math"
)

// Project orthogonally projects an ambient perturbation onto the
// tangent space at this Frame.
//
// The ambient slice a must be flat row-major of length n*d. For each
// row the projection subtracts the radial component so that the result
// satisfies Re⟨f_i, ξ_i⟩ = 0, the defining condition of the real
// tangent space to the unit sphere at each point.
//
// Only the radial (norm-changing) component is removed: motion along
// the phase-gauge fiber is legal on the full sphere and is
// re-canonicalised by the renormalisation that follows a retraction.
//
// Neither a nor the Frame is mutated; a fresh slice is returned.
func (f *Frame) Project(a []complex128) ([]complex128, error) {
	if len(a) != f.n*f.d {
		return nil, fmt.Errorf("%w: ambient slice has %d elements, want %d", ErrShapeMismatch, len(a), f.n*f.d)
	}

	out := make([]complex128, len(a))
	for i := 0; i < f.n; i++ {
		row := f.Row(i)
		ai := a[i*f.d : (i+1)*f.d]

		radial := 0.0
		for k := range row {
			radial += real(conj(ai[k]) * row[k])
		}

		r := complex(radial, 0)
		for k := range row {
			out[i*f.d+k] = ai[k] - r*row[k]
		}
	}

	return out, nil
}

// Retract applies the exact exponential-map retraction: a per-row
// great-circle step along the geodesic defined by the tangent slice.
//
// For each row with θ = ‖ξ_i‖ the new row is
//
//	cos(θ)·f_i + (sin(θ)/θ)·ξ_i
//
// with a first-order Taylor fallback (1 - θ²/2)·f_i + ξ_i for
// numerically zero θ to avoid division by zero. The assembled matrix is
// passed back through the construction path, so the result is
// renormalised and re-gauged: the canonical phase may differ from the
// naive phase of the raw formula, and that re-gauging is what callers
// observe.
func (f *Frame) Retract(tang []complex128) (*Frame, error) {
	if len(tang) != f.n*f.d {
		return nil, fmt.Errorf("%w: tangent slice has %d elements, want %d", ErrShapeMismatch, len(tang), f.n*f.d)
	}

	data := make([]complex128, f.n*f.d)
	for i := 0; i < f.n; i++ {
		row := f.Row(i)
		ti := tang[i*f.d : (i+1)*f.d]

		theta := rowNorm(ti)

		var c, s float64
		if theta < eps {
			c = 1 - 0.5*theta*theta
			s = 1
		} else {
			c = math.Cos(theta)
			s = math.Sin(theta) / theta
		}

		cc, sc := complex(c, 0), complex(s, 0)
		for k := range row {
			data[i*f.d+k] = cc*row[k] + sc*ti[k]
		}
	}

	return FromSlice(data, f.n, f.d, WithoutCopy())
}

// LogMap computes the exact Riemannian logarithmic map on the product
// sphere: the tangent slice ξ such that f.Retract(ξ) ≈ other, valid
// whenever the per-row great-circle angle stays below π.
//
// Per row:
//
//	inner = clip(Re⟨f_i, g_i⟩, -1, 1)
//	θ     = arccos(inner)
//	ξ_i   = (θ/sin θ)·(g_i - inner·f_i)   (zero when θ ≤ eps)
//
// Clipping guards against floating-point overshoot of arccos's domain.
// At θ = π (antipodal rows) the geodesic direction is mathematically
// non-unique; the formula yields a definite but arbitrary direction
// rather than an error. That degeneracy is deliberate and documented,
// not an oversight.
func (f *Frame) LogMap(other *Frame) ([]complex128, error) {
	if f.n != other.n || f.d != other.d {
		return nil, fmt.Errorf("%w: (%d,%d) vs (%d,%d)", ErrShapeMismatch, f.n, f.d, other.n, other.d)
	}

	tang := make([]complex128, f.n*f.d)
	for i := 0; i < f.n; i++ {
		fi := f.Row(i)
		gi := other.Row(i)

		inner := 0.0
		for k := range fi {
			inner += real(conj(fi[k]) * gi[k])
		}
		inner = math.Max(-1, math.Min(1, inner))

		theta := math.Acos(inner)

		scale := 0.0
		if theta > eps {
			scale = theta / math.Sin(theta)
		}

		sc, in := complex(scale, 0), complex(inner, 0)
		for k := range fi {
			tang[i*f.d+k] = sc * (gi[k] - in*fi[k])
		}
	}

	return tang, nil
}
