package frame

import "math"

// Gram returns the complex Gram matrix G = V·Vᴴ of shape (n, n).
//
// G is Hermitian by construction with a unit diagonal (each row of a
// valid Frame has unit norm). Complexity O(n²d).
func (f *Frame) Gram() [][]complex128 {
	g := make([][]complex128, f.n)
	for i := range g {
		g[i] = make([]complex128, f.n)
		ri := f.Row(i)
		for j := 0; j < f.n; j++ {
			rj := f.Row(j)
			var sum complex128
			for k := 0; k < f.d; k++ {
				sum += ri[k] * conj(rj[k])
			}
			g[i][j] = sum
		}
	}

	return g
}

// ChordalDistances returns the pairwise chordal distances between the
// Frame's vectors as an (n, n) matrix.
//
// For x = |⟨f_i, f_j⟩| the distance is D = 2·sqrt(max(1 - x², 0)).
// The clamp guards against x slightly exceeding 1 through floating-point
// error. The matrix is symmetric with a forced zero diagonal; values lie
// in [0, 2], where 0 means identical up to phase and 2 means orthogonal.
func (f *Frame) ChordalDistances() [][]float64 {
	g := f.Gram()

	dist := make([][]float64, f.n)
	for i := range dist {
		dist[i] = make([]float64, f.n)
		for j := range dist[i] {
			if i == j {
				continue
			}
			x2 := real(g[i][j])*real(g[i][j]) + imag(g[i][j])*imag(g[i][j])
			dist[i][j] = 2 * math.Sqrt(math.Max(1-x2, 0))
		}
	}

	return dist
}
