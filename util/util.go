// Package util provides shared helpers, most notably the explicit
// seedable random number generator used for reproducible frame sampling.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
//
// Randomness is always confined to an explicit RNG passed by the caller;
// the library never touches shared global generator state.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed this generator was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// NormFloat64 returns a standard normally distributed float64.
func (r *RNG) NormFloat64() float64 {
	return r.rand.NormFloat64()
}

// NormComplex returns a complex number whose real and imaginary parts
// are independent standard normal variables.
func (r *RNG) NormComplex() complex128 {
	return complex(r.rand.NormFloat64(), r.rand.NormFloat64())
}

// GenerateGaussianMatrix generates a flat row-major n×d matrix of
// independent complex Gaussian entries using the given RNG.
//
// Normalising the rows of such a matrix yields vectors uniformly
// distributed on the unit sphere S^{2d-1}.
func (r *RNG) GenerateGaussianMatrix(n, d int) []complex128 {
	data := make([]complex128, n*d)
	for i := range data {
		data[i] = r.NormComplex()
	}

	return data
}
