// Package frame implements the manifold geometry of complex unit-vector
// frames: ordered collections of n unit vectors in C^d, each considered
// modulo a global phase.
//
// The search space is the product of n copies of the complex projective
// space CP^{d-1}, realised concretely as the product of unit spheres
// S^{2d-1} with a per-vector phase gauge fixed (the first significant
// coordinate of every row is made real-positive).
//
// # Operations
//
//   - FromRows / FromSlice / Random: construction with renormalisation
//   - Renormalise: unit-norm + gauge fix, idempotent, in place
//   - Gram / ChordalDistances: metric queries
//   - Project: orthogonal projection onto the tangent space
//   - Retract / LogMap: exact exponential map and its inverse
//   - RealVector / FromRealVector: flat real encoding for external
//     derivative-free optimizers
//
// Tangent vectors and ambient perturbations are plain flat []complex128
// slices in row-major order, not Frames; they carry no invariants.
//
// All operations are pure except Renormalise, which is the only method
// permitted to mutate a Frame's storage. Frames own their storage
// exclusively; the package provides no internal synchronization and
// needs none as long as a Frame is not shared across mutation
// boundaries.
package frame
