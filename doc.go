// Package framego provides the geometric primitives for optimizing
// configurations of n unit vectors in d-dimensional complex space
// ("frames"), each vector considered modulo a global phase.
//
// The search space is the product of n copies of complex projective
// space CP^{d-1}, realised as the product of unit spheres S^{2d-1} with
// a per-vector phase gauge fixed. The core guarantees numerically exact
// manifold arithmetic — gauge fixing, tangent projection, exponential
// and logarithmic maps — which an external derivative-free optimizer
// relies on at every generation.
//
// # Packages
//
//   - frame: the Frame value type and its manifold geometry
//   - util: explicit seedable randomness for reproducible sampling
//   - persistence: binary container and plain-text export
//   - optimize: ask/tell optimizer contracts and the projection driver
//
// # Quick Start
//
//	rng := util.NewRNG(42)
//	f, _ := frame.Random(6, 3, rng)
//
//	tang, _ := f.Project(ambient)
//	g, _ := f.Retract(tang)
//	back, _ := f.LogMap(g)
//
//	_ = persistence.SaveFrame("frame.bin", f)
//	_ = persistence.ExportText(persistence.TextFileName(3, 6, "best"), f)
//
// The root package carries the structured logging wrapper shared by the
// optimization driver; the geometry core itself performs no logging and
// no I/O.
package framego
