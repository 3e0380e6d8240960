// Package optimize defines the collaboration contracts between the
// frame geometry core and an external derivative-free optimizer, plus a
// projection-based generation driver that wires the two together.
//
// The optimizer is an opaque ask/tell state machine over flat real
// vectors of length 2·n·d. The objective is an opaque capability object
// scoring a frame with a finite real number, lower is better. The core
// never inspects either; the dependency is strictly one-directional
// (optimizer → core).
//
// Search runs the projection loop: ask for a batch of ambient
// candidates, decode each through the construction-and-gauge-fix path
// (the projection onto the manifold), score the projected frames, and
// tell the raw candidates with their energies back to the optimizer.
package optimize
