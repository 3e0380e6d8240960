package optimize

import "github.com/hupe1980/framego/frame"

// Objective scores a frame with a finite real number, lower is better.
//
// Implementations carry whatever fixed extra parameters they need;
// construct them once instead of partially applying closures. The core
// treats an Objective as deterministic for a given frame and never
// inspects its internals.
type Objective interface {
	Score(f *frame.Frame) float64
}

// ObjectiveFunc adapts a plain function to the Objective interface.
type ObjectiveFunc func(f *frame.Frame) float64

// Score implements Objective.
func (fn ObjectiveFunc) Score(f *frame.Frame) float64 {
	return fn(f)
}
