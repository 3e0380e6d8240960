package optimize

// Optimizer is an opaque external search-distribution state machine.
//
// Ask produces a batch of candidate flat real vectors of length 2·n·d
// (the frame encoding, see frame.RealVector). Tell feeds the same batch
// back paired with scalar fitness values to update the optimizer's
// internal state. Population size, step-size adaptation and seeding
// remain entirely inside the implementation; the core has no further
// knowledge of them.
type Optimizer interface {
	Ask() ([][]float64, error)
	Tell(solutions [][]float64, fitnesses []float64) error
}
