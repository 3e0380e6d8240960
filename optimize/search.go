package optimize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/framego"
	"github.com/hupe1980/framego/frame"
)

var (
	// ErrNilOptimizer is returned when a Search is constructed without
	// an optimizer.
	ErrNilOptimizer = errors.New("optimizer must not be nil")

	// ErrNilObjective is returned when a Search is constructed without
	// an objective.
	ErrNilObjective = errors.New("objective must not be nil")

	// ErrEmptyBatch is returned when the optimizer produces an empty
	// candidate batch.
	ErrEmptyBatch = errors.New("optimizer returned an empty batch")
)

// Search drives projection-based frame optimization:
//
//  1. Ask the optimizer for a batch of candidate vectors (ambient R^{2nd}).
//  2. Decode each into a Frame via the construction-and-gauge-fix path,
//     which projects it onto the unit-norm manifold.
//  3. Score the projected frames with the objective.
//  4. Tell the optimizer the fitness values to update its state.
//
// Candidate scoring fans out across a bounded worker pool; each worker
// operates on its own Frame instance, so no synchronization is needed
// inside the geometry core.
type Search struct {
	n, d        int
	optimizer   Optimizer
	objective   Objective
	logger      *framego.Logger
	parallelism int
	tol         float64
	logEvery    int

	best       *frame.Frame
	bestEnergy float64
}

// NewSearch creates a Search for frames of shape (n, d).
func NewSearch(n, d int, optimizer Optimizer, objective Objective, optFns ...SearchOption) (*Search, error) {
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%w: n=%d, d=%d", frame.ErrInvalidDimensionality, n, d)
	}
	if optimizer == nil {
		return nil, ErrNilOptimizer
	}
	if objective == nil {
		return nil, ErrNilObjective
	}

	opts := searchOptions{
		logger:      framego.NoopLogger(),
		parallelism: runtime.GOMAXPROCS(0),
		logEvery:    10,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Search{
		n:           n,
		d:           d,
		optimizer:   optimizer,
		objective:   objective,
		logger:      opts.logger,
		parallelism: opts.parallelism,
		tol:         opts.tol,
		logEvery:    opts.logEvery,
		bestEnergy:  math.Inf(1),
	}, nil
}

// Step executes one generation and returns the best projected frame of
// this generation together with its energy.
func (s *Search) Step(ctx context.Context) (*frame.Frame, float64, error) {
	candidates, err := s.optimizer.Ask()
	if err != nil {
		return nil, 0, fmt.Errorf("ask failed: %w", err)
	}
	if len(candidates) == 0 {
		return nil, 0, ErrEmptyBatch
	}

	frames := make([]*frame.Frame, len(candidates))
	energies := make([]float64, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fr, err := frame.FromRealVector(cand, s.n, s.d)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}

			frames[i] = fr
			energies[i] = s.objective.Score(fr)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if err := s.optimizer.Tell(candidates, energies); err != nil {
		return nil, 0, fmt.Errorf("tell failed: %w", err)
	}

	bestIdx := 0
	for i, e := range energies {
		if e < energies[bestIdx] {
			bestIdx = i
		}
	}

	if energies[bestIdx] < s.bestEnergy {
		s.best = frames[bestIdx].Copy()
		s.bestEnergy = energies[bestIdx]
	}

	return frames[bestIdx], energies[bestIdx], nil
}

// Run executes up to maxGen generations, stopping early when the
// generation-best energy improves by less than the configured
// tolerance. It returns the best frame found over the entire run and
// its energy.
func (s *Search) Run(ctx context.Context, maxGen int) (*frame.Frame, float64, error) {
	if maxGen < 0 {
		return nil, 0, fmt.Errorf("maxGen must be non-negative, got %d", maxGen)
	}

	prev := math.NaN()

	for gen := 1; gen <= maxGen; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		_, energy, err := s.Step(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("generation %d: %w", gen, err)
		}

		if s.logEvery > 0 && gen%s.logEvery == 0 {
			s.logger.LogStep(ctx, gen, energy, s.bestEnergy)
		}

		if s.tol > 0 && !math.IsNaN(prev) && math.Abs(prev-energy) < s.tol {
			s.logger.LogConvergence(ctx, gen, s.tol)
			break
		}
		prev = energy
	}

	if s.best == nil {
		return nil, 0, ErrEmptyBatch
	}

	return s.best, s.bestEnergy, nil
}

// Best returns the best frame seen so far and its energy, or nil before
// the first completed generation.
func (s *Search) Best() (*frame.Frame, float64) {
	return s.best, s.bestEnergy
}
