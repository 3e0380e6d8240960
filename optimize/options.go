package optimize

import "github.com/hupe1980/framego"

type searchOptions struct {
	logger      *framego.Logger
	parallelism int
	tol         float64
	logEvery    int
}

// SearchOption configures a Search.
type SearchOption func(*searchOptions)

// WithLogger sets the logger used for generation progress.
// Default is a no-op logger.
func WithLogger(l *framego.Logger) SearchOption {
	return func(o *searchOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism bounds the number of concurrent candidate
// evaluations per generation. Default is GOMAXPROCS.
func WithParallelism(n int) SearchOption {
	return func(o *searchOptions) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithTolerance sets the absolute tolerance on the improvement of the
// generation-best energy; Run stops once |E_prev - E| drops below it.
// A tolerance of 0 disables the convergence check. Default is 0.
func WithTolerance(tol float64) SearchOption {
	return func(o *searchOptions) {
		o.tol = tol
	}
}

// WithLogEvery logs progress every n generations. 0 disables progress
// logging. Default is 10.
func WithLogEvery(n int) SearchOption {
	return func(o *searchOptions) {
		o.logEvery = n
	}
}
