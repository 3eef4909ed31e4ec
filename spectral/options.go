package spectral

import "fmt"

// Defaults for the spectral pipeline.
const (
	// DefaultNumModes computes enough modes to cover the usual mode
	// indices plus eigenvalue-multiplicity groups.
	DefaultNumModes = 10

	// DefaultTessellationLevel balances connectivity fidelity against
	// eigensolve cost.
	DefaultTessellationLevel = 3

	// defaultEigenTolerance is the off-diagonal magnitude under which the
	// Jacobi iteration is considered converged.
	defaultEigenTolerance = 1e-10

	// defaultMaxSweeps bounds the eigensolver; exhausting it surfaces
	// ErrNotConverged to the caller.
	defaultMaxSweeps = 100

	// defaultMultiplicityTolerance groups eigenvalues into multiplicity
	// classes.
	defaultMultiplicityTolerance = 1e-3
)

// Option configures the spectral decomposer via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the numeric policy of the spectral pipeline.
type Options struct {
	// EigenTolerance is the Jacobi convergence threshold.
	EigenTolerance float64

	// MaxSweeps is the eigensolver's iteration budget, in cyclic sweeps.
	MaxSweeps int

	// MultiplicityTolerance groups eigenvalues within this absolute
	// distance into one multiplicity class.
	MultiplicityTolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the numeric policy the pipeline was tuned with.
func DefaultOptions() Options {
	return Options{
		EigenTolerance:        defaultEigenTolerance,
		MaxSweeps:             defaultMaxSweeps,
		MultiplicityTolerance: defaultMultiplicityTolerance,
	}
}

// WithEigenTolerance sets the Jacobi convergence threshold (must be > 0).
func WithEigenTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: EigenTolerance must be > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.EigenTolerance = tol
	}
}

// WithMaxSweeps sets the eigensolver's sweep budget (must be >= 1).
func WithMaxSweeps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSweeps must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSweeps = n
	}
}

// WithMultiplicityTolerance sets the eigenvalue grouping distance
// (must be > 0).
func WithMultiplicityTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: MultiplicityTolerance must be > 0 (%g)", ErrOptionViolation, tol)
			return
		}
		o.MultiplicityTolerance = tol
	}
}
