package misolver

import (
	"io"
	"log"
	"math"

	"github.com/katalvlaran/misolve/direct"
)

// Strategy selects the rounding scheme used by Solve.
type Strategy int

const (
	// MultipleRounding fixes a batch of near-integer variables per pass (default).
	MultipleRounding Strategy = iota
	// GreedyRounding fixes one variable per pass (closest to integer, or in
	// caller order when FixedOrder is set).
	GreedyRounding
	// DirectRounding rounds every integer variable after one continuous solve.
	DirectRounding
	// NoRounding ignores the integer constraints.
	NoRounding
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case MultipleRounding:
		return "multiple"
	case GreedyRounding:
		return "greedy"
	case DirectRounding:
		return "direct"
	case NoRounding:
		return "none"
	default:
		return "unknown"
	}
}

// Defaults (single source of truth for DefaultOptions).
const (
	DefaultInitialFullSolution = true
	DefaultIterFullSolution    = true
	DefaultFinalFullSolution   = true

	DefaultMaxLocalIters = 100000
	DefaultMaxLocalError = 1e-3
	DefaultMaxCGIters    = 50
	DefaultMaxCGError    = 1e-3

	DefaultMultipleRoundingThreshold = 0.5

	DefaultConstraintReordering = true
	DefaultStats                = true
)

// Panic messages for nonsensical option values (programmer error).
const (
	panicNegativeIters = "misolver: iteration cap must be non-negative"
	panicBadTolerance  = "misolver: tolerance must be finite and non-negative"
	panicBadThreshold  = "misolver: multiple rounding threshold must be in [0, 1]"
	panicNegativeNoisy = "misolver: noisy level must be non-negative"
)

// Options configures a Solver. Options are fixed at New and never mutated by
// a solve call.
type Options struct {
	// InitialFullSolution runs a full direct solve before any elimination.
	InitialFullSolution bool
	// IterFullSolution allows the full direct solve as the last refinement tier.
	IterFullSolution bool
	// FinalFullSolution runs a full direct solve after all eliminations.
	FinalFullSolution bool

	// MaxLocalIters and MaxLocalError bound the Gauss-Seidel tier; zero
	// iterations disable it.
	MaxLocalIters int
	MaxLocalError float64
	// MaxCGIters and MaxCGError bound the conjugate-gradient tier; zero
	// iterations disable it.
	MaxCGIters int
	MaxCGError float64

	// MultipleRoundingThreshold sets the batch aggressiveness, in [0, 1].
	MultipleRoundingThreshold float64
	// ConstraintReordering is an advisory flag for callers assembling
	// constrained systems. The solver core only reports it back.
	ConstraintReordering bool

	// Strategy selects the entry point used by Solve. FixedOrder applies to
	// GreedyRounding.
	Strategy   Strategy
	FixedOrder bool

	// Noisy, Stats and Logger control diagnostics and never affect results.
	Noisy  int
	Stats  bool
	Logger *log.Logger

	// Backend picks the built-in direct solver unless DirectSolver is set.
	// CompareBackends lists backends timed during direct rounding.
	Backend         direct.Backend
	DirectSolver    direct.Solver
	CompareBackends []direct.Backend
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns the documented defaults: all three full-solve
// switches on, 100000 local iterations at 1e-3, 50 CG iterations at 1e-3,
// threshold 0.5, multiple rounding, Cholesky backend, stats on, silent logger.
func DefaultOptions() Options {
	return Options{
		InitialFullSolution:       DefaultInitialFullSolution,
		IterFullSolution:          DefaultIterFullSolution,
		FinalFullSolution:         DefaultFinalFullSolution,
		MaxLocalIters:             DefaultMaxLocalIters,
		MaxLocalError:             DefaultMaxLocalError,
		MaxCGIters:                DefaultMaxCGIters,
		MaxCGError:                DefaultMaxCGError,
		MultipleRoundingThreshold: DefaultMultipleRoundingThreshold,
		ConstraintReordering:      DefaultConstraintReordering,
		Strategy:                  MultipleRounding,
		Stats:                     DefaultStats,
		Logger:                    log.New(io.Discard, "", 0),
		Backend:                   direct.Cholesky,
	}
}

// WithInitialFullSolution toggles the full solve before elimination.
func WithInitialFullSolution(on bool) Option {
	return func(o *Options) { o.InitialFullSolution = on }
}

// WithIterFullSolution toggles the full-solve refinement tier.
func WithIterFullSolution(on bool) Option {
	return func(o *Options) { o.IterFullSolution = on }
}

// WithFinalFullSolution toggles the full solve after elimination.
func WithFinalFullSolution(on bool) Option {
	return func(o *Options) { o.FinalFullSolution = on }
}

// WithLocalIterations sets the Gauss-Seidel budget. Panics on negative
// iterations or a negative/non-finite tolerance.
func WithLocalIterations(maxIters int, maxErr float64) Option {
	mustBudget(maxIters, maxErr)

	return func(o *Options) {
		o.MaxLocalIters = maxIters
		o.MaxLocalError = maxErr
	}
}

// WithCGIterations sets the conjugate-gradient budget. Panics on negative
// iterations or a negative/non-finite tolerance.
func WithCGIterations(maxIters int, maxErr float64) Option {
	mustBudget(maxIters, maxErr)

	return func(o *Options) {
		o.MaxCGIters = maxIters
		o.MaxCGError = maxErr
	}
}

// WithMultipleRoundingThreshold sets the batch-selection threshold in [0, 1].
func WithMultipleRoundingThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 || t > 1 {
		panic(panicBadThreshold)
	}

	return func(o *Options) { o.MultipleRoundingThreshold = t }
}

// WithConstraintReordering sets the advisory reordering flag.
func WithConstraintReordering(on bool) Option {
	return func(o *Options) { o.ConstraintReordering = on }
}

// WithStrategy selects the scheme used by Solve.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithFixedOrder makes GreedyRounding fix variables in caller order.
func WithFixedOrder(on bool) Option {
	return func(o *Options) { o.FixedOrder = on }
}

// WithNoisy sets the diagnostic verbosity (0 = silent, up to 6).
func WithNoisy(level int) Option {
	if level < 0 {
		panic(panicNegativeNoisy)
	}

	return func(o *Options) { o.Noisy = level }
}

// WithStats toggles the statistics block logged after greedy and multiple rounding.
func WithStats(on bool) Option {
	return func(o *Options) { o.Stats = on }
}

// WithLogger routes diagnostics to l; nil restores the silent logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		o.Logger = l
	}
}

// WithBackend selects the built-in direct backend.
func WithBackend(b direct.Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithDirectSolver plugs in an external direct solver; it takes precedence
// over WithBackend.
func WithDirectSolver(s direct.Solver) Option {
	return func(o *Options) { o.DirectSolver = s }
}

// WithBackendComparison enables the diagnostic backend comparison during
// direct rounding. The comparison only logs; results are unaffected.
func WithBackendComparison(backends ...direct.Backend) Option {
	bs := append([]direct.Backend(nil), backends...)

	return func(o *Options) { o.CompareBackends = bs }
}

func mustBudget(maxIters int, maxErr float64) {
	if maxIters < 0 {
		panic(panicNegativeIters)
	}
	if math.IsNaN(maxErr) || math.IsInf(maxErr, 0) || maxErr < 0 {
		panic(panicBadTolerance)
	}
}
