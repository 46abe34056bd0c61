package misolver

import (
	"fmt"
	"log"

	"github.com/katalvlaran/misolve/direct"
	"github.com/katalvlaran/misolve/sparse"
)

// Solver is the mixed-integer solver. Its configuration is fixed at New;
// every Solve* call keeps its working state in a call-local context.
//
// A Solver owns one direct solver whose last factorization backs Resolve,
// so a Solver must not be used from several goroutines at once.
type Solver struct {
	opts   Options
	direct direct.Solver
	logger *log.Logger
}

// New builds a Solver from DefaultOptions overridden by opts.
// Errors: direct.ErrUnknownBackend when no external solver is given and the
// configured backend is not recognized.
func New(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	ds := o.DirectSolver
	if ds == nil {
		var err error
		if ds, err = direct.New(o.Backend); err != nil {
			return nil, fmt.Errorf("misolver.New: %w", err)
		}
	}

	return &Solver{opts: o, direct: ds, logger: o.Logger}, nil
}

// Options returns a copy of the configuration.
func (s *Solver) Options() Options {
	o := s.opts
	o.CompareBackends = append([]direct.Backend(nil), s.opts.CompareBackends...)

	return o
}

// Solve runs the configured Strategy. For GreedyRounding the order flag is
// taken from Options.FixedOrder.
// Errors: ErrUnsupportedStrategy plus everything the selected strategy returns.
func (s *Solver) Solve(a *sparse.Matrix, x, rhs []float64, toRound []int) (Stats, error) {
	switch s.opts.Strategy {
	case MultipleRounding:
		return s.SolveMultipleRounding(a, x, rhs, toRound)
	case GreedyRounding:
		return s.SolveIterative(a, x, rhs, toRound, s.opts.FixedOrder)
	case DirectRounding:
		return s.SolveDirectRounding(a, x, rhs, toRound)
	case NoRounding:
		return s.SolveNoRounding(a, x, rhs)
	default:
		return Stats{}, fmt.Errorf("Solve(%v): %w", s.opts.Strategy, ErrUnsupportedStrategy)
	}
}

// Resolve solves the last factorized system for a new right-hand side.
// The last factorization is that of the final full solve (or the last full
// solve of the loop), i.e. of the reduced system over the unfixed variables
// in reduced numbering.
// Errors: direct.ErrNotFactorized before any full solve,
// direct.ErrDimensionMismatch on length mismatch, direct.ErrFactorization.
func (s *Solver) Resolve(x, rhs []float64) error {
	if err := s.direct.Solve(x, rhs); err != nil {
		return fmt.Errorf("Resolve: %w", err)
	}

	return nil
}
