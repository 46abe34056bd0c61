package direct

import (
	"fmt"
	"log"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Comparison is the outcome of running one alternative backend.
type Comparison struct {
	Backend    Backend
	FactorTime time.Duration
	SolveTime  time.Duration
	// Diff is ‖x_ref − x_alt‖₂; meaningless when Err != nil.
	Diff float64
	Err  error
}

// Compare factorizes and solves the same system with each backend in turn and
// reports timings and the distance to the reference solution ref. Each
// backend runs on its own fresh Solver; ref and b are only read. Results are
// also written to logger when it is non-nil.
//
// Errors: ErrDimensionMismatch when len(ref) != len(b); per-backend failures
// are reported in Comparison.Err instead.
func Compare(backends []Backend, colptr, rowind []int, values, b, ref []float64, logger *log.Logger) ([]Comparison, error) {
	if len(ref) != len(b) {
		return nil, fmt.Errorf("Compare: %w", ErrDimensionMismatch)
	}
	out := make([]Comparison, 0, len(backends))
	for _, be := range backends {
		c := Comparison{Backend: be}
		s, err := New(be)
		if err != nil {
			c.Err = err
			out = append(out, c)
			continue
		}

		start := time.Now()
		err = s.Factorize(colptr, rowind, values)
		c.FactorTime = time.Since(start)
		if err == nil {
			x := make([]float64, len(b))
			start = time.Now()
			err = s.Solve(x, b)
			c.SolveTime = time.Since(start)
			if err == nil {
				c.Diff = floats.Distance(ref, x, 2)
			}
		}
		c.Err = err
		out = append(out, c)

		if logger != nil {
			if c.Err != nil {
				logger.Printf("%v comparison failed: %v", be, c.Err)
				continue
			}
			logger.Printf("%v factor took: %.6fs", be, c.FactorTime.Seconds())
			logger.Printf("%v solve took: %.6fs", be, c.SolveTime.Seconds())
			logger.Printf("%v difference in result: %g", be, c.Diff)
		}
	}

	return out, nil
}
