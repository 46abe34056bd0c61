package misolver

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/misolve/iterative"
	"github.com/katalvlaran/misolve/rounding"
	"github.com/katalvlaran/misolve/sparse"
)

// Stats summarizes one Solve* call.
type Stats struct {
	// Full, CG and Local count the refinement calls of each tier. Full also
	// counts the initial and final direct solves.
	Full  int
	CG    int
	Local int

	// Rounded is the number of variables fixed to an integer.
	Rounded int
	// Eliminations is the number of variables removed from the system.
	Eliminations int

	// Factorizations and Refactorizations count direct-solver calls.
	Factorizations   int
	Refactorizations int

	// SearchTime is the time spent selecting the next variable(s) to round.
	SearchTime time.Duration
}

// solveContext is the working state of one Solve* call.
type solveContext struct {
	op string

	a   *sparse.Matrix // reduced system, owned by the call
	x   []float64      // caller's vector, original numbering
	xr  []float64      // reduced solution
	rhs []float64      // reduced right-hand side
	idx *sparse.IndexMap

	stats Stats

	// fullDone is set once a factorization succeeded; fullRev is the
	// matrix revision it was computed for.
	fullDone bool
	fullRev  uint64
}

// begin validates the input and builds a context over private copies of A
// and rhs. x is only written: fixed values as they are rounded, the rest at
// finish.
func (s *Solver) begin(op string, a *sparse.Matrix, x, rhs []float64) (*solveContext, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	n := a.Dim()
	if len(x) != n || len(rhs) != n {
		return nil, fmt.Errorf("%s: len(x)=%d len(rhs)=%d n=%d: %w", op, len(x), len(rhs), n, ErrDimensionMismatch)
	}

	return &solveContext{
		op:  op,
		a:   a.Clone(),
		x:   x,
		xr:  slices.Clone(x),
		rhs: slices.Clone(rhs),
		idx: sparse.NewIndexMap(n),
	}, nil
}

// normalizeToRound range-checks toRound and removes duplicates. Without
// fixedOrder the result is sorted; with it the first occurrence wins.
func normalizeToRound(op string, toRound []int, n int) ([]int, error) {
	for _, id := range toRound {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("%s: to-round index %d: %w", op, id, ErrIndexOutOfRange)
		}
	}
	out := slices.Clone(toRound)
	slices.Sort(out)

	return slices.Compact(out), nil
}

func normalizeFixedOrder(op string, toRound []int, n int) ([]int, error) {
	seen := make(map[int]struct{}, len(toRound))
	out := make([]int, 0, len(toRound))
	for _, id := range toRound {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("%s: to-round index %d: %w", op, id, ErrIndexOutOfRange)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out, nil
}

// fullSolve factorizes the reduced system and solves it into xr. The cheaper
// Refactorize is used when the pattern has not changed since the last
// successful factorization. A system with no columns left is skipped.
func (s *Solver) fullSolve(ctx *solveContext) error {
	if ctx.a.Dim() == 0 {
		return nil
	}
	colptr, rowind, values := ctx.a.CSC()
	rev := ctx.a.Revision()

	var err error
	if ctx.fullDone && ctx.fullRev == rev {
		err = s.direct.Refactorize(colptr, rowind, values)
		ctx.stats.Refactorizations++
	} else {
		err = s.direct.Factorize(colptr, rowind, values)
		ctx.stats.Factorizations++
	}
	if err != nil {
		ctx.fullDone = false
		return err
	}
	ctx.fullDone, ctx.fullRev = true, rev

	if err = s.direct.Solve(ctx.xr, ctx.rhs); err != nil {
		return err
	}
	ctx.stats.Full++
	if s.opts.Noisy > 1 {
		s.logger.Printf("%s: full solve over %d unknowns", ctx.op, ctx.a.Dim())
	}

	return nil
}

// refine runs the three refinement tiers after an elimination, stopping at
// the first one that converges. neighbors are reduced indices.
func (s *Solver) refine(ctx *solveContext, neighbors []int) error {
	if ctx.a.Dim() == 0 {
		return nil
	}
	var (
		converged bool
		res       iterative.Result
		err       error
	)

	// Tier 1: local Gauss-Seidel around the fixed variables.
	if s.opts.MaxLocalIters > 0 {
		res, err = iterative.GaussSeidelLocal(ctx.a, ctx.xr, ctx.rhs, neighbors, s.opts.MaxLocalIters, s.opts.MaxLocalError)
		if err != nil {
			return err
		}
		ctx.stats.Local++
		converged = res.Converged
		if s.opts.Noisy > 3 {
			s.logger.Printf("%s: local iterations=%d residual=%g converged=%t", ctx.op, res.Iterations, res.Residual, res.Converged)
		}
	}

	// Tier 2: conjugate gradient over the reduced system.
	if !converged && s.opts.MaxCGIters > 0 {
		res, err = iterative.ConjugateGradient(ctx.a, ctx.xr, ctx.rhs, s.opts.MaxCGIters, s.opts.MaxCGError)
		if err != nil {
			return err
		}
		ctx.stats.CG++
		converged = res.Converged
		if s.opts.Noisy > 3 {
			s.logger.Printf("%s: cg iterations=%d residual=%g converged=%t", ctx.op, res.Iterations, res.Residual, res.Converged)
		}
	}

	// Tier 3: direct solve.
	if !converged && s.opts.IterFullSolution {
		return s.fullSolve(ctx)
	}

	return nil
}

// neighborhood maps original ids to the current reduced numbering, dropping
// eliminated variables and duplicates.
func (ctx *solveContext) neighborhood(orig []int) []int {
	out := make([]int, 0, len(orig))
	for _, o := range orig {
		if r, ok := ctx.idx.Reduced(o); ok {
			out = append(out, r)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// originalNeighbors returns the original ids of the variables coupled to the
// reduced variable r.
func (ctx *solveContext) originalNeighbors(r int, dst []int) []int {
	for _, j := range ctx.a.Neighbors(r) {
		dst = append(dst, ctx.idx.Original(j))
	}

	return dst
}

// progress logs the integer unknowns still to fix at Noisy ≥ 1 and adds the
// residual of the current reduced system at Noisy ≥ 2.
func (s *Solver) progress(ctx *solveContext, left int) error {
	switch {
	case s.opts.Noisy < 1:
	case s.opts.Noisy < 2:
		s.logger.Printf("%s: integer unknowns left: %d", ctx.op, left)
	default:
		res, err := sparse.ResidualNorm(ctx.a, ctx.xr, ctx.rhs)
		if err != nil {
			return err
		}
		s.logger.Printf("%s: integer unknowns left: %d, residual %.3e", ctx.op, left, res)
	}

	return nil
}

// finite reports ErrNonFinite for the current value of original id at
// reduced index r.
func (ctx *solveContext) finite(id, r int) error {
	if v := ctx.xr[r]; math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: x[%d]=%g: %w", ctx.op, id, v, ErrNonFinite)
	}

	return nil
}

// roundAt rounds the value of original id at reduced index r.
func (ctx *solveContext) roundAt(id, r int) (float64, error) {
	if err := ctx.finite(id, r); err != nil {
		return 0, err
	}

	return rounding.Round(ctx.xr[r]), nil
}

// finish scatters the unfixed values back into the caller's x. At Noisy ≥ 1
// it also reports the residual of the reduced system.
func (s *Solver) finish(ctx *solveContext) error {
	if s.opts.Noisy > 0 && ctx.a.Dim() > 0 {
		res, err := sparse.ResidualNorm(ctx.a, ctx.xr, ctx.rhs)
		if err != nil {
			return err
		}
		s.logger.Printf("%s: residual %.3e over %d free unknowns", ctx.op, res, ctx.a.Dim())
	}

	return ctx.idx.Scatter(ctx.x, ctx.xr)
}

// logStats writes the statistics block when Stats is enabled.
func (s *Solver) logStats(ctx *solveContext) {
	if !s.opts.Stats {
		return
	}
	st := ctx.stats
	s.logger.Printf("%s statistics:", ctx.op)
	s.logger.Printf("  cg refinements     : %d", st.CG)
	s.logger.Printf("  local refinements  : %d", st.Local)
	s.logger.Printf("  full solves        : %d", st.Full)
	s.logger.Printf("  rounded variables  : %d", st.Rounded)
	s.logger.Printf("  candidate search   : %.6fs", st.SearchTime.Seconds())
}
