package misolver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/misolve/direct"
	"github.com/katalvlaran/misolve/rounding"
	"github.com/katalvlaran/misolve/sparse"
)

// SolveNoRounding solves A·x = rhs with one factorization, ignoring integer
// constraints. A and rhs are not modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch, wrapped direct-solver errors.
func (s *Solver) SolveNoRounding(a *sparse.Matrix, x, rhs []float64) (Stats, error) {
	ctx, err := s.begin("SolveNoRounding", a, x, rhs)
	if err != nil {
		return Stats{}, err
	}
	if err = s.fullSolve(ctx); err != nil {
		return ctx.stats, fmt.Errorf("SolveNoRounding: %w", err)
	}
	if err = s.finish(ctx); err != nil {
		return ctx.stats, fmt.Errorf("SolveNoRounding: %w", err)
	}

	return ctx.stats, nil
}

// SolveDirectRounding solves the continuous system once, rounds every
// variable of toRound at the same time, eliminates them in one pass and
// solves the reduced system once more. At most two factorizations happen,
// whatever len(toRound) is.
//
// With WithBackendComparison the continuous system is additionally solved by
// each listed backend and the timings are logged; the result is unaffected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrIndexOutOfRange, ErrNonFinite,
// wrapped direct-solver errors.
func (s *Solver) SolveDirectRounding(a *sparse.Matrix, x, rhs []float64, toRound []int) (Stats, error) {
	const op = "SolveDirectRounding"
	ctx, err := s.begin(op, a, x, rhs)
	if err != nil {
		return Stats{}, err
	}
	ids, err := normalizeToRound(op, toRound, a.Dim())
	if err != nil {
		return Stats{}, err
	}
	if len(ids) == 0 {
		return s.SolveNoRounding(a, x, rhs)
	}

	// Stage 1: continuous solution (always computed here).
	if err = s.fullSolve(ctx); err != nil {
		return ctx.stats, fmt.Errorf("%s: initial solve: %w", op, err)
	}
	if len(s.opts.CompareBackends) > 0 {
		s.compareBackends(ctx)
	}

	// Stage 2: round all at once; no elimination has happened, so
	// original and reduced numbering coincide.
	vals := make([]float64, len(ids))
	for k, id := range ids {
		if vals[k], err = ctx.roundAt(id, id); err != nil {
			return ctx.stats, err
		}
		ctx.x[id] = vals[k]
		if s.opts.Noisy > 2 {
			s.logger.Printf("%s: round x[%d] %g -> %g", op, id, ctx.xr[id], vals[k])
		}
	}
	ctx.stats.Rounded += len(ids)

	// Stage 3: eliminate in one rebuild.
	if ctx.xr, ctx.rhs, err = ctx.a.EliminateSet(ids, vals, ctx.xr, ctx.rhs); err != nil {
		return ctx.stats, fmt.Errorf("%s: %w", op, err)
	}
	if err = ctx.idx.RemoveSet(ids); err != nil {
		return ctx.stats, fmt.Errorf("%s: %w", op, err)
	}
	ctx.stats.Eliminations += len(ids)

	// Stage 4: reduced solve (skipped when nothing is left).
	if err = s.fullSolve(ctx); err != nil {
		return ctx.stats, fmt.Errorf("%s: final solve: %w", op, err)
	}
	if err = s.finish(ctx); err != nil {
		return ctx.stats, fmt.Errorf("%s: %w", op, err)
	}

	return ctx.stats, nil
}

// compareBackends runs the diagnostic backend comparison on the current
// (unreduced) system against the solution in xr. Failures are only logged.
func (s *Solver) compareBackends(ctx *solveContext) {
	colptr, rowind, values := ctx.a.CSC()
	if _, err := direct.Compare(s.opts.CompareBackends, colptr, rowind, values, ctx.rhs, ctx.xr, s.logger); err != nil {
		s.logger.Printf("%s: backend comparison: %v", ctx.op, err)
	}
}

// SolveIterative is the greedy strategy: variables of toRound are fixed one
// at a time, each followed by refinement of the remaining unknowns.
//
// With fixedOrder the variables are taken in the order given (first
// occurrence of duplicates wins). Otherwise toRound is sorted, deduplicated,
// and each step picks the remaining variable closest to an integer.
//
// Exactly one elimination happens per distinct index of toRound. An empty
// toRound behaves as SolveNoRounding.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrIndexOutOfRange, ErrNonFinite,
// wrapped direct-solver errors.
func (s *Solver) SolveIterative(a *sparse.Matrix, x, rhs []float64, toRound []int, fixedOrder bool) (Stats, error) {
	const op = "SolveIterative"
	ctx, err := s.begin(op, a, x, rhs)
	if err != nil {
		return Stats{}, err
	}
	var cands []int
	if fixedOrder {
		cands, err = normalizeFixedOrder(op, toRound, a.Dim())
	} else {
		cands, err = normalizeToRound(op, toRound, a.Dim())
	}
	if err != nil {
		return Stats{}, err
	}
	if len(cands) == 0 {
		return s.SolveNoRounding(a, x, rhs)
	}

	if s.opts.InitialFullSolution {
		if err = s.fullSolve(ctx); err != nil {
			return ctx.stats, fmt.Errorf("%s: initial solve: %w", op, err)
		}
	}

	var (
		pos, id, r int
		ok         bool
		v          float64
		nbrs       []int
		value      = func(id int) float64 {
			r, _ := ctx.idx.Reduced(id)
			return ctx.xr[r]
		}
	)
	for step := 0; step < len(cands); step++ {
		if err = s.progress(ctx, len(cands)-step); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}

		// Stage 1: pick the next variable.
		if fixedOrder {
			pos = step
		} else {
			start := time.Now()
			pos, ok = rounding.SelectBest(cands, value)
			ctx.stats.SearchTime += time.Since(start)
			if !ok {
				return ctx.stats, fmt.Errorf("%s: no finite candidate among %d remaining: %w",
					op, len(cands)-step, ErrNonFinite)
			}
		}
		id = cands[pos]
		cands[pos] = rounding.Consumed

		// Stage 2: round and record.
		r, _ = ctx.idx.Reduced(id)
		if v, err = ctx.roundAt(id, r); err != nil {
			return ctx.stats, err
		}
		ctx.x[id] = v
		ctx.stats.Rounded++
		if s.opts.Noisy > 2 {
			s.logger.Printf("%s: round x[%d] %g -> %g", op, id, ctx.xr[r], v)
		}

		// Stage 3: neighbors from the live column, then eliminate.
		nbrs = ctx.originalNeighbors(r, nbrs[:0])
		if ctx.xr, ctx.rhs, err = ctx.a.FixAndEliminate(r, v, ctx.xr, ctx.rhs); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}
		if err = ctx.idx.Remove(r); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}
		ctx.stats.Eliminations++

		// Stage 4: refine.
		if err = s.refine(ctx, ctx.neighborhood(nbrs)); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}
	}

	if s.opts.FinalFullSolution {
		if err = s.fullSolve(ctx); err != nil {
			return ctx.stats, fmt.Errorf("%s: final solve: %w", op, err)
		}
	}
	if err = s.finish(ctx); err != nil {
		return ctx.stats, fmt.Errorf("%s: %w", op, err)
	}
	s.logStats(ctx)

	return ctx.stats, nil
}

// SolveMultipleRounding fixes a batch of variables per pass: every remaining
// candidate whose rounding error is within MultipleRoundingThreshold of the
// best one. The batch is eliminated at once and refined with a single call
// over the union of the batch's neighbors.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrIndexOutOfRange, ErrNonFinite,
// wrapped direct-solver errors.
func (s *Solver) SolveMultipleRounding(a *sparse.Matrix, x, rhs []float64, toRound []int) (Stats, error) {
	const op = "SolveMultipleRounding"
	ctx, err := s.begin(op, a, x, rhs)
	if err != nil {
		return Stats{}, err
	}
	cands, err := normalizeToRound(op, toRound, a.Dim())
	if err != nil {
		return Stats{}, err
	}
	if len(cands) == 0 {
		return s.SolveNoRounding(a, x, rhs)
	}
	set, err := rounding.NewRoundingSet(s.opts.MultipleRoundingThreshold)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.opts.InitialFullSolution {
		if err = s.fullSolve(ctx); err != nil {
			return ctx.stats, fmt.Errorf("%s: initial solve: %w", op, err)
		}
	}

	var (
		remaining = len(cands)
		batch     []int
		rs        []int
		vals      []float64
		nbrs      []int
		r         int
	)
	for remaining > 0 {
		if err = s.progress(ctx, remaining); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}

		// Stage 1: offer every remaining candidate; the set is keyed by
		// position in cands.
		start := time.Now()
		set.Reset()
		for pos, id := range cands {
			if id == rounding.Consumed {
				continue
			}
			r, _ = ctx.idx.Reduced(id)
			if err = ctx.finite(id, r); err != nil {
				return ctx.stats, err
			}
			set.Add(pos, rounding.Error(ctx.xr[r]))
		}
		batch = set.IDs()
		ctx.stats.SearchTime += time.Since(start)
		if len(batch) == 0 {
			break
		}

		// Stage 2: round the batch and gather its neighbors before any
		// elimination.
		rs, vals, nbrs = rs[:0], vals[:0], nbrs[:0]
		for _, pos := range batch {
			id := cands[pos]
			cands[pos] = rounding.Consumed
			r, _ = ctx.idx.Reduced(id)
			v := rounding.Round(ctx.xr[r])
			ctx.x[id] = v
			if s.opts.Noisy > 2 {
				s.logger.Printf("%s: round x[%d] %g -> %g", op, id, ctx.xr[r], v)
			}
			rs = append(rs, r)
			vals = append(vals, v)
			nbrs = ctx.originalNeighbors(r, nbrs)
		}
		ctx.stats.Rounded += len(batch)
		remaining -= len(batch)

		// Stage 3: eliminate the batch.
		if ctx.xr, ctx.rhs, err = ctx.a.EliminateSet(rs, vals, ctx.xr, ctx.rhs); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}
		if err = ctx.idx.RemoveSet(rs); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}
		ctx.stats.Eliminations += len(rs)
		if s.opts.Noisy > 1 {
			s.logger.Printf("%s: fixed %d variables, %d left", op, len(rs), remaining)
		}

		// Stage 4: one refinement for the whole batch.
		if err = s.refine(ctx, ctx.neighborhood(nbrs)); err != nil {
			return ctx.stats, fmt.Errorf("%s: %w", op, err)
		}
	}

	if s.opts.FinalFullSolution {
		if err = s.fullSolve(ctx); err != nil {
			return ctx.stats, fmt.Errorf("%s: final solve: %w", op, err)
		}
	}
	if err = s.finish(ctx); err != nil {
		return ctx.stats, fmt.Errorf("%s: %w", op, err)
	}
	s.logStats(ctx)

	return ctx.stats, nil
}
