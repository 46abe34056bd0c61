package iterative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/misolve/sparse"
)

// GaussSeidelLocal relaxes the variables around a just-fixed unknown.
//
// Implementation:
//   - Stage 1: seed a FIFO work queue with neighborhood (duplicates ignored).
//   - Stage 2: pop i, compute r_i = rhs_i − (A·x)_i. If r_i²/a_ii > tol²
//     (the energy-norm test, |r_i| > tol·√a_ii), apply the Gauss-Seidel update x_i += r_i / a_ii and enqueue every
//     neighbor of i not already queued.
//   - Stage 3: stop when the queue drains (converged) or after maxIters
//     single-variable updates (not converged).
//
// A missing diagonal entry is treated as 1. maxIters == 0 performs no work
// and reports Converged=false; an empty neighborhood converges immediately.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrIndexOutOfRange.
func GaussSeidelLocal(a *sparse.Matrix, x, rhs []float64, neighborhood []int, maxIters int, tol float64) (Result, error) {
	if a == nil {
		return Result{}, ErrNilMatrix
	}
	n := a.Dim()
	if len(x) != n || len(rhs) != n {
		return Result{}, fmt.Errorf("GaussSeidelLocal: %w", ErrDimensionMismatch)
	}
	for _, i := range neighborhood {
		if i < 0 || i >= n {
			return Result{}, fmt.Errorf("GaussSeidelLocal(%d): %w", i, ErrIndexOutOfRange)
		}
	}
	if maxIters <= 0 {
		return Result{Residual: localResidual(a, x, rhs, neighborhood)}, nil
	}

	// Stage 1: uniform queue (each index at most once).
	var (
		queue   = make([]int, 0, len(neighborhood))
		inQueue = make([]bool, n)
	)
	for _, i := range neighborhood {
		if !inQueue[i] {
			inQueue[i] = true
			queue = append(queue, i)
		}
	}

	// Stage 2: relax.
	var (
		it, i   int
		r, diag float64
		e       sparse.Entry
		head    int
	)
	for head < len(queue) && it < maxIters {
		it++
		i = queue[head]
		head++
		inQueue[i] = false

		r, diag = rhs[i], 1.0
		for _, e = range a.Col(i) {
			r -= e.Val * x[e.Row]
			if e.Row == i {
				diag = e.Val
			}
		}
		if r*r/math.Abs(diag) <= tol*tol {
			continue
		}
		x[i] += r / diag
		for _, e = range a.Col(i) {
			if e.Row != i && !inQueue[e.Row] {
				inQueue[e.Row] = true
				queue = append(queue, e.Row)
			}
		}
		// reclaim the consumed prefix once it dominates the buffer
		if head > 1024 && head*2 > len(queue) {
			queue = append(queue[:0], queue[head:]...)
			head = 0
		}
	}

	// Stage 3: report.
	return Result{
		Converged:  head == len(queue),
		Iterations: it,
		Residual:   localResidual(a, x, rhs, neighborhood),
	}, nil
}

// localResidual returns max_i |r_i|/√a_ii over idx, the quantity compared
// against tol.
func localResidual(a *sparse.Matrix, x, rhs []float64, idx []int) float64 {
	var (
		worst, r, diag float64
		e              sparse.Entry
	)
	for _, i := range idx {
		r, diag = rhs[i], 1.0
		for _, e = range a.Col(i) {
			r -= e.Val * x[e.Row]
			if e.Row == i {
				diag = e.Val
			}
		}
		if v := math.Abs(r) / math.Sqrt(math.Abs(diag)); v > worst {
			worst = v
		}
	}

	return worst
}
