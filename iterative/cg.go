package iterative

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/misolve/sparse"
)

// ConjugateGradient runs unpreconditioned CG on A·x = rhs starting from x.
//
// Stopping rule: ‖rhs − A·x‖₂ ≤ tol · max(1, ‖rhs‖₂), i.e. relative to the
// right-hand side, absolute when the rhs is tiny. At most maxIters steps are
// taken. A non-positive curvature pᵀAp ends the iteration early (A is not
// positive definite along p) and is reported as non-convergence.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(maxIters · nnz) time, O(n) extra space.
func ConjugateGradient(a *sparse.Matrix, x, rhs []float64, maxIters int, tol float64) (Result, error) {
	if a == nil {
		return Result{}, ErrNilMatrix
	}
	n := a.Dim()
	if len(x) != n || len(rhs) != n {
		return Result{}, fmt.Errorf("ConjugateGradient: %w", ErrDimensionMismatch)
	}
	if n == 0 {
		return Result{Converged: true}, nil
	}

	// Stage 1: r = rhs − A·x, p = r.
	var (
		r = make([]float64, n)
		p = make([]float64, n)
		q = make([]float64, n)
	)
	if err := a.MulVec(q, x); err != nil {
		return Result{}, fmt.Errorf("ConjugateGradient: %w", err)
	}
	floats.SubTo(r, rhs, q)
	copy(p, r)

	var (
		rho    = floats.Dot(r, r)
		norm   = math.Sqrt(rho)
		target = tol * math.Max(1, floats.Norm(rhs, 2))
		it     int
		pq     float64
		alpha  float64
		rhoNew float64
	)

	// Stage 2: iterate.
	for norm > target && it < maxIters {
		if err := a.MulVec(q, p); err != nil {
			return Result{Iterations: it, Residual: norm}, fmt.Errorf("ConjugateGradient: %w", err)
		}
		pq = floats.Dot(p, q)
		if pq <= 0 {
			break
		}
		alpha = rho / pq
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, q)
		rhoNew = floats.Dot(r, r)
		floats.AddScaledTo(p, r, rhoNew/rho, p)
		rho = rhoNew
		norm = math.Sqrt(rho)
		it++
	}

	return Result{Converged: norm <= target, Iterations: it, Residual: norm}, nil
}
