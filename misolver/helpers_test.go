package misolver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misolve/direct"
	"github.com/katalvlaran/misolve/sparse"
)

// countingSolver records how often each direct-solver call is made.
type countingSolver struct {
	direct.Solver
	factorize, refactorize, solve int
}

func newCounting(t testing.TB) *countingSolver {
	t.Helper()
	s, err := direct.New(direct.Cholesky)
	require.NoError(t, err)

	return &countingSolver{Solver: s}
}

func (c *countingSolver) Factorize(colptr, rowind []int, values []float64) error {
	c.factorize++
	return c.Solver.Factorize(colptr, rowind, values)
}

func (c *countingSolver) Refactorize(colptr, rowind []int, values []float64) error {
	c.refactorize++
	return c.Solver.Refactorize(colptr, rowind, values)
}

func (c *countingSolver) Solve(x, b []float64) error {
	c.solve++
	return c.Solver.Solve(x, b)
}

// nanSolver factorizes normally but answers every solve with NaN.
type nanSolver struct {
	direct.Solver
}

func (n nanSolver) Solve(x, b []float64) error {
	if err := n.Solver.Solve(x, b); err != nil {
		return err
	}
	for i := range x {
		x[i] = math.NaN()
	}

	return nil
}

// tridiag3 is the 3×3 system [[4,1,0],[1,4,1],[0,1,4]].
func tridiag3(t testing.TB) *sparse.Matrix {
	t.Helper()
	a, err := sparse.NewFromTriplets(3, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 4}, {Row: 1, Col: 0, Val: 1},
		{Row: 0, Col: 1, Val: 1}, {Row: 1, Col: 1, Val: 4}, {Row: 2, Col: 1, Val: 1},
		{Row: 1, Col: 2, Val: 1}, {Row: 2, Col: 2, Val: 4},
	})
	require.NoError(t, err)

	return a
}

// grid returns the k²×k² five-point operator with the given diagonal; any
// diagonal above 4 makes it symmetric positive definite.
func grid(t testing.TB, k int, diag float64) *sparse.Matrix {
	t.Helper()
	n := k * k
	ts := make([]sparse.Triplet, 0, 5*n)
	link := func(i, j int) {
		ts = append(ts,
			sparse.Triplet{Row: i, Col: j, Val: -1},
			sparse.Triplet{Row: j, Col: i, Val: -1},
		)
	}
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			i := r*k + c
			ts = append(ts, sparse.Triplet{Row: i, Col: i, Val: diag})
			if c+1 < k {
				link(i, i+1)
			}
			if r+1 < k {
				link(i, i+k)
			}
		}
	}
	a, err := sparse.NewFromTriplets(n, ts)
	require.NoError(t, err)

	return a
}

// randomVec returns n values uniform in [-scale, scale).
func randomVec(n int, scale float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = (rng.Float64()*2 - 1) * scale
	}

	return v
}

// everyOther returns 0, step, 2·step, … below n.
func everyOther(n, step int) []int {
	var out []int
	for i := 0; i < n; i += step {
		out = append(out, i)
	}

	return out
}

// residualRows returns (A·x − rhs)[i] for every i not in skip.
func residualRows(t testing.TB, a *sparse.Matrix, x, rhs []float64, skip []int) []float64 {
	t.Helper()
	ax := make([]float64, a.Dim())
	require.NoError(t, a.MulVec(ax, x))
	drop := make(map[int]bool, len(skip))
	for _, i := range skip {
		drop[i] = true
	}
	var out []float64
	for i := range ax {
		if !drop[i] {
			out = append(out, ax[i]-rhs[i])
		}
	}

	return out
}
