// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/misolve/sparse"
)

// Constructor adds couplings to the system under construction. Constructors
// validate their parameters early, return sentinel errors and never panic.
type Constructor func(a *assembler, cfg builderConfig) error

// assembler accumulates couplings between unknowns.
type assembler struct {
	n    int
	diag []float64
	off  map[[2]int]float64 // key (i,j) with i < j
}

func newAssembler() *assembler {
	return &assembler{off: make(map[[2]int]float64)}
}

// grow widens the index space to at least n unknowns.
func (a *assembler) grow(n int) {
	if n <= a.n {
		return
	}
	a.diag = append(a.diag, make([]float64, n-a.n)...)
	a.n = n
}

// couple links i and j with strength w. Repeated couplings accumulate.
func (a *assembler) couple(i, j int, w float64) {
	if i > j {
		i, j = j, i
	}
	a.off[[2]int{i, j}] += w
	a.diag[i] += w
	a.diag[j] += w
}

// triplets emits the matrix in row-major order of its upper-triangle keys.
func (a *assembler) triplets(shift float64) []sparse.Triplet {
	keys := make([][2]int, 0, len(a.off))
	for k := range a.off {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(p, q int) bool {
		if keys[p][0] != keys[q][0] {
			return keys[p][0] < keys[q][0]
		}
		return keys[p][1] < keys[q][1]
	})

	ts := make([]sparse.Triplet, 0, a.n+2*len(keys))
	for i := 0; i < a.n; i++ {
		ts = append(ts, sparse.Triplet{Row: i, Col: i, Val: a.diag[i] + shift})
	}
	for _, k := range keys {
		v := -a.off[k]
		ts = append(ts,
			sparse.Triplet{Row: k[0], Col: k[1], Val: v},
			sparse.Triplet{Row: k[1], Col: k[0], Val: v},
		)
	}

	return ts
}

// Build resolves opts and applies cons in order over one shared index space,
// then returns the assembled SPD matrix. The dimension is the largest size
// any constructor asked for; no constructors yield a 0×0 matrix.
//
// Errors are wrapped as "Build: %w" around the builder sentinels.
//
// Complexity: Σ cost of constructors plus O(nnz·log nnz) for assembly.
func Build(opts []BuilderOption, cons ...Constructor) (*sparse.Matrix, error) {
	cfg := newBuilderConfig(opts...)
	asm := newAssembler()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(asm, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	m, err := sparse.NewFromTriplets(asm.n, asm.triplets(cfg.shift))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}

// Vector returns n values drawn uniformly from [lo, hi). A degenerate range
// (lo == hi) needs no RNG; any other range requires WithSeed or WithRand.
func Vector(n int, lo, hi float64, opts ...BuilderOption) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Vector: n=%d: %w", n, ErrTooFewUnknowns)
	}
	if hi < lo || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("Vector: [%g,%g): %w", lo, hi, ErrInvalidRange)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && hi > lo {
		return nil, fmt.Errorf("Vector: %w", ErrNeedRandSource)
	}

	v := make([]float64, n)
	for i := range v {
		if hi == lo {
			v[i] = lo
			continue
		}
		v[i] = lo + cfg.rng.Float64()*(hi-lo)
	}

	return v, nil
}
