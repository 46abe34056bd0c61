// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseUnknowns = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse couples each unordered pair {i, j} independently with
// probability p. The extremes p = 0 and p = 1 are deterministic and need no
// RNG; anything in between requires WithSeed or WithRand.
//
// Stable trial order: i ascending, then j > i ascending.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(a *assembler, cfg builderConfig) error {
		if n < minRandomSparseUnknowns {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseUnknowns, ErrTooFewUnknowns)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		a.grow(n)
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || cfg.rng.Float64() < p {
					a.couple(i, j, cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
