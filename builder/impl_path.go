// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path couples i with i+1 for i in [0, n−1). A single unknown is allowed and
// contributes only its diagonal.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(a *assembler, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewUnknowns)
		}
		a.grow(n)
		for i := 0; i+1 < n; i++ {
			a.couple(i, i+1, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
