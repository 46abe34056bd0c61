// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid couples every cell of a rows×cols lattice with its right and bottom
// neighbors. Cell (r, c) is unknown r·cols + c.
//
// Stable emission order: row-major, Right before Bottom, so weights drawn from
// a seeded WeightFn are reproducible.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(a *assembler, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewUnknowns)
		}
		a.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					a.couple(u, u+1, cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					a.couple(u, u+cols, cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
