// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels returned by constructors, indexers and validators. Callers branch
// with errors.Is; operations add context with fmt.Errorf("Op: %w", ErrX).
var (
	// ErrInvalidDimensions reports a non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds reports an At/Set index outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch reports a non-square input or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry reports |A[i,j] − A[j,i]| above the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf reports a non-finite value under the strict numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix reports a nil Matrix argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
