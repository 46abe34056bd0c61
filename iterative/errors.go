package iterative

import "errors"

var (
	// ErrNilMatrix indicates that a nil *sparse.Matrix was passed.
	ErrNilMatrix = errors.New("iterative: nil matrix")

	// ErrDimensionMismatch indicates x or rhs length differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("iterative: dimension mismatch")

	// ErrIndexOutOfRange indicates a neighborhood index outside [0, n).
	ErrIndexOutOfRange = errors.New("iterative: index out of range")
)

// Result reports the outcome of one refinement call.
type Result struct {
	// Converged is true when the stopping criterion was met within the budget.
	Converged bool
	// Iterations is the number of single-variable updates (Gauss-Seidel) or
	// CG steps performed.
	Iterations int
	// Residual is the final residual measure: the largest |r_i|/√a_ii over
	// the neighborhood for Gauss-Seidel, ‖rhs − A·x‖₂ for CG.
	Residual float64
}
