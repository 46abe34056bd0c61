package misolver

import "errors"

// Sentinel errors returned by the solver entry points. Failures of the direct
// solver are wrapped and stay reachable through errors.Is (for example
// direct.ErrFactorization, direct.ErrNotFactorized).
var (
	// ErrNilMatrix indicates that a nil system matrix was passed.
	ErrNilMatrix = errors.New("misolver: nil matrix")

	// ErrDimensionMismatch indicates that x or rhs length differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("misolver: dimension mismatch")

	// ErrIndexOutOfRange indicates an integer-variable index outside [0, n).
	ErrIndexOutOfRange = errors.New("misolver: integer index out of range")

	// ErrNonFinite indicates that an integer variable reached rounding with a
	// NaN or ±Inf value, typically from a NaN starting guess or a degenerate
	// direct solver.
	ErrNonFinite = errors.New("misolver: non-finite value for integer variable")

	// ErrUnsupportedStrategy indicates an unknown Strategy value.
	ErrUnsupportedStrategy = errors.New("misolver: unsupported strategy")
)
