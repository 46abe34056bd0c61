package sparse

import "errors"

// Sentinel errors returned by the sparse package. Wrapped errors keep the
// sentinel reachable through errors.Is.
var (
	// ErrNilMatrix indicates that a nil *Matrix or source matrix was passed.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidDimension indicates a negative dimension or a malformed CSC layout.
	ErrInvalidDimension = errors.New("sparse: invalid dimension")

	// ErrIndexOutOfRange indicates a row/column index outside [0, n).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrDuplicateIndex indicates the same variable was scheduled twice for
	// batch elimination.
	ErrDuplicateIndex = errors.New("sparse: duplicate index")

	// ErrDimensionMismatch indicates vectors whose length differs from the matrix dimension.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrAsymmetry indicates input data that is not symmetric within epsilon.
	ErrAsymmetry = errors.New("sparse: matrix is not symmetric")

	// ErrNaNInf indicates a NaN or ±Inf coefficient in the input data.
	ErrNaNInf = errors.New("sparse: NaN or Inf coefficient")
)
