package direct

import "fmt"

// Solver is the direct sparse solver capability.
// Implementations are not safe for concurrent use.
type Solver interface {
	// Factorize performs symbolic analysis and numeric factorization of the
	// n×n matrix described by colptr (n+1), rowind and values (full storage).
	Factorize(colptr, rowind []int, values []float64) error

	// Refactorize repeats only the numeric factorization. The pattern
	// (colptr, rowind) must equal the one last factorized.
	Refactorize(colptr, rowind []int, values []float64) error

	// Solve stores into x the solution of A·x = b.
	Solve(x, b []float64) error

	// Dim returns the dimension of the factorized system (0 before Factorize).
	Dim() int
}

// Backend selects a factorization method.
type Backend int

const (
	// Cholesky factorizes A = LLᵀ; requires a symmetric positive definite matrix.
	Cholesky Backend = iota
	// LU factorizes PA = LU with partial pivoting.
	LU
	// QR factorizes A = QR with Householder reflections.
	QR
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case Cholesky:
		return "cholesky"
	case LU:
		return "lu"
	case QR:
		return "qr"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// New returns a fresh dense Solver for the given backend: O(n³) per
// factorization, O(n²) memory.
// Errors: ErrUnknownBackend.
func New(b Backend) (Solver, error) {
	switch b {
	case Cholesky, LU, QR:
		return &gonumSolver{backend: b}, nil
	default:
		return nil, fmt.Errorf("New(%v): %w", b, ErrUnknownBackend)
	}
}

// validateLayout checks the structural consistency of a CSC triple and
// returns its dimension.
func validateLayout(colptr, rowind []int, values []float64) (int, error) {
	if len(colptr) == 0 || colptr[0] != 0 {
		return 0, ErrInvalidLayout
	}
	n := len(colptr) - 1
	if colptr[n] != len(rowind) || len(rowind) != len(values) {
		return 0, ErrInvalidLayout
	}
	var j, p int
	for j = 0; j < n; j++ {
		if colptr[j+1] < colptr[j] {
			return 0, ErrInvalidLayout
		}
		for p = colptr[j]; p < colptr[j+1]; p++ {
			if rowind[p] < 0 || rowind[p] >= n {
				return 0, ErrInvalidLayout
			}
		}
	}

	return n, nil
}
