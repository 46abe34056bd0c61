package direct

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// gonumSolver assembles the compressed-column input into a dense gonum matrix
// and factorizes it with the selected backend. The assembled buffers and the
// pattern are kept so Refactorize only refills values and refactors.
type gonumSolver struct {
	backend Backend
	n       int
	ready   bool

	colptr []int
	rowind []int

	sym  *mat.SymDense // Cholesky input
	full *mat.Dense    // LU / QR input

	chol mat.Cholesky
	lu   mat.LU
	qr   mat.QR
}

// Dim returns the factorized dimension.
func (s *gonumSolver) Dim() int { return s.n }

// Factorize validates the layout, (re)allocates the dense buffers and factorizes.
func (s *gonumSolver) Factorize(colptr, rowind []int, values []float64) error {
	n, err := validateLayout(colptr, rowind, values)
	if err != nil {
		return fmt.Errorf("Factorize: %w", err)
	}
	s.ready = false
	s.n = n
	s.colptr = append(s.colptr[:0], colptr...)
	s.rowind = append(s.rowind[:0], rowind...)
	s.sym, s.full = nil, nil
	if n > 0 {
		if s.backend == Cholesky {
			s.sym = mat.NewSymDense(n, nil)
		} else {
			s.full = mat.NewDense(n, n, nil)
		}
	}

	return s.numeric("Factorize", values)
}

// Refactorize refills the existing buffers and refactors numerically.
func (s *gonumSolver) Refactorize(colptr, rowind []int, values []float64) error {
	if s.colptr == nil {
		return fmt.Errorf("Refactorize: %w", ErrNotFactorized)
	}
	if !slices.Equal(colptr, s.colptr) || !slices.Equal(rowind, s.rowind) {
		return fmt.Errorf("Refactorize: %w", ErrPatternChanged)
	}
	if len(values) != len(rowind) {
		return fmt.Errorf("Refactorize: %w", ErrInvalidLayout)
	}
	s.ready = false

	return s.numeric("Refactorize", values)
}

// numeric fills the dense buffer from values and runs the backend factorization.
func (s *gonumSolver) numeric(op string, values []float64) error {
	if s.n == 0 {
		s.ready = true
		return nil
	}

	// Stage 1: scatter values.
	var (
		j, p, i int
	)
	if s.sym != nil {
		s.sym.Zero()
		for j = 0; j < s.n; j++ {
			for p = s.colptr[j]; p < s.colptr[j+1]; p++ {
				if i = s.rowind[p]; i <= j {
					s.sym.SetSym(i, j, s.sym.At(i, j)+values[p])
				}
			}
		}
	} else {
		s.full.Zero()
		for j = 0; j < s.n; j++ {
			for p = s.colptr[j]; p < s.colptr[j+1]; p++ {
				i = s.rowind[p]
				s.full.Set(i, j, s.full.At(i, j)+values[p])
			}
		}
	}

	// Stage 2: factorize.
	switch s.backend {
	case Cholesky:
		if ok := s.chol.Factorize(s.sym); !ok {
			return fmt.Errorf("%s(%v): matrix not positive definite: %w", op, s.backend, ErrFactorization)
		}
	case LU:
		s.lu.Factorize(s.full)
	case QR:
		s.qr.Factorize(s.full)
	}
	s.ready = true

	return nil
}

// Solve solves A·x = b with the current factors; x and b may alias.
func (s *gonumSolver) Solve(x, b []float64) error {
	if !s.ready {
		return fmt.Errorf("Solve: %w", ErrNotFactorized)
	}
	if len(x) != s.n || len(b) != s.n {
		return fmt.Errorf("Solve: %w", ErrDimensionMismatch)
	}
	if s.n == 0 {
		return nil
	}

	var (
		rhs = mat.NewVecDense(s.n, append([]float64(nil), b...))
		dst = mat.NewVecDense(s.n, x)
		err error
	)
	switch s.backend {
	case Cholesky:
		err = s.chol.SolveVecTo(dst, rhs)
	case LU:
		err = s.lu.SolveVecTo(dst, false, rhs)
	case QR:
		err = s.qr.SolveVecTo(dst, false, rhs)
	}
	if err != nil {
		return fmt.Errorf("Solve(%v): %v: %w", s.backend, err, ErrFactorization)
	}

	return nil
}
