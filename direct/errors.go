package direct

import "errors"

var (
	// ErrNotFactorized indicates Solve or Refactorize before a successful Factorize.
	ErrNotFactorized = errors.New("direct: system not factorized")

	// ErrDimensionMismatch indicates vectors whose length differs from Dim().
	ErrDimensionMismatch = errors.New("direct: dimension mismatch")

	// ErrInvalidLayout indicates a malformed compressed-column triple.
	ErrInvalidLayout = errors.New("direct: invalid compressed-column layout")

	// ErrPatternChanged indicates Refactorize with a sparsity pattern different
	// from the one last factorized.
	ErrPatternChanged = errors.New("direct: sparsity pattern changed")

	// ErrFactorization indicates the backend could not factorize or solve
	// (singular, not positive definite or numerically ill-conditioned).
	ErrFactorization = errors.New("direct: factorization failed")

	// ErrUnknownBackend indicates an unsupported Backend value.
	ErrUnknownBackend = errors.New("direct: unknown backend")
)
