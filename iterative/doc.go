// Package iterative provides the cheap refinement tiers of the mixed-integer
// solver: a neighborhood-restricted Gauss-Seidel relaxation and a bounded
// conjugate-gradient solve over the whole (reduced) system.
//
// Both methods work in place on x, are bounded only by their iteration caps,
// and report non-convergence through Result.Converged rather than an error:
// failing to converge is the expected signal for the caller to escalate to a
// more expensive tier. Errors are reserved for malformed input (nil matrix,
// vector length mismatch, neighborhood index out of range).
//
// Complexity:
//   - GaussSeidelLocal: O(maxIters · deg) where deg is the column degree.
//   - ConjugateGradient: O(maxIters · nnz).
package iterative
