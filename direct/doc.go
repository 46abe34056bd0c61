// Package direct defines the direct-factorization capability used by the
// mixed-integer solver for full solves, together with gonum-backed
// implementations.
//
// The capability mirrors a classic sparse direct solver:
//
//   - Factorize(colptr, rowind, values) analyses and factorizes a symmetric
//     matrix given in full-storage compressed-column form;
//   - Refactorize(...) redoes only the numeric factorization and requires the
//     sparsity pattern to be exactly the one last factorized;
//   - Solve(x, b) solves with the current factors;
//   - Dim() reports the factorized dimension.
//
// Backends are selected at construction (New): Cholesky (default, SPD
// systems), LU and QR (general square systems). The built-in backends are
// dense: they copy the compressed columns into a gonum mat.SymDense or
// mat.Dense, so a factorization costs O(n³) time and O(n²) memory whatever
// the sparsity. They suit systems up to a few thousand unknowns; larger
// systems need a sparse Solver plugged in through misolver.WithDirectSolver.
//
// Compare runs alternative backends side by side on the same system for
// timing diagnostics; it never changes the reference solution.
package direct
