// Package matrix provides the small dense-matrix surface used to hand linear
// systems to the mixed-integer solver and to inspect its results.
//
// The matrix package provides:
//
//   - Matrix, the minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with bounds-checked accessors.
//   - Validators (square, symmetric, finite) returning
//     package sentinels so callers can match them with errors.Is.
//   - Functional options for the numeric policy (epsilon, NaN/Inf checks).
//
// Sparse storage and elimination live in package sparse; dense matrices are
// meant for assembly of small systems, test fixtures and diagnostics where
// O(n²) memory is acceptable.
package matrix
