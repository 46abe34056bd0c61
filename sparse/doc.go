// Package sparse implements the symmetric sparse matrix used by the
// mixed-integer solver together with the fix-and-eliminate operations that
// shrink it as integer variables get fixed.
//
// Storage is an arena of owned, growable columns: every column keeps its
// nonzero entries sorted by row index, and BOTH triangles of the symmetric
// matrix are stored. This makes column scans (neighbor lookup, Gauss-Seidel
// rows, right-hand-side updates) O(nnz(col)) and keeps elimination free of
// raw offset arithmetic into shared buffers. CSC exports the compressed-column
// triple (colptr, rowind, values) expected by direct factorization backends.
//
// Elimination:
//
//   - FixAndEliminate(i, v, x, rhs) folds A[:,i]*v into rhs, removes row and
//     column i and the i-th entries of x and rhs. Dimension drops by one and
//     symmetry is preserved because rows and columns are edited identically.
//   - EliminateSet does the same for a whole batch in one rebuild pass.
//
// IndexMap tracks the reduced↔original numbering across eliminations.
//
// Complexity:
//   - FixAndEliminate: O(nnz) (row renumbering touches every stored entry).
//   - EliminateSet:    O(nnz + n log n) for the whole batch.
//   - At:              O(log nnz(col)).
package sparse
