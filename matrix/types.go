// SPDX-License-Identifier: MIT

package matrix

// Matrix is the dense, rectangular view accepted at the module's edges:
// callers hand one to sparse.NewFromMatrix and get one back from
// sparse.Matrix.ToDense for inspection and printing.
//
// Indexing never panics; At and Set report ErrIndexOutOfBounds.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
	// Clone returns an independent deep copy, O(r·c).
	Clone() Matrix
}

var _ Matrix = (*Dense)(nil)
