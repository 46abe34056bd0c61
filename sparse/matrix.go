// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/misolve/matrix"
)

// Entry is one stored nonzero of a column: A[Row, col] = Val.
type Entry struct {
	Row int
	Val float64
}

// Triplet is a coordinate-format coefficient A[Row, Col] = Val used for assembly.
type Triplet struct {
	Row, Col int
	Val      float64
}

// Matrix is a square symmetric sparse matrix stored as an arena of columns.
//   - cols[j] holds the nonzeros of column j sorted by Row (both triangles).
//   - nnz caches the total number of stored entries.
//   - rev is bumped on every structural change (elimination); callers use it
//     to decide whether a cached factorization still matches the pattern.
type Matrix struct {
	cols [][]Entry
	nnz  int
	rev  uint64
}

// New returns an n×n zero matrix (no stored entries).
// n == 0 is allowed and models a fully eliminated system.
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidDimension)
	}

	return &Matrix{cols: make([][]Entry, n)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		m.cols[j] = []Entry{{Row: j, Val: 1}}
	}
	m.nnz = n

	return m, nil
}

// NewFromTriplets assembles an n×n symmetric matrix from coordinate data.
//
// Contracts:
//   - every Row/Col lies in [0, n); values are finite.
//   - duplicates are summed; entries that sum to exactly zero are dropped.
//   - the assembled matrix must be symmetric within the matrix.Options epsilon
//     (both triangles must be supplied; no implicit mirroring).
//
// Errors: ErrInvalidDimension, ErrIndexOutOfRange, ErrNaNInf, ErrAsymmetry.
// Complexity: O(t log t) for t triplets.
func NewFromTriplets(n int, ts []Triplet, opts ...matrix.Option) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}

	// Stage 1: validate and bucket by column.
	var t Triplet
	for _, t = range ts {
		if t.Row < 0 || t.Row >= n || t.Col < 0 || t.Col >= n {
			return nil, fmt.Errorf("NewFromTriplets(%d,%d): %w", t.Row, t.Col, ErrIndexOutOfRange)
		}
		if math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			return nil, fmt.Errorf("NewFromTriplets(%d,%d): %w", t.Row, t.Col, ErrNaNInf)
		}
		m.cols[t.Col] = append(m.cols[t.Col], Entry{Row: t.Row, Val: t.Val})
	}

	// Stage 2: sort each column, merge duplicates, drop zeros.
	var j int
	for j = range m.cols {
		m.cols[j] = compactColumn(m.cols[j])
		m.nnz += len(m.cols[j])
	}

	// Stage 3: symmetry check.
	o := matrix.NewOptions(opts...)
	if !m.IsSymmetric(o.Epsilon()) {
		return nil, fmt.Errorf("NewFromTriplets: %w", ErrAsymmetry)
	}

	return m, nil
}

// NewFromCSC assembles a matrix from a full-storage compressed-column triple.
// colptr must have n+1 non-decreasing offsets starting at 0 and ending at
// len(rowind) == len(values).
func NewFromCSC(n int, colptr, rowind []int, values []float64, opts ...matrix.Option) (*Matrix, error) {
	if n < 0 || len(colptr) != n+1 || colptr[0] != 0 || colptr[n] != len(rowind) || len(rowind) != len(values) {
		return nil, fmt.Errorf("NewFromCSC: %w", ErrInvalidDimension)
	}
	ts := make([]Triplet, 0, len(values))
	var j, p int
	for j = 0; j < n; j++ {
		if colptr[j+1] < colptr[j] {
			return nil, fmt.Errorf("NewFromCSC: colptr[%d]: %w", j+1, ErrInvalidDimension)
		}
		for p = colptr[j]; p < colptr[j+1]; p++ {
			ts = append(ts, Triplet{Row: rowind[p], Col: j, Val: values[p]})
		}
	}

	return NewFromTriplets(n, ts, opts...)
}

// NewFromMatrix converts a square dense matrix.Matrix, keeping its nonzeros.
// The source must be finite and symmetric within the options epsilon.
// Errors: ErrNilMatrix, ErrInvalidDimension, ErrNaNInf, ErrAsymmetry.
func NewFromMatrix(src matrix.Matrix, opts ...matrix.Option) (*Matrix, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	if err := matrix.ValidateSquare(src); err != nil {
		return nil, fmt.Errorf("NewFromMatrix: %w", ErrInvalidDimension)
	}
	if err := matrix.ValidateFinite(src); err != nil {
		return nil, fmt.Errorf("NewFromMatrix: %w", ErrNaNInf)
	}
	o := matrix.NewOptions(opts...)
	if err := matrix.ValidateSymmetric(src, o.Epsilon()); err != nil {
		return nil, fmt.Errorf("NewFromMatrix: %w", ErrAsymmetry)
	}
	var (
		n    = src.Rows()
		ts   []Triplet
		i, j int
		v    float64
		err  error
	)
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			if v, err = src.At(i, j); err != nil {
				return nil, fmt.Errorf("NewFromMatrix: %w", err)
			}
			if v != 0 {
				ts = append(ts, Triplet{Row: i, Col: j, Val: v})
			}
		}
	}

	return NewFromTriplets(n, ts, opts...)
}

// compactColumn sorts a column by row, sums duplicates and drops zero sums.
func compactColumn(col []Entry) []Entry {
	if len(col) == 0 {
		return nil
	}
	sort.SliceStable(col, func(a, b int) bool { return col[a].Row < col[b].Row })
	out := col[:0]
	for _, e := range col {
		if n := len(out); n > 0 && out[n-1].Row == e.Row {
			out[n-1].Val += e.Val
			continue
		}
		out = append(out, e)
	}
	kept := out[:0]
	for _, e := range out {
		if e.Val != 0 {
			kept = append(kept, e)
		}
	}

	return kept
}

// Dim returns the current dimension n.
func (m *Matrix) Dim() int { return len(m.cols) }

// NNZ returns the number of stored entries (both triangles).
func (m *Matrix) NNZ() int { return m.nnz }

// Revision returns the structural revision counter. It changes whenever the
// sparsity pattern changes.
func (m *Matrix) Revision() uint64 { return m.rev }

// find returns the position of row i in column j, or -1.
func (m *Matrix) find(i, j int) int {
	col := m.cols[j]
	k := sort.Search(len(col), func(k int) bool { return col[k].Row >= i })
	if k < len(col) && col[k].Row == i {
		return k
	}

	return -1
}

// At returns A[i,j] (zero when not stored).
// Errors: ErrIndexOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	n := m.Dim()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	if k := m.find(i, j); k >= 0 {
		return m.cols[j][k].Val, nil
	}

	return 0, nil
}

// Diag returns A[j,j] or 0 when j is out of range or the entry is not stored.
func (m *Matrix) Diag(j int) float64 {
	if j < 0 || j >= m.Dim() {
		return 0
	}
	if k := m.find(j, j); k >= 0 {
		return m.cols[j][k].Val
	}

	return 0
}

// Col returns the stored entries of column j sorted by row. The slice is
// owned by the matrix and must not be modified or retained across eliminations.
func (m *Matrix) Col(j int) []Entry {
	if j < 0 || j >= m.Dim() {
		return nil
	}

	return m.cols[j]
}

// Neighbors returns the rows of column j other than j itself, i.e. the
// variables coupled to j through a nonzero coefficient.
func (m *Matrix) Neighbors(j int) []int {
	col := m.Col(j)
	out := make([]int, 0, len(col))
	for _, e := range col {
		if e.Row != j {
			out = append(out, e.Row)
		}
	}

	return out
}

// MulVec computes dst = A·x. dst and x must have length Dim() and must not alias.
// Complexity: O(nnz).
func (m *Matrix) MulVec(dst, x []float64) error {
	n := m.Dim()
	if len(dst) != n || len(x) != n {
		return fmt.Errorf("MulVec: %w", ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] = 0
	}
	var (
		j  int
		xj float64
		e  Entry
	)
	for j = 0; j < n; j++ {
		xj = x[j]
		if xj == 0 {
			continue
		}
		for _, e = range m.cols[j] {
			dst[e.Row] += e.Val * xj
		}
	}

	return nil
}

// Clone returns a deep copy with an independent arena.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{cols: make([][]Entry, len(m.cols)), nnz: m.nnz, rev: m.rev}
	for j, col := range m.cols {
		if len(col) > 0 {
			cp.cols[j] = append([]Entry(nil), col...)
		}
	}

	return cp
}

// IsSymmetric reports whether |A[i,j] - A[j,i]| ≤ eps for every stored entry.
// Complexity: O(nnz log nnz(col)).
func (m *Matrix) IsSymmetric(eps float64) bool {
	var (
		j   int
		e   Entry
		aji float64
	)
	for j = range m.cols {
		for _, e = range m.cols[j] {
			if e.Row == j {
				continue
			}
			aji = 0
			if k := m.find(j, e.Row); k >= 0 {
				aji = m.cols[e.Row][k].Val
			}
			if math.Abs(e.Val-aji) > eps {
				return false
			}
		}
	}

	return true
}

// CSC exports the full-storage compressed-column triple. The returned slices
// are freshly allocated.
func (m *Matrix) CSC() (colptr, rowind []int, values []float64) {
	n := m.Dim()
	colptr = make([]int, n+1)
	rowind = make([]int, 0, m.nnz)
	values = make([]float64, 0, m.nnz)
	for j, col := range m.cols {
		for _, e := range col {
			rowind = append(rowind, e.Row)
			values = append(values, e.Val)
		}
		colptr[j+1] = len(rowind)
	}

	return colptr, rowind, values
}

// ToDense materializes the matrix as a *matrix.Dense. Dim() must be > 0.
func (m *Matrix) ToDense() (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.Dim(), m.Dim())
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	for j, col := range m.cols {
		for _, e := range col {
			_ = d.Set(e.Row, j, e.Val)
		}
	}

	return d, nil
}
