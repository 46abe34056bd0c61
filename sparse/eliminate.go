// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// FixAndEliminate fixes variable i to value v and removes it from the system.
//
// Implementation:
//   - Stage 1: rhs[j] -= A[j,i]*v for every j≠i coupled to i.
//   - Stage 2: drop row i from every neighbor column, then drop column i.
//   - Stage 3: renumber rows above i down by one; cut entry i from x and rhs.
//
// x and rhs are edited in place; the returned slices are their shortened
// views (length Dim()-1 before the call). The caller owns the reduced→original
// bookkeeping (see IndexMap.Remove).
//
// Errors: ErrIndexOutOfRange, ErrDimensionMismatch.
// Complexity: O(nnz) time, O(1) extra space.
func (m *Matrix) FixAndEliminate(i int, v float64, x, rhs []float64) ([]float64, []float64, error) {
	n := m.Dim()
	if i < 0 || i >= n {
		return x, rhs, fmt.Errorf("FixAndEliminate(%d): %w", i, ErrIndexOutOfRange)
	}
	if len(x) != n || len(rhs) != n {
		return x, rhs, fmt.Errorf("FixAndEliminate(%d): %w", i, ErrDimensionMismatch)
	}

	// Stage 1 + 2: move the known contribution to the rhs and unlink row i.
	var (
		e Entry
		k int
	)
	for _, e = range m.cols[i] {
		if e.Row == i {
			continue
		}
		rhs[e.Row] -= e.Val * v
		if k = m.find(i, e.Row); k >= 0 {
			m.cols[e.Row] = append(m.cols[e.Row][:k], m.cols[e.Row][k+1:]...)
			m.nnz--
		}
	}
	m.nnz -= len(m.cols[i])
	m.cols = append(m.cols[:i], m.cols[i+1:]...)

	// Stage 3: renumber.
	var j int
	for j = range m.cols {
		col := m.cols[j]
		// rows are sorted, so only the tail above i needs shifting
		k = sort.Search(len(col), func(p int) bool { return col[p].Row > i })
		for ; k < len(col); k++ {
			col[k].Row--
		}
	}
	m.rev++

	x = append(x[:i], x[i+1:]...)
	rhs = append(rhs[:i], rhs[i+1:]...)

	return x, rhs, nil
}

// EliminateSet fixes every idx[k] to vals[k] and removes all of them in one
// rebuild pass. Indices refer to the numbering before the call and need not
// be sorted. Remaining variables keep their relative order.
//
// Errors: ErrIndexOutOfRange, ErrDuplicateIndex, ErrDimensionMismatch.
// Complexity: O(nnz + k log k).
func (m *Matrix) EliminateSet(idx []int, vals []float64, x, rhs []float64) ([]float64, []float64, error) {
	n := m.Dim()
	if len(idx) != len(vals) || len(x) != n || len(rhs) != n {
		return x, rhs, fmt.Errorf("EliminateSet: %w", ErrDimensionMismatch)
	}
	if len(idx) == 0 {
		return x, rhs, nil
	}

	// Stage 1: validate and build the old→new numbering (-1 = removed).
	newIdx := make([]int, n)
	var i, k int
	for _, i = range idx {
		if i < 0 || i >= n {
			return x, rhs, fmt.Errorf("EliminateSet(%d): %w", i, ErrIndexOutOfRange)
		}
		if newIdx[i] == -1 {
			return x, rhs, fmt.Errorf("EliminateSet(%d): %w", i, ErrDuplicateIndex)
		}
		newIdx[i] = -1
	}

	// Stage 2: fold fixed values into rhs (rows of removed variables are dropped below).
	var e Entry
	for k, i = range idx {
		for _, e = range m.cols[i] {
			rhs[e.Row] -= e.Val * vals[k]
		}
	}

	next := 0
	for i = 0; i < n; i++ {
		if newIdx[i] != -1 {
			newIdx[i] = next
			next++
		}
	}

	// Stage 3: rebuild columns and compact vectors.
	cols := make([][]Entry, next)
	nnz := 0
	for i = 0; i < n; i++ {
		if newIdx[i] < 0 {
			continue
		}
		col := m.cols[i][:0:0]
		for _, e = range m.cols[i] {
			if r := newIdx[e.Row]; r >= 0 {
				col = append(col, Entry{Row: r, Val: e.Val})
			}
		}
		cols[newIdx[i]] = col
		nnz += len(col)
		x[newIdx[i]] = x[i]
		rhs[newIdx[i]] = rhs[i]
	}
	m.cols = cols
	m.nnz = nnz
	m.rev++

	return x[:next], rhs[:next], nil
}

// ResidualNorm returns ‖A·x − rhs‖₂.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ResidualNorm(a *Matrix, x, rhs []float64) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if len(rhs) != a.Dim() {
		return 0, fmt.Errorf("ResidualNorm: %w", ErrDimensionMismatch)
	}
	r := make([]float64, a.Dim())
	if err := a.MulVec(r, x); err != nil {
		return 0, fmt.Errorf("ResidualNorm: %w", err)
	}
	floats.Sub(r, rhs)

	return floats.Norm(r, 2), nil
}
