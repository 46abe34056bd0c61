package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misolve/matrix"
	"github.com/katalvlaran/misolve/sparse"
)

// tridiag builds the n×n matrix with d on the diagonal and o beside it.
func tridiag(t testing.TB, n int, d, o float64) *sparse.Matrix {
	t.Helper()
	ts := make([]sparse.Triplet, 0, 3*n)
	for i := 0; i < n; i++ {
		ts = append(ts, sparse.Triplet{Row: i, Col: i, Val: d})
		if i+1 < n {
			ts = append(ts,
				sparse.Triplet{Row: i, Col: i + 1, Val: o},
				sparse.Triplet{Row: i + 1, Col: i, Val: o},
			)
		}
	}
	m, err := sparse.NewFromTriplets(n, ts)
	require.NoError(t, err)

	return m
}

func mustAt(t *testing.T, m *sparse.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestNew_Dimensions(t *testing.T) {
	m, err := sparse.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Dim())

	_, err = sparse.New(-1)
	require.ErrorIs(t, err, sparse.ErrInvalidDimension)

	id, err := sparse.Identity(3)
	require.NoError(t, err)
	assert.Equal(t, 3, id.NNZ())
	assert.Equal(t, 1.0, id.Diag(2))
}

func TestNewFromTriplets_SumsAndDrops(t *testing.T) {
	m, err := sparse.NewFromTriplets(2, []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 0, Val: 2},
		{Row: 1, Col: 0, Val: 1},
		{Row: 1, Col: 0, Val: -1}, // cancels out
		{Row: 0, Col: 1, Val: 0},
		{Row: 1, Col: 1, Val: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ())
	assert.Equal(t, 3.0, mustAt(t, m, 0, 0))
	assert.Equal(t, 0.0, mustAt(t, m, 1, 0))
	assert.Empty(t, m.Neighbors(0))
}

func TestNewFromTriplets_Errors(t *testing.T) {
	tests := []struct {
		name string
		ts   []sparse.Triplet
		want error
	}{
		{"row out of range", []sparse.Triplet{{Row: 2, Col: 0, Val: 1}}, sparse.ErrIndexOutOfRange},
		{"negative col", []sparse.Triplet{{Row: 0, Col: -1, Val: 1}}, sparse.ErrIndexOutOfRange},
		{"asymmetric", []sparse.Triplet{{Row: 1, Col: 0, Val: 1}}, sparse.ErrAsymmetry},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewFromTriplets(2, tc.ts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewFromTriplets_EpsilonToleratesNoise(t *testing.T) {
	ts := []sparse.Triplet{
		{Row: 0, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: 1},
		{Row: 0, Col: 1, Val: 0.5}, {Row: 1, Col: 0, Val: 0.5 + 1e-12},
	}
	_, err := sparse.NewFromTriplets(2, ts)
	require.NoError(t, err)

	_, err = sparse.NewFromTriplets(2, ts, matrix.WithEpsilon(1e-15))
	require.ErrorIs(t, err, sparse.ErrAsymmetry)
}

func TestNewFromCSC_RoundTrip(t *testing.T) {
	a := tridiag(t, 4, 4, -1)
	colptr, rowind, values := a.CSC()
	assert.Equal(t, []int{0, 2, 5, 8, 10}, colptr)

	b, err := sparse.NewFromCSC(4, colptr, rowind, values)
	require.NoError(t, err)
	c2, r2, v2 := b.CSC()
	assert.Equal(t, colptr, c2)
	assert.Equal(t, rowind, r2)
	assert.Equal(t, values, v2)

	_, err = sparse.NewFromCSC(4, colptr[:4], rowind, values)
	require.ErrorIs(t, err, sparse.ErrInvalidDimension)
}

func TestNewFromMatrix_DenseInterop(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{
		{4, 1, 0},
		{1, 4, 1},
		{0, 1, 4},
	})
	require.NoError(t, err)

	m, err := sparse.NewFromMatrix(d)
	require.NoError(t, err)
	assert.Equal(t, 7, m.NNZ())
	assert.Equal(t, []int{0, 2}, m.Neighbors(1))

	back, err := m.ToDense()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := d.At(i, j)
			got, _ := back.At(i, j)
			assert.Equal(t, want, got, "(%d,%d)", i, j)
		}
	}

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = sparse.NewFromMatrix(rect)
	require.ErrorIs(t, err, sparse.ErrInvalidDimension)

	_, err = sparse.NewFromMatrix(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)

	skew, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {0, 1}})
	require.NoError(t, err)
	_, err = sparse.NewFromMatrix(skew)
	require.ErrorIs(t, err, sparse.ErrAsymmetry)
}

func TestAt_OutOfRange(t *testing.T) {
	m := tridiag(t, 3, 2, 1)
	_, err := m.At(3, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
	assert.Nil(t, m.Col(5))
	assert.Equal(t, 0.0, m.Diag(-1))
}

func TestMulVec(t *testing.T) {
	m := tridiag(t, 3, 4, 1)
	dst := make([]float64, 3)
	require.NoError(t, m.MulVec(dst, []float64{1, 1, 1}))
	assert.Equal(t, []float64{5, 6, 5}, dst)

	require.ErrorIs(t, m.MulVec(dst[:2], []float64{1, 1, 1}), sparse.ErrDimensionMismatch)
}

func TestClone_Independent(t *testing.T) {
	m := tridiag(t, 3, 4, 1)
	c := m.Clone()
	_, _, err := c.FixAndEliminate(0, 1, make([]float64, 3), make([]float64, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, 2, c.Dim())
	assert.NotEqual(t, m.Revision(), c.Revision())
}

func TestResidualNorm(t *testing.T) {
	m := tridiag(t, 3, 4, 1)
	r, err := sparse.ResidualNorm(m, []float64{1, 1, 1}, []float64{5, 6, 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)

	r, err = sparse.ResidualNorm(m, []float64{1, 1, 1}, []float64{5, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r, 1e-15)

	_, err = sparse.ResidualNorm(nil, nil, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.ResidualNorm(m, []float64{1, 1, 1}, []float64{5})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}
