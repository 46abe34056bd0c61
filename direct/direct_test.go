package direct_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misolve/direct"
)

// spd3 is [[4,1,0],[1,4,1],[0,1,4]] in full-storage CSC.
var (
	spd3Colptr = []int{0, 2, 5, 7}
	spd3Rowind = []int{0, 1, 0, 1, 2, 1, 2}
	spd3Values = []float64{4, 1, 1, 4, 1, 1, 4}
)

var backends = []direct.Backend{direct.Cholesky, direct.LU, direct.QR}

func TestSolve_AllBackends(t *testing.T) {
	for _, be := range backends {
		t.Run(be.String(), func(t *testing.T) {
			s, err := direct.New(be)
			require.NoError(t, err)
			assert.Equal(t, 0, s.Dim())

			require.NoError(t, s.Factorize(spd3Colptr, spd3Rowind, spd3Values))
			assert.Equal(t, 3, s.Dim())

			x := make([]float64, 3)
			require.NoError(t, s.Solve(x, []float64{5, 6, 5}))
			assert.InDeltaSlice(t, []float64{1, 1, 1}, x, 1e-12)

			// x and b may alias.
			b := []float64{4, 1, 0}
			require.NoError(t, s.Solve(b, b))
			assert.InDeltaSlice(t, []float64{1, 0, 0}, b, 1e-12)
		})
	}
}

func TestRefactorize(t *testing.T) {
	for _, be := range backends {
		t.Run(be.String(), func(t *testing.T) {
			s, err := direct.New(be)
			require.NoError(t, err)
			require.ErrorIs(t, s.Refactorize(spd3Colptr, spd3Rowind, spd3Values), direct.ErrNotFactorized)

			require.NoError(t, s.Factorize(spd3Colptr, spd3Rowind, spd3Values))

			scaled := make([]float64, len(spd3Values))
			for k, v := range spd3Values {
				scaled[k] = 2 * v
			}
			require.NoError(t, s.Refactorize(spd3Colptr, spd3Rowind, scaled))
			x := make([]float64, 3)
			require.NoError(t, s.Solve(x, []float64{10, 12, 10}))
			assert.InDeltaSlice(t, []float64{1, 1, 1}, x, 1e-12)

			// Dropping the (0,1) coupling changes the pattern.
			err = s.Refactorize([]int{0, 1, 3, 5}, []int{0, 1, 2, 1, 2}, []float64{4, 4, 1, 1, 4})
			require.ErrorIs(t, err, direct.ErrPatternChanged)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	s, err := direct.New(direct.Cholesky)
	require.NoError(t, err)
	require.ErrorIs(t, s.Solve(nil, nil), direct.ErrNotFactorized)

	require.NoError(t, s.Factorize(spd3Colptr, spd3Rowind, spd3Values))
	require.ErrorIs(t, s.Solve(make([]float64, 2), make([]float64, 3)), direct.ErrDimensionMismatch)

	_, err = direct.New(direct.Backend(42))
	require.ErrorIs(t, err, direct.ErrUnknownBackend)
	assert.Equal(t, "backend(42)", direct.Backend(42).String())
}

func TestFactorize_InvalidLayout(t *testing.T) {
	s, err := direct.New(direct.LU)
	require.NoError(t, err)

	tests := []struct {
		name   string
		colptr []int
		rowind []int
		values []float64
	}{
		{"empty colptr", nil, nil, nil},
		{"colptr not starting at zero", []int{1, 1}, nil, nil},
		{"length mismatch", []int{0, 1}, []int{0}, nil},
		{"decreasing colptr", []int{0, 2, 1, 2}, []int{0, 1}, []float64{1, 1}},
		{"row out of range", []int{0, 1}, []int{1}, []float64{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, s.Factorize(tc.colptr, tc.rowind, tc.values), direct.ErrInvalidLayout)
		})
	}
}

func TestFactorize_Failures(t *testing.T) {
	// Indefinite: Cholesky rejects it.
	chol, err := direct.New(direct.Cholesky)
	require.NoError(t, err)
	err = chol.Factorize([]int{0, 2, 4}, []int{0, 1, 0, 1}, []float64{1, 2, 2, 1})
	require.ErrorIs(t, err, direct.ErrFactorization)
	require.ErrorIs(t, chol.Solve(make([]float64, 2), make([]float64, 2)), direct.ErrNotFactorized)

	// Singular: LU factorizes but cannot solve.
	lu, err := direct.New(direct.LU)
	require.NoError(t, err)
	require.NoError(t, lu.Factorize([]int{0, 2, 4}, []int{0, 1, 0, 1}, []float64{1, 1, 1, 1}))
	require.ErrorIs(t, lu.Solve(make([]float64, 2), []float64{1, 2}), direct.ErrFactorization)
}

func TestEmptySystem(t *testing.T) {
	s, err := direct.New(direct.Cholesky)
	require.NoError(t, err)
	require.NoError(t, s.Factorize([]int{0}, nil, nil))
	assert.Equal(t, 0, s.Dim())
	require.NoError(t, s.Solve(nil, nil))
	require.NoError(t, s.Refactorize([]int{0}, nil, nil))
}

func TestCompare(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	ref := []float64{1, 1, 1}

	out, err := direct.Compare(
		[]direct.Backend{direct.LU, direct.QR, direct.Backend(9)},
		spd3Colptr, spd3Rowind, spd3Values, []float64{5, 6, 5}, ref, logger,
	)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, c := range out[:2] {
		require.NoError(t, c.Err)
		assert.InDelta(t, 0, c.Diff, 1e-12)
	}
	require.ErrorIs(t, out[2].Err, direct.ErrUnknownBackend)
	assert.Contains(t, buf.String(), "lu factor took")
	assert.Contains(t, buf.String(), "qr difference in result")
	assert.Contains(t, buf.String(), "comparison failed")

	_, err = direct.Compare(nil, spd3Colptr, spd3Rowind, spd3Values, []float64{5, 6, 5}, ref[:2], nil)
	require.ErrorIs(t, err, direct.ErrDimensionMismatch)
}
