package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/misolve/sparse"
)

func TestIndexMap_Remove(t *testing.T) {
	im := sparse.NewIndexMap(5)
	require.Equal(t, 5, im.Len())

	require.NoError(t, im.Remove(1)) // drops original 1
	require.NoError(t, im.Remove(2)) // reduced 2 is original 3

	assert.Equal(t, 3, im.Len())
	assert.Equal(t, 0, im.Original(0))
	assert.Equal(t, 2, im.Original(1))
	assert.Equal(t, 4, im.Original(2))

	for o, want := range map[int]int{0: 0, 2: 1, 4: 2} {
		r, ok := im.Reduced(o)
		require.True(t, ok, "original %d", o)
		assert.Equal(t, want, r)
	}
	for _, o := range []int{1, 3, -1, 5} {
		_, ok := im.Reduced(o)
		assert.False(t, ok, "original %d", o)
	}

	require.ErrorIs(t, im.Remove(3), sparse.ErrIndexOutOfRange)
}

func TestIndexMap_RemoveSet(t *testing.T) {
	im := sparse.NewIndexMap(6)
	require.NoError(t, im.RemoveSet([]int{4, 0, 2}))
	assert.Equal(t, 3, im.Len())
	assert.Equal(t, []int{1, 3, 5}, []int{im.Original(0), im.Original(1), im.Original(2)})

	r, ok := im.Reduced(5)
	require.True(t, ok)
	assert.Equal(t, 2, r)

	require.ErrorIs(t, im.RemoveSet([]int{0, 0}), sparse.ErrDuplicateIndex)
	require.ErrorIs(t, im.RemoveSet([]int{3}), sparse.ErrIndexOutOfRange)
	assert.Equal(t, 3, im.Len(), "failed RemoveSet must not change the map")
}

func TestIndexMap_Scatter(t *testing.T) {
	im := sparse.NewIndexMap(4)
	require.NoError(t, im.Remove(2))

	x := []float64{-1, -1, 7, -1}
	require.NoError(t, im.Scatter(x, []float64{10, 11, 13}))
	assert.Equal(t, []float64{10, 11, 7, 13}, x)

	require.ErrorIs(t, im.Scatter(x, []float64{1}), sparse.ErrDimensionMismatch)
}

// Tracking a sequence of eliminations through both the matrix and the map
// keeps every surviving value attached to its original variable.
func TestIndexMap_FollowsElimination(t *testing.T) {
	const n = 6
	a := tridiag(t, n, 4, 1)
	im := sparse.NewIndexMap(n)
	x := []float64{0, 1, 2, 3, 4, 5}
	rhs := make([]float64, n)

	var err error
	for _, orig := range []int{3, 0, 5} {
		r, ok := im.Reduced(orig)
		require.True(t, ok)
		x, rhs, err = a.FixAndEliminate(r, 0, x, rhs)
		require.NoError(t, err)
		require.NoError(t, im.Remove(r))
	}
	for r := 0; r < im.Len(); r++ {
		assert.Equal(t, float64(im.Original(r)), x[r])
	}
}
