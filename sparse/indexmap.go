package sparse

import (
	"fmt"
	"sort"
)

// IndexMap is a bidirectional map between reduced positions (the numbering of
// the shrinking system) and original positions (the caller's numbering).
// Every removal updates both directions before returning, so the map is never
// observed half-updated.
type IndexMap struct {
	toOrig []int // reduced → original
	toRed  []int // original → reduced, -1 once removed
}

// NewIndexMap returns the identity map over n variables.
func NewIndexMap(n int) *IndexMap {
	im := &IndexMap{toOrig: make([]int, n), toRed: make([]int, n)}
	for k := 0; k < n; k++ {
		im.toOrig[k] = k
		im.toRed[k] = k
	}

	return im
}

// Len returns the number of variables still present in the reduced system.
func (im *IndexMap) Len() int { return len(im.toOrig) }

// Original maps a reduced position to the caller's index.
func (im *IndexMap) Original(r int) int { return im.toOrig[r] }

// Reduced maps an original index to its current reduced position.
// ok is false if the variable has been removed or o is out of range.
func (im *IndexMap) Reduced(o int) (int, bool) {
	if o < 0 || o >= len(im.toRed) || im.toRed[o] < 0 {
		return -1, false
	}

	return im.toRed[o], true
}

// Remove drops reduced position r; positions above r shift down by one.
// Errors: ErrIndexOutOfRange.
// Complexity: O(Len()).
func (im *IndexMap) Remove(r int) error {
	if r < 0 || r >= len(im.toOrig) {
		return fmt.Errorf("IndexMap.Remove(%d): %w", r, ErrIndexOutOfRange)
	}
	im.toRed[im.toOrig[r]] = -1
	im.toOrig = append(im.toOrig[:r], im.toOrig[r+1:]...)
	for k := r; k < len(im.toOrig); k++ {
		im.toRed[im.toOrig[k]] = k
	}

	return nil
}

// RemoveSet drops several reduced positions at once, mirroring EliminateSet.
// Errors: ErrIndexOutOfRange, ErrDuplicateIndex; on error the map is unchanged.
func (im *IndexMap) RemoveSet(rs []int) error {
	sorted := append([]int(nil), rs...)
	sort.Ints(sorted)
	for k, r := range sorted {
		if r < 0 || r >= len(im.toOrig) {
			return fmt.Errorf("IndexMap.RemoveSet(%d): %w", r, ErrIndexOutOfRange)
		}
		if k > 0 && sorted[k-1] == r {
			return fmt.Errorf("IndexMap.RemoveSet(%d): %w", r, ErrDuplicateIndex)
		}
	}
	kept := im.toOrig[:0]
	next := 0
	for r, o := range im.toOrig {
		if next < len(sorted) && sorted[next] == r {
			im.toRed[o] = -1
			next++
			continue
		}
		im.toRed[o] = len(kept)
		kept = append(kept, o)
	}
	im.toOrig = kept

	return nil
}

// Scatter writes the reduced vector xr back into x at the original positions.
// len(xr) must equal Len().
func (im *IndexMap) Scatter(x, xr []float64) error {
	if len(xr) != len(im.toOrig) {
		return fmt.Errorf("IndexMap.Scatter: %w", ErrDimensionMismatch)
	}
	for r, o := range im.toOrig {
		x[o] = xr[r]
	}

	return nil
}
