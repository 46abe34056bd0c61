package rounding

import (
	"fmt"
	"math"
	"sort"
)

// SelectBest scans candidates (variable ids, Consumed entries skipped) and
// returns the position of the one whose value(id) has the smallest rounding
// error. Ties keep the first candidate in scan order. ok is false when every
// slot is consumed.
// Complexity: O(len(candidates)).
func SelectBest(candidates []int, value func(id int) float64) (pos int, ok bool) {
	var (
		best = math.Inf(1)
		err  float64
	)
	pos = -1
	for k, id := range candidates {
		if id == Consumed {
			continue
		}
		err = Error(value(id))
		if err < best {
			best, pos = err, k
		}
	}

	return pos, pos >= 0
}

// Candidate is one (id, rounding error) pair offered to a RoundingSet.
type Candidate struct {
	ID  int
	Err float64
}

// RoundingSet selects a batch of candidates to fix in one pass.
//
// Selection rule, with best = minimum error seen:
//   - the best candidate (first one on ties) is always selected;
//   - any other candidate is selected iff Err − best < threshold.
//
// Errors lie in [0, 0.5], so threshold 0 yields exactly the best candidate and
// any threshold above 0.5 yields every candidate.
type RoundingSet struct {
	threshold float64
	items     []Candidate
}

// NewRoundingSet returns an empty set with the given threshold.
// Errors: ErrBadThreshold when threshold is NaN or outside [0, 1].
func NewRoundingSet(threshold float64) (*RoundingSet, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("NewRoundingSet(%g): %w", threshold, ErrBadThreshold)
	}

	return &RoundingSet{threshold: threshold}, nil
}

// Threshold returns the configured threshold.
func (s *RoundingSet) Threshold() float64 { return s.threshold }

// Add offers a candidate.
func (s *RoundingSet) Add(id int, err float64) {
	s.items = append(s.items, Candidate{ID: id, Err: err})
}

// Len returns the number of offered candidates.
func (s *RoundingSet) Len() int { return len(s.items) }

// Reset clears the offered candidates and keeps the threshold.
func (s *RoundingSet) Reset() { s.items = s.items[:0] }

// Selected returns the chosen candidates ordered by ascending error; equal
// errors keep insertion order, so the best candidate is always first.
// Returns nil when nothing was offered.
// Complexity: O(k log k).
func (s *RoundingSet) Selected() []Candidate {
	if len(s.items) == 0 {
		return nil
	}
	bestPos := 0
	for k := 1; k < len(s.items); k++ {
		if s.items[k].Err < s.items[bestPos].Err {
			bestPos = k
		}
	}
	best := s.items[bestPos].Err

	out := make([]Candidate, 0, len(s.items))
	out = append(out, s.items[bestPos])
	for k, c := range s.items {
		if k != bestPos && c.Err-best < s.threshold {
			out = append(out, c)
		}
	}
	rest := out[1:]
	sort.SliceStable(rest, func(a, b int) bool { return rest[a].Err < rest[b].Err })

	return out
}

// IDs returns the ids of Selected in the same order.
func (s *RoundingSet) IDs() []int {
	sel := s.Selected()
	ids := make([]int, len(sel))
	for k, c := range sel {
		ids[k] = c.ID
	}

	return ids
}
