package rounding

import "math"

// Consumed marks a candidate slot that has already been fixed and must be skipped.
const Consumed = -1

// Round rounds v to the nearest integer, halves away from zero, by offsetting
// ±0.5 and truncating: floor(v+0.5) for v ≥ 0 and ceil(v−0.5) for v < 0.
//
//	Round(2.5)  ==  3
//	Round(-2.5) == -3
//	Round(-2.4) == -2
//
// Matches the truncating int(v±0.5) rule bit for bit, including inputs just
// below a half where floor(v+0.5) already rounds up.
func Round(v float64) float64 {
	if v >= 0 {
		return math.Floor(v + 0.5)
	}

	return math.Ceil(v - 0.5)
}

// Error returns the rounding error |Round(v) − v|, in [0, 0.5].
func Error(v float64) float64 {
	return math.Abs(Round(v) - v)
}
