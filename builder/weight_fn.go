// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn yields the strength of one coupling. Implementations must return
// a finite positive value and must not panic on a nil rng.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics unless value is finite and positive.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). With a nil rng it yields
// the midpoint so deterministic constructors stay deterministic.
// Panics unless 0 < min ≤ max < +Inf.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min + (max-min)/2
		}

		return min + rng.Float64()*(max-min)
	}
}

// WithConstantWeight sets every coupling to w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws couplings from U[min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
