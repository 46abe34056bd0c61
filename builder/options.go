// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the coupling-strength generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithShift sets the diagonal regularization. Panics unless shift is finite
// and positive, since a zero shift leaves pure Laplacians singular.
func WithShift(shift float64) BuilderOption {
	if !(shift > 0) || math.IsInf(shift, 0) {
		panic("builder: WithShift(shift<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.shift = shift
	}
}
