// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Deterministic defaults.
const (
	// DefaultShift is added to every diagonal entry.
	DefaultShift = 0.1
	// DefaultCoupling is the coupling weight when no WeightFn is set.
	DefaultCoupling = 1.0
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn yields the strength of each new coupling (> 0).
	weightFn WeightFn
	// shift is the diagonal regularization (> 0).
	shift float64
}

// newBuilderConfig applies opts in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeightFn(DefaultCoupling),
		shift:    DefaultShift,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
