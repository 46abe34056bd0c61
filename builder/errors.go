// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewUnknowns indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewUnknowns = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRange indicates an interval with lo > hi or non-finite bounds.
var ErrInvalidRange = errors.New("builder: invalid range")

// ErrConstructFailed indicates Build could not run a constructor (nil entry).
var ErrConstructFailed = errors.New("builder: construction failed")
