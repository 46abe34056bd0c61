package rounding

import "errors"

// ErrBadThreshold indicates a batch threshold that is NaN or outside [0, 1].
var ErrBadThreshold = errors.New("rounding: threshold must be in [0, 1]")
