package strategy

import "errors"

// ErrInvalidM indicates m was not a positive symbol count.
var ErrInvalidM = errors.New("strategy: m must be positive")

// ErrInvalidEpsilon indicates eps fell outside [0.0, 1.0).
var ErrInvalidEpsilon = errors.New("strategy: epsilon must be in [0.0, 1.0)")
