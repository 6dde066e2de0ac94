package codebook

import "errors"

// ErrTooManyGraphs indicates m exceeds the largest table (156, for k=6).
var ErrTooManyGraphs = errors.New("codebook: m exceeds the largest available codebook (156)")

// ErrInvalidCount indicates a non-positive m.
var ErrInvalidCount = errors.New("codebook: m must be positive")

// ErrUnsupportedK indicates a requested order outside {4, 5, 6}.
var ErrUnsupportedK = errors.New("codebook: k must be 4, 5, or 6")
