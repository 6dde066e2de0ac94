package confusion

import "errors"

// ErrEmptyCodebook indicates Build was called with no codebook entries.
var ErrEmptyCodebook = errors.New("confusion: codebook must contain at least one graph")
