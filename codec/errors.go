package codec

import "errors"

var (
	// ErrSymbolOutOfRange indicates Encode was called with i outside
	// [0, M), M being the symbol count the codec was built for.
	ErrSymbolOutOfRange = errors.New("codec: symbol index out of range")
	// ErrGraphOrderMismatch indicates Decode received a graph whose
	// order does not match the codec's published N.
	ErrGraphOrderMismatch = errors.New("codec: graph order does not match the published N")
)
