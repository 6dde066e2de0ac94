package bitgraph

import "errors"

// Sentinel errors for bitgraph construction and access.
var (
	// ErrInvalidOrder indicates a non-positive or over-limit graph order.
	ErrInvalidOrder = errors.New("bitgraph: order out of range")

	// ErrVertexOutOfRange indicates a vertex index outside [0, N).
	ErrVertexOutOfRange = errors.New("bitgraph: vertex index out of range")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("bitgraph: self-loops are not allowed")

	// ErrSerializedLength indicates a serialized bitstring of the wrong length.
	ErrSerializedLength = errors.New("bitgraph: serialized bitstring has the wrong length")

	// ErrSerializedChar indicates a non-binary character in a serialized bitstring.
	ErrSerializedChar = errors.New("bitgraph: serialized bitstring contains a non-binary character")
)

// MaxOrder is the largest graph order a Row128 bitmask can represent.
const MaxOrder = 128
