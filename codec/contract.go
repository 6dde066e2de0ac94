package codec

import (
	"time"

	"github.com/katalvlaran/graphcodec/bitgraph"
)

// Contract is the uniform codec capability set: publish a fixed graph
// order, encode a symbol into a graph of that order, and decode a
// received graph back into a symbol index within a wall-clock budget.
type Contract interface {
	// GraphSize returns N, the order of every published graph.
	GraphSize() int
	// Encode returns the i-th codebook graph after vertex blowup.
	Encode(i int) (*bitgraph.Graph, error)
	// Decode identifies a received graph, spending at most budget of
	// wall-clock time across its internal trials. Returns
	// ErrGraphOrderMismatch if g's order does not match GraphSize().
	Decode(g *bitgraph.Graph, budget time.Duration) (int, error)
}
