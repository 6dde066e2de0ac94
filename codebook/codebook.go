package codebook

import "github.com/katalvlaran/graphcodec/bitgraph"

// Codebook is an ordered, pairwise non-isomorphic sequence of graphs of
// common order K. Index i is the transmitted symbol.
type Codebook struct {
	K      int
	Graphs []*bitgraph.Graph
}

// Build returns the smallest-order codebook with at least m
// representatives, truncated to exactly the first m.
//
// Stage 1 (Select): try k=4, then k=5, then k=6 — the first table whose
// length is ≥ m wins, the "next larger k" fallback the reference
// encoder also uses when a preferred k lacks enough representatives.
// Stage 2 (Decode): unpack the winning table's bit patterns into graphs.
// Stage 3 (Truncate): keep only the first m, so index i ∈ [0, m) is
// always valid and the confusion matrix (confusion.Build) and vote
// vector (codec.Decode) agree on size.
func Build(m int) (*Codebook, error) {
	if m <= 0 {
		return nil, ErrInvalidCount
	}

	for _, k := range []int{4, 5, 6} {
		bits := tableFor(k)
		if len(bits) < m {
			continue
		}

		return BuildK(k, m)
	}

	return nil, ErrTooManyGraphs
}

// BuildK returns exactly m representatives from the order-k table,
// bypassing the automatic k-selection Build performs. It exists so a
// caller (the codec façade's strategy overrides) can pin k explicitly,
// the way the reference encoder's `bits: Option<usize>` override does.
func BuildK(k, m int) (*Codebook, error) {
	if m <= 0 {
		return nil, ErrInvalidCount
	}

	bits := tableFor(k)
	if bits == nil {
		return nil, ErrUnsupportedK
	}
	if len(bits) < m {
		return nil, ErrTooManyGraphs
	}

	graphs, err := decodeAll(bits[:m], k)
	if err != nil {
		return nil, err
	}

	return &Codebook{K: k, Graphs: graphs}, nil
}

func tableFor(k int) []uint64 {
	switch k {
	case 4:
		return widen(graphs4[:])
	case 5:
		return widen(graphs5[:])
	case 6:
		return widen(graphs6[:])
	default:
		return nil
	}
}

// widen copies a fixed-width integer slice into a []uint64 for uniform
// handling across the three tables' differing element widths.
func widen[T ~uint16 | ~uint32](src []T) []uint64 {
	out := make([]uint64, len(src))
	for i, v := range src {
		out[i] = uint64(v)
	}

	return out
}

// decodeAll turns each bit pattern into a *bitgraph.Graph of order k,
// reading bits least-significant-first over the canonical (i<j, i outer)
// upper-triangle iteration order.
func decodeAll(bits []uint64, k int) ([]*bitgraph.Graph, error) {
	graphs := make([]*bitgraph.Graph, len(bits))

	for gi, pattern := range bits {
		g, err := bitgraph.NewGraph(k)
		if err != nil {
			return nil, err
		}

		idx := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if (pattern>>uint(idx))&1 != 0 {
					if err := g.Connect(i, j); err != nil {
						return nil, err
					}
				}
				idx++
			}
		}

		graphs[gi] = g
	}

	return graphs, nil
}
