package bitgraph

import (
	"sort"
	"strings"
)

// Graph is a simple undirected graph of order N with a symmetric boolean
// adjacency matrix, stored flat in row-major order.
//
// Invariants:
//   - edges[i*n+j] == edges[j*n+i] for all i, j
//   - edges[i*n+i] == false for all i (no self-loops)
type Graph struct {
	n     int
	edges []bool // flat n*n, row-major
}

// NewGraph allocates an edgeless Graph of the given order.
// Stage 1 (Validate): 0 < n ≤ MaxOrder.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(n²) time and memory.
func NewGraph(n int) (*Graph, error) {
	if n <= 0 || n > MaxOrder {
		return nil, ErrInvalidOrder
	}

	return &Graph{n: n, edges: make([]bool, n*n)}, nil
}

// N returns the order of the graph.
func (g *Graph) N() int {
	return g.n
}

// index computes the flat offset for (u, v), validating bounds.
func (g *Graph) index(u, v int) (int, error) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, ErrVertexOutOfRange
	}

	return u*g.n + v, nil
}

// Connect adds the undirected edge (u, v), symmetrically.
// Stage 1 (Validate): bounds, u != v.
// Stage 2 (Execute): set both (u,v) and (v,u).
func (g *Graph) Connect(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}

	iuv, err := g.index(u, v)
	if err != nil {
		return err
	}
	ivu, err := g.index(v, u)
	if err != nil {
		return err
	}

	g.edges[iuv] = true
	g.edges[ivu] = true

	return nil
}

// Has reports whether the edge (u, v) exists. Out-of-range indices report false.
func (g *Graph) Has(u, v int) bool {
	idx, err := g.index(u, v)
	if err != nil {
		return false
	}

	return g.edges[idx]
}

// Serialize returns the canonical upper-triangle bitstring: row-major
// concatenation of edges[i][j] for i<j, i outer.
// Complexity: O(n²) time, O(n²) space.
func (g *Graph) Serialize() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n - 1) / 2)

	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.Has(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// Deserialize parses a canonical upper-triangle bitstring of order n into a
// Graph. Returns ErrSerializedLength if s has the wrong length, or
// ErrSerializedChar if it contains a byte other than '0'/'1'.
// Complexity: O(n²) time, O(n²) space.
func Deserialize(s string, n int) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	want := n * (n - 1) / 2
	if len(s) != want {
		return nil, ErrSerializedLength
	}

	pos := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := s[pos]
			pos++

			switch c {
			case '1':
				if err := g.Connect(i, j); err != nil {
					return nil, err
				}
			case '0':
				// no edge
			default:
				return nil, ErrSerializedChar
			}
		}
	}

	return g, nil
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	cp := make([]bool, len(g.edges))
	copy(cp, g.edges)

	return &Graph{n: g.n, edges: cp}
}

// Degrees returns the degree sequence of g, sorted ascending. Used by
// vf2's pre-filter.
func (g *Graph) Degrees() []int {
	degs := make([]int, g.n)

	for i := 0; i < g.n; i++ {
		d := 0
		for j := 0; j < g.n; j++ {
			if i != j && g.Has(i, j) {
				d++
			}
		}
		degs[i] = d
	}

	sort.Ints(degs)

	return degs
}
