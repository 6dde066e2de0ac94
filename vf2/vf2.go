package vf2

import (
	"slices"

	"github.com/katalvlaran/graphcodec/bitgraph"
)

// Isomorphic reports whether g1 and g2 are isomorphic. It pre-filters on
// vertex count and sorted degree sequence before falling back to full
// VF2 backtracking, the same DegreeChecker/Vf2Checker split the
// reference implementation uses.
//
// Complexity: O(n!) worst case, but n ≤ 6 throughout this codec keeps it
// sub-millisecond.
func Isomorphic(g1, g2 *bitgraph.Graph) bool {
	if g1.N() != g2.N() {
		return false
	}

	if !slices.Equal(g1.Degrees(), g2.Degrees()) {
		return false
	}

	n := g1.N()
	m := newMatcher(g1, g2, n)

	return m.search(0)
}

// matcher holds the mutable state of one VF2 backtracking search: the
// partial bijection in both directions and, for each graph, the set of
// vertices adjacent to the partial match so far.
type matcher struct {
	n       int
	g1, g2  *bitgraph.Graph
	map12   []int // map12[v1] == v2, or -1 if v1 is unmapped
	map21   []int // map21[v2] == v1, or -1 if v2 is unmapped
	neighs1 []bool
	neighs2 []bool
}

func newMatcher(g1, g2 *bitgraph.Graph, n int) *matcher {
	m := &matcher{
		n:       n,
		g1:      g1,
		g2:      g2,
		map12:   make([]int, n),
		map21:   make([]int, n),
		neighs1: make([]bool, n),
		neighs2: make([]bool, n),
	}

	for i := 0; i < n; i++ {
		m.map12[i] = -1
		m.map21[i] = -1
	}

	return m
}

// search extends the partial match one vertex at a time. depth is both
// the number of vertices mapped so far and the recursion depth; n ≤ 6
// keeps the stack trivially shallow.
func (m *matcher) search(depth int) bool {
	if depth == m.n {
		return true
	}

	candidates1, v2 := m.generateCandidates()

	for _, v1 := range candidates1 {
		if !m.syntacticallyFeasible(v1, v2) {
			continue
		}

		m.map12[v1] = v2
		m.map21[v2] = v1
		undo1 := m.updateNeighs(m.g1, m.neighs1, v1)
		undo2 := m.updateNeighs(m.g2, m.neighs2, v2)

		if m.search(depth + 1) {
			return true
		}

		m.map12[v1] = -1
		m.map21[v2] = -1
		m.restoreNeighs(m.neighs1, undo1)
		m.restoreNeighs(m.neighs2, undo2)
	}

	return false
}

// generateCandidates picks the next (graph1 candidate set, graph2
// target vertex) pair, the standard VF2 frontier rule:
//  1. unmapped vertices adjacent to the partial match, on each side;
//  2. if either side's frontier is empty (disconnected graph), fall
//     back to all remaining unmapped vertices, with v2 chosen as the
//     smallest index.
func (m *matcher) generateCandidates() (candidates1 []int, v2 int) {
	for v := 0; v < m.n; v++ {
		if m.neighs1[v] && m.map12[v] == -1 {
			candidates1 = append(candidates1, v)
		}
	}

	v2 = -1
	for v := 0; v < m.n; v++ {
		if m.neighs2[v] && m.map21[v] == -1 {
			v2 = v

			break
		}
	}

	if len(candidates1) > 0 && v2 != -1 {
		return candidates1, v2
	}

	candidates1 = candidates1[:0]
	for v := 0; v < m.n; v++ {
		if m.map12[v] == -1 {
			candidates1 = append(candidates1, v)
		}
	}

	v2 = -1
	for v := 0; v < m.n; v++ {
		if m.map21[v] == -1 {
			v2 = v

			break
		}
	}

	return candidates1, v2
}

// syntacticallyFeasible checks VF2's standard feasibility triple:
// (a) equal neighbor counts and bijection-consistency for already-mapped
// neighbors on both sides; (b) equal counts of mapped-frontier neighbors
// ("inside"); (c) equal counts of neighbors outside the frontier
// ("outside").
func (m *matcher) syntacticallyFeasible(v1, v2 int) bool {
	deg1, deg2 := 0, 0
	for u := 0; u < m.n; u++ {
		if m.g1.Has(v1, u) {
			deg1++
		}
		if m.g2.Has(v2, u) {
			deg2++
		}
	}
	if deg1 != deg2 {
		return false
	}

	for u := 0; u < m.n; u++ {
		if m.g1.Has(v1, u) {
			if img := m.map12[u]; img != -1 && !m.g2.Has(v2, img) {
				return false
			}
		}
	}
	for u := 0; u < m.n; u++ {
		if m.g2.Has(v2, u) {
			if img := m.map21[u]; img != -1 && !m.g1.Has(v1, img) {
				return false
			}
		}
	}

	inside1, inside2 := 0, 0
	outside1, outside2 := 0, 0
	for u := 0; u < m.n; u++ {
		if m.g1.Has(v1, u) {
			if m.neighs1[u] && m.map12[u] != -1 {
				inside1++
			}
			if !m.neighs1[u] {
				outside1++
			}
		}
		if m.g2.Has(v2, u) {
			if m.neighs2[u] && m.map21[u] != -1 {
				inside2++
			}
			if !m.neighs2[u] {
				outside2++
			}
		}
	}

	return inside1 == inside2 && outside1 == outside2
}

// updateNeighs marks v, then every neighbor of v, as part of the
// frontier (if not already), returning the list of indices this call
// flipped so the caller can undo it on backtrack.
func (m *matcher) updateNeighs(g *bitgraph.Graph, neighs []bool, v int) []int {
	var touched []int

	mark := func(x int) {
		if !neighs[x] {
			neighs[x] = true
			touched = append(touched, x)
		}
	}

	mark(v)
	for u := 0; u < len(neighs); u++ {
		if g.Has(v, u) {
			mark(u)
		}
	}

	return touched
}

// restoreNeighs undoes exactly the flips updateNeighs recorded.
func (m *matcher) restoreNeighs(neighs []bool, touched []int) {
	for _, v := range touched {
		neighs[v] = false
	}
}
