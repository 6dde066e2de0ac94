package vf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcodec/bitgraph"
	"github.com/katalvlaran/graphcodec/codebook"
	"github.com/katalvlaran/graphcodec/vf2"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *bitgraph.Graph {
	t.Helper()

	g, err := bitgraph.NewGraph(n)
	require.NoError(t, err)

	for _, e := range edges {
		require.NoError(t, g.Connect(e[0], e[1]))
	}

	return g
}

func TestIsomorphicReflexive(t *testing.T) {
	g := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.True(t, vf2.Isomorphic(g, g.Clone()))
}

func TestIsomorphicRelabeling(t *testing.T) {
	// a 4-cycle 0-1-2-3-0 relabeled as 0-2-1-3-0 is still a 4-cycle.
	g1 := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	g2 := mustGraph(t, 4, [][2]int{{0, 2}, {2, 1}, {1, 3}, {3, 0}})
	require.True(t, vf2.Isomorphic(g1, g2))
}

func TestIsomorphicDifferentEdgeCounts(t *testing.T) {
	g1 := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	g2 := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.False(t, vf2.Isomorphic(g1, g2))
}

func TestIsomorphicDifferentOrder(t *testing.T) {
	g1 := mustGraph(t, 4, nil)
	g2 := mustGraph(t, 5, nil)
	require.False(t, vf2.Isomorphic(g1, g2))
}

func TestIsomorphicDisconnectedGraphs(t *testing.T) {
	// two disjoint edges vs. two disjoint edges relabeled.
	g1 := mustGraph(t, 4, [][2]int{{0, 1}, {2, 3}})
	g2 := mustGraph(t, 4, [][2]int{{0, 2}, {1, 3}})
	require.True(t, vf2.Isomorphic(g1, g2))

	g3 := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}})
	require.False(t, vf2.Isomorphic(g1, g3))
}

func TestIsomorphicEmptyGraphs(t *testing.T) {
	g1 := mustGraph(t, 4, nil)
	g2 := mustGraph(t, 4, nil)
	require.True(t, vf2.Isomorphic(g1, g2))
}

// TestCodebooksPairwiseNonIsomorphic checks that every hard-coded
// codebook table is genuinely pairwise non-isomorphic, and that the
// k=6 table has exactly 156 entries.
func TestCodebooksPairwiseNonIsomorphic(t *testing.T) {
	for _, m := range []int{11, 34, 156} {
		cb, err := codebook.Build(m)
		require.NoError(t, err)
		require.Len(t, cb.Graphs, m)

		for i := 0; i < len(cb.Graphs); i++ {
			for j := i + 1; j < len(cb.Graphs); j++ {
				require.Falsef(t, vf2.Isomorphic(cb.Graphs[i], cb.Graphs[j]),
					"codebook k=%d: entries %d and %d are isomorphic", cb.K, i, j)
			}
		}
	}
}
