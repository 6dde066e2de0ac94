package bitgraph_test

import (
	"testing"

	"github.com/katalvlaran/graphcodec/bitgraph"
	"github.com/stretchr/testify/require"
)

func TestBinaryGraphRows(t *testing.T) {
	t.Parallel()

	g, err := bitgraph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(0, 2))

	b := bitgraph.NewBinaryGraph(g)
	require.Equal(t, 4, b.N())
	require.True(t, b.Rows[0].Test(1))
	require.True(t, b.Rows[0].Test(2))
	require.False(t, b.Rows[0].Test(3))
	require.False(t, b.Rows[0].Test(0))

	require.Equal(t, int8(1), b.Signed[0][1])
	require.Equal(t, int8(-1), b.Signed[0][3])
	require.Equal(t, int8(0), b.Signed[0][0])
}

func TestRow128AndPopCount(t *testing.T) {
	t.Parallel()

	var a, c bitgraph.Row128
	a.Set(0)
	a.Set(70)
	a.Set(127)
	c.Set(70)
	c.Set(5)

	and := a.And(c)
	require.Equal(t, 1, and.PopCount())
	require.True(t, and.Test(70))
	require.False(t, and.Test(0))
}
