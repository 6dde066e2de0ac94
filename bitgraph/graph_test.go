package bitgraph_test

import (
	"testing"

	"github.com/katalvlaran/graphcodec/bitgraph"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := bitgraph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(1, 2))
	require.NoError(t, g.Connect(2, 3))

	s := g.Serialize()
	require.Equal(t, "100101", s)
	require.Len(t, s, 4*3/2)

	back, err := bitgraph.Deserialize(s, 4)
	require.NoError(t, err)
	require.Equal(t, s, back.Serialize())
}

func TestSymmetry(t *testing.T) {
	t.Parallel()

	g, err := bitgraph.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 3))

	require.True(t, g.Has(0, 3))
	require.True(t, g.Has(3, 0))
	require.False(t, g.Has(0, 0))
}

func TestConnectSelfLoop(t *testing.T) {
	t.Parallel()

	g, err := bitgraph.NewGraph(3)
	require.NoError(t, err)
	require.ErrorIs(t, g.Connect(1, 1), bitgraph.ErrSelfLoop)
}

func TestDeserializeBadLength(t *testing.T) {
	t.Parallel()

	_, err := bitgraph.Deserialize("101", 4)
	require.ErrorIs(t, err, bitgraph.ErrSerializedLength)
}

func TestDeserializeBadChar(t *testing.T) {
	t.Parallel()

	_, err := bitgraph.Deserialize("10x101", 4)
	require.ErrorIs(t, err, bitgraph.ErrSerializedChar)
}

func TestNewGraphInvalidOrder(t *testing.T) {
	t.Parallel()

	_, err := bitgraph.NewGraph(0)
	require.ErrorIs(t, err, bitgraph.ErrInvalidOrder)

	_, err = bitgraph.NewGraph(bitgraph.MaxOrder + 1)
	require.ErrorIs(t, err, bitgraph.ErrInvalidOrder)
}

func TestClone(t *testing.T) {
	t.Parallel()

	g, err := bitgraph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1))

	clone := g.Clone()
	require.NoError(t, clone.Connect(1, 2))

	require.False(t, g.Has(1, 2))
	require.True(t, clone.Has(1, 2))
}
