package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcodec/bitgraph"
	"github.com/katalvlaran/graphcodec/codec"
	"github.com/katalvlaran/graphcodec/vf2"
)

func TestNewPublishesExpectedGraphSize(t *testing.T) {
	c, err := codec.New(10, 0.0, codec.Options{})
	require.NoError(t, err)
	// strategy(10, 0.00) = (k=4, r=1), N=4.
	require.Equal(t, 4, c.GraphSize())
}

func TestEncodeRejectsOutOfRangeSymbol(t *testing.T) {
	c, err := codec.New(10, 0.0, codec.Options{})
	require.NoError(t, err)

	_, err = c.Encode(-1)
	require.ErrorIs(t, err, codec.ErrSymbolOutOfRange)

	_, err = c.Encode(10)
	require.ErrorIs(t, err, codec.ErrSymbolOutOfRange)
}

func TestEncodeProducesPairwiseNonIsomorphicGraphs(t *testing.T) {
	c, err := codec.New(10, 0.0, codec.Options{})
	require.NoError(t, err)

	graphs := make([]*bitgraph.Graph, 10)
	for i := range graphs {
		g, err := c.Encode(i)
		require.NoError(t, err)
		require.Equal(t, c.GraphSize(), g.N())
		graphs[i] = g
	}

	for i := 0; i < len(graphs); i++ {
		for j := i + 1; j < len(graphs); j++ {
			require.False(t, vf2.Isomorphic(graphs[i], graphs[j]),
				"encoded symbols %d and %d should not be isomorphic", i, j)
		}
	}
}

func TestRoundTripUnderZeroNoise(t *testing.T) {
	c, err := codec.New(10, 0.0, codec.Options{})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		g, err := c.Encode(i)
		require.NoError(t, err)

		decoded, err := c.Decode(g, 200*time.Millisecond)
		require.NoError(t, err)
		require.Equal(t, i, decoded, "round trip failed for symbol %d under zero noise", i)
	}
}

func TestDecodeReturnsValidIndex(t *testing.T) {
	c, err := codec.New(20, 0.1, codec.Options{})
	require.NoError(t, err)

	g, err := c.Encode(5)
	require.NoError(t, err)

	decoded, err := c.Decode(g, 100*time.Millisecond)
	require.NoError(t, err)
	require.GreaterOrEqual(t, decoded, 0)
	require.Less(t, decoded, 20)
}

func TestDecodeRejectsMismatchedGraphOrder(t *testing.T) {
	c, err := codec.New(10, 0.0, codec.Options{})
	require.NoError(t, err)

	wrongOrder, err := bitgraph.NewGraph(c.GraphSize() + 1)
	require.NoError(t, err)

	_, err = c.Decode(wrongOrder, 50*time.Millisecond)
	require.ErrorIs(t, err, codec.ErrGraphOrderMismatch)
}

func TestOverridesAreHonored(t *testing.T) {
	k := 6
	r := 3
	alpha := 2.0

	c, err := codec.New(11, 0.1, codec.Options{K: &k, R: &r, Alpha: &alpha})
	require.NoError(t, err)
	require.Equal(t, 18, c.GraphSize())
}
