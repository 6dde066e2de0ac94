package codebook_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcodec/codebook"
)

func TestBuildPicksSmallestSufficientK(t *testing.T) {
	cb, err := codebook.Build(10)
	require.NoError(t, err)
	require.Equal(t, 4, cb.K)
	require.Len(t, cb.Graphs, 10)

	cb, err = codebook.Build(11)
	require.NoError(t, err)
	require.Equal(t, 4, cb.K)
	require.Len(t, cb.Graphs, 11)

	cb, err = codebook.Build(12)
	require.NoError(t, err)
	require.Equal(t, 5, cb.K)
	require.Len(t, cb.Graphs, 12)

	cb, err = codebook.Build(35)
	require.NoError(t, err)
	require.Equal(t, 6, cb.K)
	require.Len(t, cb.Graphs, 35)

	cb, err = codebook.Build(156)
	require.NoError(t, err)
	require.Equal(t, 6, cb.K)
}

func TestBuildRejectsTooManyOrInvalid(t *testing.T) {
	_, err := codebook.Build(157)
	require.ErrorIs(t, err, codebook.ErrTooManyGraphs)

	_, err = codebook.Build(0)
	require.ErrorIs(t, err, codebook.ErrInvalidCount)
}

func TestBuildKOverridesAutoSelection(t *testing.T) {
	cb, err := codebook.BuildK(6, 10)
	require.NoError(t, err)
	require.Equal(t, 6, cb.K)
	require.Len(t, cb.Graphs, 10)

	_, err = codebook.BuildK(7, 10)
	require.ErrorIs(t, err, codebook.ErrUnsupportedK)

	_, err = codebook.BuildK(4, 12)
	require.ErrorIs(t, err, codebook.ErrTooManyGraphs)
}

func TestGraphsHaveCorrectOrder(t *testing.T) {
	cb, err := codebook.Build(34)
	require.NoError(t, err)
	for _, g := range cb.Graphs {
		require.Equal(t, cb.K, g.N())
	}
}
