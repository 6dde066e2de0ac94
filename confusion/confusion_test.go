package confusion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcodec/codebook"
	"github.com/katalvlaran/graphcodec/confusion"
)

func TestBuildZeroNoiseIsDiagonal(t *testing.T) {
	cb, err := codebook.Build(11)
	require.NoError(t, err)

	mat, err := confusion.Build(cb, 0.0, 42)
	require.NoError(t, err)
	require.Len(t, mat, 11)

	for i := range mat {
		require.Equal(t, uint32(200), mat[i][i], "entry %d should always self-identify under zero noise", i)
		for j := range mat[i] {
			if j != i {
				require.Zero(t, mat[i][j])
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cb, err := codebook.Build(11)
	require.NoError(t, err)

	a, err := confusion.Build(cb, 0.1, 42)
	require.NoError(t, err)
	b, err := confusion.Build(cb, 0.1, 42)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestBuildColumnsSumToAtMostTrialCount(t *testing.T) {
	cb, err := codebook.Build(11)
	require.NoError(t, err)

	mat, err := confusion.Build(cb, 0.2, 42)
	require.NoError(t, err)

	for original := range cb.Graphs {
		var total uint32
		for identified := range mat {
			total += mat[identified][original]
		}
		require.LessOrEqual(t, total, uint32(200))
	}
}

func TestBuildEmptyCodebook(t *testing.T) {
	_, err := confusion.Build(&codebook.Codebook{K: 4, Graphs: nil}, 0.1, 42)
	require.ErrorIs(t, err, confusion.ErrEmptyCodebook)
}
