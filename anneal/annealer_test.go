package anneal_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcodec/anneal"
)

func TestRunNeverReturnsWorseThanInitial(t *testing.T) {
	graph := twoTriangles(t)
	rng := rand.New(rand.NewPCG(42, 7))

	state, err := anneal.InitRandom(rng, graph, 2, 2.0)
	require.NoError(t, err)
	initialScore := state.Score()

	best := anneal.Run(rng, state, 20*time.Millisecond)
	require.GreaterOrEqual(t, best.Score(), initialScore)
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	graph := twoTriangles(t)

	run := func() float64 {
		rng := rand.New(rand.NewPCG(42, 7))
		state, err := anneal.InitRandom(rng, graph, 2, 2.0)
		require.NoError(t, err)

		return anneal.Run(rng, state, 10*time.Millisecond).Score()
	}

	require.Equal(t, run(), run())
}

func TestRunFindsPerfectPartitionOnTwoTriangles(t *testing.T) {
	graph := twoTriangles(t)
	rng := rand.New(rand.NewPCG(1, 1))

	state, err := anneal.InitRandom(rng, graph, 2, 2.0)
	require.NoError(t, err)

	best := anneal.Run(rng, state, 50*time.Millisecond)
	// {0,1,2},{3,4,5} is the only partition scoring 2.0*(3+3) + 9 = 21.
	require.Equal(t, 21.0, best.Score())

	restored, err := best.RestoreGraph()
	require.NoError(t, err)
	require.False(t, restored.Has(0, 1))
}
