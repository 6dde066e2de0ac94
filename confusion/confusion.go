package confusion

import (
	"math/rand/v2"

	"github.com/katalvlaran/graphcodec/bitgraph"
	"github.com/katalvlaran/graphcodec/codebook"
	"github.com/katalvlaran/graphcodec/internal/xrand"
	"github.com/katalvlaran/graphcodec/vf2"
)

// trialsPerEntry is the number of simulated channel draws per codebook
// entry used to populate one row.
const trialsPerEntry = 200

// Matrix is the |C|x|C| confusion table. Matrix[i][j] counts how many
// of the trialsPerEntry noisy draws of codebook entry j were
// raw-identified (via VF2, with no annealing involved) as entry i —
// i.e. it is stored transposed relative to (transmitted, identified):
// to vote after a real decode identifies raw index i, add row
// Matrix[i] to the accumulator.
type Matrix [][]uint32

// Size returns |C|, the codebook size the matrix was built from.
func (m Matrix) Size() int { return len(m) }

// Build runs a Monte-Carlo simulation of the channel: for every
// codebook entry, corrupt it trialsPerEntry times under an
// independent-edge-flip channel with rate eps, re-identify the result
// against the whole codebook via VF2, and tally the outcome. seed
// makes the simulation reproducible; the codec façade derives it from
// (m, eps) so a given (M, ε) pair always gets the same matrix.
func Build(cb *codebook.Codebook, eps float64, seed uint64) (Matrix, error) {
	m := len(cb.Graphs)
	if m == 0 {
		return nil, ErrEmptyCodebook
	}

	mat := make(Matrix, m)
	for i := range mat {
		mat[i] = make([]uint32, m)
	}

	rng := xrand.New(seed)

	for original, g := range cb.Graphs {
		for trial := 0; trial < trialsPerEntry; trial++ {
			noisy := corrupt(g, eps, rng)

			if identified, ok := identify(noisy, cb.Graphs); ok {
				mat[identified][original]++
			}
		}
	}

	return mat, nil
}

// corrupt returns a copy of g with every potential edge independently
// flipped with probability eps.
func corrupt(g *bitgraph.Graph, eps float64, rng *rand.Rand) *bitgraph.Graph {
	n := g.N()
	out, err := bitgraph.NewGraph(n)
	if err != nil {
		panic("confusion: codebook graph has invalid order: " + err.Error())
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			present := g.Has(i, j)
			if rng.Float64() < eps {
				present = !present
			}
			if present {
				if err := out.Connect(i, j); err != nil {
					panic("confusion: unexpected self-loop: " + err.Error())
				}
			}
		}
	}

	return out
}

// identify returns the index of the codebook entry isomorphic to g, if
// any. A corrupted graph occasionally matches no entry in a truncated
// codebook; the caller simply drops that trial.
func identify(g *bitgraph.Graph, graphs []*bitgraph.Graph) (int, bool) {
	for i, candidate := range graphs {
		if vf2.Isomorphic(g, candidate) {
			return i, true
		}
	}

	return 0, false
}
