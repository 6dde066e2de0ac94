package codec

import (
	"time"

	"github.com/katalvlaran/graphcodec/anneal"
	"github.com/katalvlaran/graphcodec/bitgraph"
	"github.com/katalvlaran/graphcodec/codebook"
	"github.com/katalvlaran/graphcodec/confusion"
	"github.com/katalvlaran/graphcodec/internal/xrand"
	"github.com/katalvlaran/graphcodec/strategy"
	"github.com/katalvlaran/graphcodec/vf2"
)

// trialCount is the number of independent annealing trials run per
// decode; their votes are aggregated through the confusion matrix.
const trialCount = 5

// decoderSeed is the production decoder's fixed base seed; each trial
// derives its own stream from it via internal/xrand.ForTrial.
const decoderSeed = 42

// Options overrides the strategy table's auto-selected (k, r, alpha),
// mirroring the reference encoder's per-parameter Option<T> overrides.
// A nil field keeps the strategy-table value.
type Options struct {
	K     *int
	R     *int
	Alpha *float64
}

// IsomorphismCodec is a vertex-blowup codec over a pairwise
// non-isomorphic codebook, decoded by simulated annealing plus VF2
// re-identification with confusion-matrix vote aggregation.
type IsomorphismCodec struct {
	m     int
	r     int
	alpha float64
	n     int

	cb  *codebook.Codebook
	phi confusion.Matrix
}

// New builds a codec for m symbols under channel noise eps, looking up
// (k, r, alpha) from the strategy table and applying any overrides.
func New(m int, eps float64, overrides Options) (*IsomorphismCodec, error) {
	entry, err := strategy.Lookup(m, eps)
	if err != nil {
		return nil, err
	}

	r := entry.R
	if overrides.R != nil {
		r = *overrides.R
	}
	alpha := entry.Alpha
	if overrides.Alpha != nil {
		alpha = *overrides.Alpha
	}

	var cb *codebook.Codebook
	if overrides.K != nil {
		cb, err = codebook.BuildK(*overrides.K, m)
	} else {
		cb, err = codebook.Build(m)
	}
	if err != nil {
		return nil, err
	}

	seed := xrand.DeriveSeed(uint64(m), uint64(int(eps*1e6)))
	phi, err := confusion.Build(cb, eps, seed)
	if err != nil {
		return nil, err
	}

	return &IsomorphismCodec{
		m:     m,
		r:     r,
		alpha: alpha,
		n:     cb.K * r,
		cb:    cb,
		phi:   phi,
	}, nil
}

// GraphSize returns N = k*r.
func (c *IsomorphismCodec) GraphSize() int { return c.n }

// Encode inflates codebook entry i by vertex blowup: every vertex
// becomes an r-clique, every edge becomes a complete bipartite
// subgraph between the two cliques.
func (c *IsomorphismCodec) Encode(symbolIndex int) (*bitgraph.Graph, error) {
	if symbolIndex < 0 || symbolIndex >= c.m {
		return nil, ErrSymbolOutOfRange
	}

	original := c.cb.Graphs[symbolIndex]
	k := original.N()

	out, err := bitgraph.NewGraph(c.n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < k; i++ {
		for x := 0; x < c.r; x++ {
			for y := x + 1; y < c.r; y++ {
				u := i*c.r + x
				v := i*c.r + y
				if err := out.Connect(u, v); err != nil {
					return nil, err
				}
			}
		}
	}

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if !original.Has(i, j) {
				continue
			}
			for x := 0; x < c.r; x++ {
				for y := 0; y < c.r; y++ {
					u := i*c.r + x
					v := j*c.r + y
					if err := out.Connect(u, v); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return out, nil
}

// Decode runs trialCount independent annealing trials, each within
// budget/trialCount wall-clock time, and aggregates their VF2
// identifications through the confusion matrix. Returns 0 if every
// trial fails to match any codebook entry.
func (c *IsomorphismCodec) Decode(g *bitgraph.Graph, budget time.Duration) (int, error) {
	if g.N() != c.n {
		return 0, ErrGraphOrderMismatch
	}

	bg := bitgraph.NewBinaryGraph(g)
	perTrial := budget / trialCount

	votes := make([]uint32, c.m)

	for trial := 0; trial < trialCount; trial++ {
		rng := xrand.ForTrial(decoderSeed, trial)

		state, err := anneal.InitRandom(rng, bg, c.cb.K, c.alpha)
		if err != nil {
			continue
		}

		best := anneal.Run(rng, state, perTrial)

		candidate, err := best.RestoreGraph()
		if err != nil {
			continue
		}

		identified, ok := c.identify(candidate)
		if !ok {
			continue
		}

		row := c.phi[identified]
		for j, w := range row {
			votes[j] += w
		}
	}

	maxVotes := votes[0]
	maxIndex := 0
	for j := 1; j < len(votes); j++ {
		if votes[j] > maxVotes {
			maxVotes = votes[j]
			maxIndex = j
		}
	}

	return maxIndex, nil
}

func (c *IsomorphismCodec) identify(g *bitgraph.Graph) (int, bool) {
	for i, candidate := range c.cb.Graphs {
		if vf2.Isomorphic(g, candidate) {
			return i, true
		}
	}

	return 0, false
}
