package anneal

import (
	"math/rand/v2"

	"github.com/katalvlaran/graphcodec/bitgraph"
)

// pendingSwap is the scratch buffer needed to undo exactly one
// ProposeSwap in O(k): just enough of the pre-move state, not a full
// clone.
type pendingSwap struct {
	g0, g1, i0, i1 int
	prevScore      float64
	prevSelf       []int32
	prevCross      []int32
}

// State is one candidate partition of a BinaryGraph's vertices into
// equal-size groups, plus the running self/cross edge-count totals
// that define its score.
type State struct {
	groupCount int
	groupSize  int
	groups     [][]int
	groupMasks []bitgraph.Row128
	graph      *bitgraph.BinaryGraph

	selfCounts  []int32
	crossCounts []int32

	score     float64
	scoreCoef float64

	pending *pendingSwap
}

// NewState builds a State from an explicit partition. groups must
// partition [0, graph.N()) into equal-size, non-overlapping groups.
func NewState(graph *bitgraph.BinaryGraph, groups [][]int, scoreCoef float64) (*State, error) {
	groupCount := len(groups)
	if groupCount < 2 {
		return nil, ErrTooFewGroups
	}

	groupSize := len(groups[0])
	if groupCount*groupSize != graph.N() {
		return nil, ErrSizeMismatch
	}

	groupsCopy := make([][]int, groupCount)
	masks := make([]bitgraph.Row128, groupCount)
	for g, members := range groups {
		groupsCopy[g] = append([]int(nil), members...)
		for _, v := range members {
			masks[g].Set(v)
		}
	}

	s := &State{
		groupCount:  groupCount,
		groupSize:   groupSize,
		groups:      groupsCopy,
		groupMasks:  masks,
		graph:       graph,
		selfCounts:  make([]int32, groupCount),
		crossCounts: make([]int32, groupCount*(groupCount-1)/2),
		scoreCoef:   scoreCoef,
	}
	s.UpdateScoreAll()

	return s, nil
}

// InitRandom shuffles [0, graph.N()) and cuts it into groupCount
// equal-size groups (round-robin over the shuffled order), then
// computes counts and score from scratch.
func InitRandom(rng *rand.Rand, graph *bitgraph.BinaryGraph, groupCount int, scoreCoef float64) (*State, error) {
	if groupCount < 2 {
		return nil, ErrTooFewGroups
	}
	if graph.N()%groupCount != 0 {
		return nil, ErrSizeMismatch
	}

	perm := rng.Perm(graph.N())
	groups := make([][]int, groupCount)
	for i, v := range perm {
		g := i % groupCount
		groups[g] = append(groups[g], v)
	}

	return NewState(graph, groups, scoreCoef)
}

// GroupCount returns the number of groups.
func (s *State) GroupCount() int { return s.groupCount }

// GroupSize returns the common size of every group.
func (s *State) GroupSize() int { return s.groupSize }

// Score returns the current objective value: alpha * sum(max(self, 0))
// + sum(|cross|).
func (s *State) Score() float64 { return s.score }

// Groups returns the current partition. The caller must not mutate it.
func (s *State) Groups() [][]int { return s.groups }

func (s *State) crossIndex(i, j int) int {
	idx := i*s.groupCount + j
	exceeded := (i + 1) * (i + 2) / 2

	return idx - exceeded
}

// UpdateScoreAll recomputes self_counts and cross_counts from scratch
// by rescanning every pair, and re-derives score from the result. Used
// to build a state from an explicit partition and, in tests, as a
// ground truth to check the incremental path against.
func (s *State) UpdateScoreAll() {
	for i := range s.selfCounts {
		s.selfCounts[i] = 0
	}
	for i := range s.crossCounts {
		s.crossCounts[i] = 0
	}

	for g, members := range s.groups {
		var total int32
		for i := 0; i < len(members); i++ {
			u := members[i]
			for j := i + 1; j < len(members); j++ {
				v := members[j]
				total += int32(s.graph.Signed[u][v])
			}
		}
		s.selfCounts[g] = total
	}

	for g0 := 0; g0 < s.groupCount; g0++ {
		for g1 := g0 + 1; g1 < s.groupCount; g1++ {
			var total int32
			for _, u := range s.groups[g0] {
				for _, v := range s.groups[g1] {
					total += int32(s.graph.Signed[u][v])
				}
			}
			s.crossCounts[s.crossIndex(g0, g1)] = total
		}
	}

	s.updateScoreFromCounts()
}

func (s *State) updateScoreFromCounts() {
	var inside int32
	for _, c := range s.selfCounts {
		if c > 0 {
			inside += c
		}
	}

	var outside int32
	for _, c := range s.crossCounts {
		if c < 0 {
			outside -= c
		} else {
			outside += c
		}
	}

	s.score = float64(inside)*s.scoreCoef + float64(outside)
}

// ProposeSwap logically swaps groups[g0][i0] with groups[g1][i1]
// (g0 != g1), updating self_counts/cross_counts incrementally via
// popcount of the moved vertices' neighbor rows against each group
// mask, and returns the resulting score delta. The move is applied
// immediately; call Commit to keep it or Rollback to undo it.
func (s *State) ProposeSwap(g0, i0, g1, i1 int) (float64, error) {
	if g0 == g1 {
		return 0, ErrSameGroup
	}
	if i0 < 0 || i0 >= s.groupSize || i1 < 0 || i1 >= s.groupSize {
		return 0, ErrIndexOutOfRange
	}

	if g0 > g1 {
		g0, g1 = g1, g0
		i0, i1 = i1, i0
	}

	prevScore := s.score
	prevSelf := append([]int32(nil), s.selfCounts...)
	prevCross := append([]int32(nil), s.crossCounts...)

	s.relativeCounts(g0, g1, i0, i1, -1)
	s.swapInner(g0, i0, g1, i1)
	s.relativeCounts(g0, g1, i0, i1, +1)
	s.updateScoreFromCounts()

	s.pending = &pendingSwap{g0: g0, g1: g1, i0: i0, i1: i1, prevScore: prevScore, prevSelf: prevSelf, prevCross: prevCross}

	return s.score - prevScore, nil
}

// relativeCounts adjusts self/cross counts for the two vertices
// currently sitting at (g0,i0) and (g1,i1) (g0 < g1), adding sign *
// 2*popcount(neighbors & group) for every group. Called once before
// the physical swap (sign -1, to remove the old contribution) and
// once after (sign +1, to add the new one).
func (s *State) relativeCounts(g0, g1, i0, i1 int, sign int32) {
	for _, pos := range [2][2]int{{g0, i0}, {g1, i1}} {
		home, idx := pos[0], pos[1]
		u := s.groups[home][idx]
		edges := s.graph.Rows[u]

		for g, mask := range s.groupMasks {
			plus := int32(edges.And(mask).PopCount())

			if g == home {
				s.selfCounts[g] += sign * 2 * plus
			} else {
				lo, hi := g, home
				if home < g {
					lo, hi = home, g
				}
				idx := s.crossIndex(lo, hi)
				s.crossCounts[idx] += sign * 2 * plus
			}
		}
	}
}

// swapInner physically exchanges the vertices at groups[g0][i0] and
// groups[g1][i1] (g0 < g1) and flips their bits in both group masks.
func (s *State) swapInner(g0, i0, g1, i1 int) {
	u := &s.groups[g0][i0]
	v := &s.groups[g1][i1]
	*u, *v = *v, *u

	s.groupMasks[g0].Toggle(*u)
	s.groupMasks[g0].Toggle(*v)
	s.groupMasks[g1].Toggle(*u)
	s.groupMasks[g1].Toggle(*v)
}

// Commit discards the scratch buffer from the last ProposeSwap,
// keeping the move permanently.
func (s *State) Commit() {
	s.pending = nil
}

// Rollback undoes the last ProposeSwap: it physically re-swaps the two
// vertices and restores self_counts, cross_counts, and score from the
// scratch buffer.
func (s *State) Rollback() error {
	if s.pending == nil {
		return ErrNoPendingSwap
	}

	p := s.pending
	s.swapInner(p.g0, p.i0, p.g1, p.i1)
	s.selfCounts = p.prevSelf
	s.crossCounts = p.prevCross
	s.score = p.prevScore
	s.pending = nil

	return nil
}

// Clone returns a deep copy, used to snapshot the best state seen
// during an annealing run.
func (s *State) Clone() *State {
	groups := make([][]int, len(s.groups))
	for i, g := range s.groups {
		groups[i] = append([]int(nil), g...)
	}

	return &State{
		groupCount:  s.groupCount,
		groupSize:   s.groupSize,
		groups:      groups,
		groupMasks:  append([]bitgraph.Row128(nil), s.groupMasks...),
		graph:       s.graph,
		selfCounts:  append([]int32(nil), s.selfCounts...),
		crossCounts: append([]int32(nil), s.crossCounts...),
		score:       s.score,
		scoreCoef:   s.scoreCoef,
	}
}

// RestoreGraph collapses the partition into a candidate graph of order
// GroupCount: edge (i,j) is present iff the cross-group signed count
// between groups i and j is positive (majority rule over the r*r
// potential edges between the two groups).
func (s *State) RestoreGraph() (*bitgraph.Graph, error) {
	g, err := bitgraph.NewGraph(s.groupCount)
	if err != nil {
		return nil, err
	}

	for i := 0; i < s.groupCount; i++ {
		for j := i + 1; j < s.groupCount; j++ {
			if s.crossCounts[s.crossIndex(i, j)] > 0 {
				if err := g.Connect(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
