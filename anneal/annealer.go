package anneal

import (
	"math"
	"math/rand/v2"
	"time"
)

// Geometric temperature schedule bounds, matching the production
// decoder's fixed constants rather than scaling with N.
const (
	temp0 = 50.0
	temp1 = 0.5

	// pollEvery is how often the clock is polled to update the
	// fractional-time temperature; checking every iteration would make
	// time.Since dominate the hot loop.
	pollEvery = 16
)

// Run drives single-chain simulated annealing over state for the given
// wall-clock budget: every pollEvery iterations it recomputes the
// geometric-schedule temperature from elapsed/duration, proposes a
// uniform random cross-group swap, accepts by the Metropolis
// criterion (score is maximized), and tracks the best state seen.
//
// Run mutates state in place as the chain moves and returns a separate
// copy of the best state found, which may differ from the final chain
// state if the chain accepted a later, worse move.
func Run(rng *rand.Rand, state *State, duration time.Duration) *State {
	best := state.Clone()
	bestScore := state.Score()
	currentScore := bestScore

	invTemp := 1.0 / temp0
	start := time.Now()
	durationSeconds := duration.Seconds()

	for iter := 0; ; iter++ {
		if iter&(pollEvery-1) == 0 {
			t := time.Since(start).Seconds() / durationSeconds
			if t >= 1.0 {
				break
			}

			temp := math.Pow(temp0, 1.0-t) * math.Pow(temp1, t)
			invTemp = 1.0 / temp
		}

		g0 := rng.IntN(state.GroupCount())
		g1 := (g0 + 1 + rng.IntN(state.GroupCount()-1)) % state.GroupCount()
		i0 := rng.IntN(state.GroupSize())
		i1 := rng.IntN(state.GroupSize())

		delta, err := state.ProposeSwap(g0, i0, g1, i1)
		if err != nil {
			continue
		}

		accept := delta >= 0 || rng.Float64() < math.Exp(delta*invTemp)
		if !accept {
			_ = state.Rollback()

			continue
		}

		state.Commit()
		currentScore += delta

		if currentScore > bestScore {
			bestScore = currentScore
			best = state.Clone()
		}
	}

	return best
}
