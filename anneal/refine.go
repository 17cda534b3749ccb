package anneal

import (
	"math"
	"math/rand"
	"time"

	"github.com/AyushWani11/CityZone-Optimizer/gridgraph"
)

// Refine runs a time-budgeted Metropolis search over add/remove flips
// starting from seed, returning the lowest-cost valid region observed
// (which may be seed itself, cloned, if no improving or accepted move was
// ever found). seed is not mutated; Refine works on a private clone.
//
// Termination: whichever comes first of opts.IMax iterations or
// opts.TimeBudget elapsed wall-clock.
//
// Complexity: O(IMax) iterations, each paying an O(Split^2) hole check and,
// for remove proposals, an O(|R|) connectivity check.
func Refine(seed *gridgraph.Region, k int, rng *rand.Rand, opts ...Option) *gridgraph.Region {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if rng == nil {
		rng = DeriveRNG(0, 0)
	}

	current := seed.Clone()
	best := seed.Clone()
	bestCost := best.Cost()

	beta := math.Log(cfg.T0/cfg.TEnd) / float64(cfg.IMax)
	deadline := time.Now().Add(time.Duration(cfg.TimeBudget * float64(time.Second)))

	for t := 0; t < cfg.IMax; t++ {
		if time.Now().After(deadline) {
			break
		}

		border := current.BorderSlice()
		if len(border) == 0 {
			break
		}
		b := border[rng.Intn(len(border))]
		neighbors := gridgraph.Neighbors4(b)
		c := neighbors[rng.Intn(4)]

		temperature := cfg.T0 * math.Exp(-beta*float64(t))
		tryMove(current, c, k, temperature, rng)

		if cost := current.Cost(); cost < bestCost {
			bestCost = cost
			best = current.Clone()
		}
	}

	return best
}

// tryMove attempts one add/remove flip on c and applies the Metropolis
// acceptance rule around its cost delta. A structurally infeasible move
// (would violate I1, I2, or I3) is a null move: current is left untouched.
// A structurally feasible move that Metropolis rejects is undone via its
// inverse operation.
//
// Complexity: O(Split^2) dominated by the hole check inside TryAdd/TryRemove.
func tryMove(current *gridgraph.Region, c gridgraph.CellCoord, k int, temperature float64, rng *rand.Rand) {
	before := current.Cost()

	if current.Contains(c) {
		if !current.TryRemove(c, k) {
			return // infeasible: null move
		}
		if metropolisAccept(current.Cost()-before, temperature, rng) {
			return
		}
		current.TryAdd(c) // revert: re-admitting c cannot create a hole, it was just there
		return
	}

	if !current.TryAdd(c) {
		return // infeasible: null move
	}
	if metropolisAccept(current.Cost()-before, temperature, rng) {
		return
	}
	current.TryRemove(c, 0) // revert: c is a leaf of the move, safe to drop back out
}

// metropolisAccept applies the standard Metropolis criterion: always accept
// a non-worsening delta, otherwise accept with probability exp(-delta/T).
//
// Complexity: O(1).
func metropolisAccept(delta, temperature float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temperature <= 0 {
		return false
	}
	return rng.Float64() < math.Exp(-delta/temperature)
}
