package solver

// trialCount returns the per-split trial count: S in [2,9] -> 80,
// S in [10,19] -> 20, S==1 or S>=20 -> 1. Coarse splits get the most
// trials and fine splits the fewest; a trial at a fine split also costs
// more, since every hole check is O(Split^2).
//
// Complexity: O(1).
func trialCount(s int) int {
	switch {
	case s >= 2 && s <= 9:
		return 80
	case s >= 10 && s <= 19:
		return 20
	default:
		return 1
	}
}

// jitterEpsilon returns the jitter spread for split s: 0.01/s if s>4, else
// a fixed 5e-4. Either way the drawn jitter stays within (0.998, 1].
//
// Complexity: O(1).
func jitterEpsilon(s int) float64 {
	if s > 4 {
		return 0.01 / float64(s)
	}
	return 5e-4
}
