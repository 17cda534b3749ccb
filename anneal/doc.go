// Package anneal implements the time-budgeted simulated-annealing refiner
// (component D): a Metropolis loop over add/remove flips on a region's
// border cells, under a geometric cooling schedule, that never lets the
// region violate connectivity, simplicity, or the coverage floor.
//
// Complexity: O(I_max) iterations, each paying an O(Split^2) hole check
// plus an O(|R|) connectivity check on removal proposals.
package anneal
