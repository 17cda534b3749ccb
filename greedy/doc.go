// Package greedy implements hole-free marginal-cost region growth
// (component C): starting from a single cheapest seed cell, repeatedly
// admit the cheapest hole-free neighbor until no further coverage-K prefix
// can beat the best one recorded so far.
//
// Complexity: O(C log C) where C is the number of heap admissions, each
// admission paying an O(Split^2) hole check.
package greedy
