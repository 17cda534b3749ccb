// Package cityzone computes the minimum-cost rectilinear enclosure over a
// set of weighted 2D points.
//
// Given N weighted points and a minimum coverage count K, the solver finds
// a simply-connected, axis-aligned, hole-free region built from unit grid
// cells that encloses at least K points while minimizing:
//
//	cost = perimeter(region) + sum of weights of enclosed points
//
// A negative-weight point pulls the region toward enclosing it; a
// positive-weight point pushes the optimal region away unless coverage
// forces it in.
//
// The solver is organized as a pipeline of subpackages:
//
//	point/     — the weighted-point data model
//	gridgraph/ — multi-resolution grid discretization and incremental Region state
//	greedy/    — hole-free greedy region growth via a marginal-cost min-heap
//	anneal/    — time-budgeted simulated-annealing refinement
//	boundary/  — clockwise boundary extraction and closed-cycle verification
//	solver/    — the split/trial sweep driver tying the pipeline together
//	ioformat/  — the text input/output format read by cmd/cityzone
//	fixtures/  — synthetic point-set generators for tests and benchmarks
//
// cmd/cityzone is the command-line entry point: it reads an instance,
// solves it, and writes the winning boundary and its cost.
package cityzone
