// Package solver implements the split/trial sweep driver (component F): it
// runs the grid builder, greedy grower, SA refiner, and boundary extractor
// across a sweep of grid splits and per-split trial counts, and keeps the
// lowest-cost valid region seen, reconstructing its edge list only once at
// the end.
//
// Trials are independent (immutable shared input, per-trial RNG stream) and
// may run concurrently; the global-best reduction is guarded by a mutex.
package solver
