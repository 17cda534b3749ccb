package gridgraph

import "sort"

// Region is a finite, 4-connected, hole-free set of grid cells standing for
// a candidate rectilinear polygon. Every mutation (TryAdd, TryRemove) keeps
// three invariants:
//
//   - I1 Connectivity: the 4-neighbor induced subgraph on the cell set is
//     connected.
//   - I2 Simplicity: the complement of the cell set has exactly one
//     connected component (no enclosed holes).
//   - I3 Coverage: the total point count is checked by the caller
//     (TryRemove takes the coverage floor K explicitly; TryAdd never
//     reduces coverage so it needs no such check).
//
// A Region borrows its *Grid read-only; it owns its cell set and border set
// for the duration of one trial and is not safe for concurrent mutation.
type Region struct {
	grid      *Grid
	cells     map[CellCoord]struct{}
	border    map[CellCoord]struct{}
	perimeter float64
	weightSum float64
	coverage  int
}

// NewRegion starts a region from a single seed cell. seed must be a
// non-empty cell of grid (the caller, greedy.Grow, selects it).
//
// Complexity: O(1).
func NewRegion(grid *Grid, seed CellCoord) *Region {
	agg := grid.Cells[seed]
	r := &Region{
		grid:      grid,
		cells:     map[CellCoord]struct{}{seed: {}},
		border:    map[CellCoord]struct{}{seed: {}},
		perimeter: 4 * grid.CellSize,
		weightSum: agg.WeightSum,
		coverage:  agg.Count,
	}
	return r
}

// Cost returns perimeter(R) + sum of weights of cells in R.
//
// Complexity: O(1).
func (r *Region) Cost() float64 { return r.perimeter + r.weightSum }

// Coverage returns the total point count enclosed by the region.
//
// Complexity: O(1).
func (r *Region) Coverage() int { return r.coverage }

// Len returns the number of cells in the region.
//
// Complexity: O(1).
func (r *Region) Len() int { return len(r.cells) }

// Contains reports whether c is currently in the region.
//
// Complexity: O(1).
func (r *Region) Contains(c CellCoord) bool {
	_, ok := r.cells[c]
	return ok
}

// Cells returns the live, read-only cell set. Callers must not mutate it.
//
// Complexity: O(1).
func (r *Region) Cells() map[CellCoord]struct{} { return r.cells }

// BorderSlice materializes the current border set (region cells adjacent to
// at least one cell outside the region) as a slice sorted in (I,J)
// lexicographic order, for callers that draw a uniformly random element by
// index: Go's map iteration order is randomized per process, so sorting
// here is what keeps a seeded draw reproducible across runs.
//
// Complexity: O(|border| log |border|).
func (r *Region) BorderSlice() []CellCoord {
	out := make([]CellCoord, 0, len(r.border))
	for c := range r.border {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].I != out[j].I {
			return out[i].I < out[j].I
		}
		return out[i].J < out[j].J
	})
	return out
}

// neighborCountInRegion counts how many of c's 4-neighbors are already in
// the region.
//
// Complexity: O(1).
func (r *Region) neighborCountInRegion(c CellCoord) int {
	n := 0
	for _, nb := range Neighbors4(c) {
		if _, ok := r.cells[nb]; ok {
			n++
		}
	}
	return n
}

// refreshBorderStatus re-evaluates whether c belongs in the border set,
// given the region's current membership. c must be in the region (if it
// was just removed, the caller deletes it from border directly instead).
//
// Complexity: O(1).
func (r *Region) refreshBorderStatus(c CellCoord) {
	exposed := false
	for _, nb := range Neighbors4(c) {
		if _, ok := r.cells[nb]; !ok {
			exposed = true
			break
		}
	}
	if exposed {
		r.border[c] = struct{}{}
	} else {
		delete(r.border, c)
	}
}

// TryAdd attempts to add c to the region. It fails (returns false, region
// unchanged) iff c is already in the region, c lies outside the grid's
// Split x Split domain, or adding it would create a hole. Callers are responsible for only proposing c adjacent to the
// region, which is what keeps connectivity trivially preserved on add.
//
// Complexity: O(split^2) dominated by the hole check.
func (r *Region) TryAdd(c CellCoord) bool {
	if _, already := r.cells[c]; already {
		return false
	}
	if !r.grid.InBounds(c) {
		return false
	}
	agg := r.grid.Cells[c] // zero CellAggregate if c is an empty corridor cell

	n := r.neighborCountInRegion(c)
	r.cells[c] = struct{}{}
	if HasHole(r.cells, r.grid.Split) {
		delete(r.cells, c)
		return false
	}

	r.perimeter += perimeterDelta(n, r.grid.CellSize)
	r.weightSum += agg.WeightSum
	r.coverage += agg.Count

	r.refreshBorderStatus(c)
	for _, nb := range Neighbors4(c) {
		if _, ok := r.cells[nb]; ok {
			r.refreshBorderStatus(nb)
		}
	}
	return true
}

// TryRemove attempts to remove c from the region, subject to all three
// invariants: the result must stay connected (I1), hole-free (I2), and
// cover at least minCoverage points (I3). On any violation the region is
// left unchanged and TryRemove returns false.
//
// Complexity: O(|R|) dominated by the connectivity check plus O(split^2)
// for the hole check.
func (r *Region) TryRemove(c CellCoord, minCoverage int) bool {
	if _, ok := r.cells[c]; !ok {
		return false
	}
	data := r.grid.Cells[c]
	if r.coverage-data.Count < minCoverage {
		return false
	}

	n := r.neighborCountInRegion(c)
	delete(r.cells, c)

	if len(r.cells) > 0 && !connected(r.cells) {
		r.cells[c] = struct{}{}
		return false
	}
	if HasHole(r.cells, r.grid.Split) {
		r.cells[c] = struct{}{}
		return false
	}

	r.perimeter -= perimeterDelta(n, r.grid.CellSize)
	r.weightSum -= data.WeightSum
	r.coverage -= data.Count

	delete(r.border, c)
	for _, nb := range Neighbors4(c) {
		if _, inRegion := r.cells[nb]; inRegion {
			r.refreshBorderStatus(nb)
		}
	}
	return true
}

// Clone returns a deep, independent copy of the region (cells, border, and
// scalar state); the *Grid it borrows is shared (read-only) with the
// original.
//
// Complexity: O(|R|).
func (r *Region) Clone() *Region {
	cells := make(map[CellCoord]struct{}, len(r.cells))
	for c := range r.cells {
		cells[c] = struct{}{}
	}
	border := make(map[CellCoord]struct{}, len(r.border))
	for c := range r.border {
		border[c] = struct{}{}
	}
	return &Region{
		grid:      r.grid,
		cells:     cells,
		border:    border,
		perimeter: r.perimeter,
		weightSum: r.weightSum,
		coverage:  r.coverage,
	}
}

// Grid returns the grid this region was built against.
//
// Complexity: O(1).
func (r *Region) Grid() *Grid { return r.grid }
