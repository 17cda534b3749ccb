package greedy

import (
	"container/heap"

	"github.com/AyushWani11/CityZone-Optimizer/gridgraph"
)

// Grow expands a hole-free region from the single cheapest seed cell,
// admitting one marginal-cost-minimizing hole-free neighbor at a time, and
// returns the lowest-cost prefix whose coverage reached at least k.
//
// Grow returns (nil, nil) — not an error — when the grid has no non-empty
// cell to seed from, or when no prefix ever reaches coverage k; this is a
// transient trial failure the caller (solver) is expected to skip past.
// The error return is never non-nil; it is kept so Grow can later report a
// hard failure (e.g. a corrupt grid) without changing its signature.
//
// Complexity: O(C log C) where C is the number of cells ever pushed onto
// the candidate heap, each admission additionally paying an O(Split^2)
// hole check.
func Grow(grid *gridgraph.Grid, k int) (*gridgraph.Region, error) {
	seed, ok := selectSeed(grid)
	if !ok {
		return nil, nil
	}

	region := gridgraph.NewRegion(grid, seed)

	h := &candidateHeap{}
	heap.Init(h)
	pushNeighbors(h, region, seed)

	nonEmptyAdmitted := 0
	if grid.Cells[seed].Count > 0 {
		nonEmptyAdmitted = 1
	}
	nonEmptyTotal := grid.NonEmptyCellCount()

	var best *gridgraph.Region
	var bestCost float64

	if region.Coverage() >= k {
		best = region.Clone()
		bestCost = best.Cost()
	}

	for h.Len() > 0 {
		head := (*h)[0]
		if best != nil && head.delta > 0 && region.Cost()+head.delta >= bestCost {
			break
		}

		item := heap.Pop(h).(candidateItem)
		if region.Contains(item.cell) {
			continue // stale: already admitted by an earlier entry
		}
		if actual := marginalCost(region, item.cell); actual != item.delta {
			continue // stale: a since-added neighbor changed this cell's cost
		}

		if !region.TryAdd(item.cell) {
			continue // would enclose a hole; never revisit this exact proposal
		}
		if grid.Cells[item.cell].Count > 0 {
			nonEmptyAdmitted++
		}

		pushNeighbors(h, region, item.cell)

		if region.Coverage() >= k {
			cost := region.Cost()
			if best == nil || cost < bestCost {
				best = region.Clone()
				bestCost = cost
			}
		}

		if nonEmptyAdmitted >= nonEmptyTotal {
			break
		}
	}

	return best, nil
}

// selectSeed picks the non-empty cell minimizing 4*cellSize + weightSum,
// breaking ties by lowest (I,J) lexicographic order for determinism.
//
// Complexity: O(number of non-empty cells).
func selectSeed(grid *gridgraph.Grid) (gridgraph.CellCoord, bool) {
	var best gridgraph.CellCoord
	var bestCost float64
	found := false

	for c, agg := range grid.Cells {
		if agg.Count == 0 {
			continue
		}
		cost := 4*grid.CellSize + agg.WeightSum
		if !found || cost < bestCost || (cost == bestCost && lexLess(c, best)) {
			best, bestCost, found = c, cost, true
		}
	}
	return best, found
}

func lexLess(a, b gridgraph.CellCoord) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	return a.J < b.J
}

// marginalCost computes Δ(c) = Δperimeter(c) + weight_sum(c) for a cell not
// currently in region, given region's present membership.
//
// Complexity: O(1).
func marginalCost(region *gridgraph.Region, c gridgraph.CellCoord) float64 {
	grid := region.Grid()
	agg := grid.Cells[c]
	n := 0
	for _, nb := range gridgraph.Neighbors4(c) {
		if region.Contains(nb) {
			n++
		}
	}
	deltaPerimeter := grid.CellSize * (4 - 2*float64(n))
	return deltaPerimeter + agg.WeightSum
}

// pushNeighbors pushes every 4-neighbor of c not already in region onto h,
// keyed by its current marginal cost.
//
// Complexity: O(log H) for a heap of H entries (at most four pushes).
func pushNeighbors(h *candidateHeap, region *gridgraph.Region, c gridgraph.CellCoord) {
	for _, nb := range gridgraph.Neighbors4(c) {
		if region.Contains(nb) {
			continue
		}
		if !region.Grid().InBounds(nb) {
			continue
		}
		heap.Push(h, candidateItem{cell: nb, delta: marginalCost(region, nb)})
	}
}
