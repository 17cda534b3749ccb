package greedy

import "github.com/AyushWani11/CityZone-Optimizer/gridgraph"

// candidateItem is one pending proposal to add a cell to the growing region,
// keyed by the marginal cost recorded at push time. Entries go stale when
// the cell's actual marginal cost changes (a later-added neighbor lowers
// it) or when the cell is admitted by a fresher entry first; both cases are
// filtered lazily on pop rather than fixed up in place, the same
// lazy-decrease-key discipline a textbook Prim priority queue uses.
type candidateItem struct {
	cell  gridgraph.CellCoord
	delta float64
}

// candidateHeap is a min-heap of candidateItem ordered by delta, with a
// lexicographic (I,J) tiebreak for deterministic replay under equal costs.
type candidateHeap []candidateItem

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].delta != h[j].delta {
		return h[i].delta < h[j].delta
	}
	if h[i].cell.I != h[j].cell.I {
		return h[i].cell.I < h[j].cell.I
	}
	return h[i].cell.J < h[j].cell.J
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidateItem)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
