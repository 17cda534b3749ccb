package gridgraph

import "github.com/AyushWani11/CityZone-Optimizer/point"

// Grid is a regular partition of the plane by a single cell size. It is
// immutable once built: NewGrid deep-copies nothing from its input beyond
// the aggregates it computes, so a *Grid is safe to share read-only across
// the greedy grower and the SA refiner within one trial (see Region, which
// borrows a *Grid rather than owning one).
//
// Complexity of construction: O(N) time, O(min(N, Split^2)) memory, where N
// is the number of input points.
type Grid struct {
	Split    int
	CellSize float64
	Cells    map[CellCoord]CellAggregate
}

// NewGrid bins pts into a Split x Split grid whose cell size is
// s = ((maxCoord+1)/Split) * jitter, jitter in (0,1]. Points on the
// right/top domain boundary are clamped into the last row/column rather
// than overflowing it. Only non-empty cells are stored.
//
// Complexity: O(N) time, O(min(N, Split^2)) memory.
func NewGrid(pts []point.Point, split int, jitter float64) (*Grid, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyPoints
	}
	if split < 1 {
		return nil, ErrInvalidSplit
	}

	// +1 margin matches the original solver's max_coord = max(...) + 1: it
	// keeps cellSize strictly positive for an origin-only instance (all
	// points at coordinate 0), which is otherwise a valid input.
	maxCoord := point.MaxCoord(pts) + 1
	baseSize := maxCoord / float64(split)
	cellSize := baseSize * jitter
	if cellSize <= 0 {
		return nil, ErrDegenerateCellSize
	}

	cells := make(map[CellCoord]CellAggregate, len(pts))
	last := split - 1
	for _, p := range pts {
		i := int(p.X / cellSize)
		j := int(p.Y / cellSize)
		if i > last {
			i = last
		}
		if j > last {
			j = last
		}
		if i < 0 {
			i = 0
		}
		if j < 0 {
			j = 0
		}
		c := CellCoord{i, j}
		agg := cells[c]
		agg.WeightSum += p.Weight
		agg.Count++
		cells[c] = agg
	}

	return &Grid{Split: split, CellSize: cellSize, Cells: cells}, nil
}

// NonEmptyCellCount returns the number of distinct cells that contain at
// least one point.
//
// Complexity: O(1).
func (g *Grid) NonEmptyCellCount() int {
	return len(g.Cells)
}

// InBounds reports whether c falls within the Split x Split domain. A
// region may grow through empty cells (zero weight, zero count) as a
// corridor between non-empty clusters; InBounds is the only admissibility
// check such cells need, since grid.Cells naturally returns a zero
// CellAggregate for a known-empty key.
//
// Complexity: O(1).
func (g *Grid) InBounds(c CellCoord) bool {
	return c.I >= 0 && c.I < g.Split && c.J >= 0 && c.J < g.Split
}
