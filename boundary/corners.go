package boundary

import "github.com/AyushWani11/CityZone-Optimizer/gridgraph"

// exposedEdge pairs a cell side with the start/end corners of its
// clockwise-oriented segment.
type exposedEdge struct {
	start, end corner
}

// cellSides returns, for cell (i,j), the four (side, start, end) triples in
// clockwise order — top, right, bottom, left — each oriented so walking all
// four in order traces the cell clockwise: top left→right, right
// top→bottom, bottom right→left, left bottom→top.
//
// Complexity: O(1).
func cellSides(i, j int) [4]exposedEdge {
	return [4]exposedEdge{
		sideTop:    {start: corner{i, j + 1}, end: corner{i + 1, j + 1}},
		sideRight:  {start: corner{i + 1, j + 1}, end: corner{i + 1, j}},
		sideBottom: {start: corner{i + 1, j}, end: corner{i, j}},
		sideLeft:   {start: corner{i, j}, end: corner{i, j + 1}},
	}
}

// sideNeighbor returns the cell adjacent to (i,j) across the given side.
//
// Complexity: O(1).
func sideNeighbor(i, j int, s side) gridgraph.CellCoord {
	switch s {
	case sideTop:
		return gridgraph.CellCoord{I: i, J: j + 1}
	case sideRight:
		return gridgraph.CellCoord{I: i + 1, J: j}
	case sideBottom:
		return gridgraph.CellCoord{I: i, J: j - 1}
	default: // sideLeft
		return gridgraph.CellCoord{I: i - 1, J: j}
	}
}

// exposedEdges enumerates every exposed unit edge of region: for each cell
// in region, for each of its four sides, a segment is exposed if the
// opposing neighbor cell is not in region.
//
// Complexity: O(|region|).
func exposedEdges(region *gridgraph.Region) []exposedEdge {
	out := make([]exposedEdge, 0, 4*region.Len())
	for c := range region.Cells() {
		sides := cellSides(c.I, c.J)
		for s := sideTop; s <= sideLeft; s++ {
			nb := sideNeighbor(c.I, c.J, s)
			if !region.Contains(nb) {
				out = append(out, sides[s])
			}
		}
	}
	return out
}
