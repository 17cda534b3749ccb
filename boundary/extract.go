package boundary

import (
	"github.com/AyushWani11/CityZone-Optimizer/gridgraph"
)

// Extract builds the clockwise-oriented, collinear-collapsed boundary of
// region in world coordinates, scaling by cellSize only at emission time.
//
// Complexity: O(|region|) to enumerate exposed edges, O(boundary length) to
// stitch and walk, dominated overall by the O(|region|) pass.
func Extract(region *gridgraph.Region, cellSize float64) ([]Edge, error) {
	if region.Len() == 0 {
		return nil, ErrEmptyRegion
	}

	edges := exposedEdges(region)

	successor := make(map[corner]corner, len(edges))
	for _, e := range edges {
		successor[e.start] = e.end
	}

	if err := verifyClosed(edges, successor); err != nil {
		return nil, err
	}

	path := walk(successor)
	return collapse(path, cellSize), nil
}

// walk traces the closed polyline starting from the lexicographically
// smallest corner, for deterministic output regardless of map iteration
// order, and returns the ordered corner sequence (not including a
// duplicated closing corner).
//
// Complexity: O(boundary length).
func walk(successor map[corner]corner) []corner {
	start := smallestCorner(successor)
	out := make([]corner, 0, len(successor))
	cur := start
	for {
		out = append(out, cur)
		cur = successor[cur]
		if cur == start {
			break
		}
	}
	return out
}

func smallestCorner(successor map[corner]corner) corner {
	first := true
	var best corner
	for c := range successor {
		if first || c.I < best.I || (c.I == best.I && c.J < best.J) {
			best, first = c, false
		}
	}
	return best
}

// collapse scales corner-space path into world-coordinate segments and
// merges consecutive segments that share a direction, so edge_count
// reflects polygon complexity rather than raw grid resolution.
//
// Complexity: O(len(path)).
func collapse(path []corner, s float64) []Edge {
	n := len(path)
	if n == 0 {
		return nil
	}

	type dirSeg struct {
		startIdx int
		dx, dy   int
	}

	segs := make([]dirSeg, 0, n)
	for i := 0; i < n; i++ {
		a, b := path[i], path[(i+1)%n]
		segs = append(segs, dirSeg{startIdx: i, dx: b.I - a.I, dy: b.J - a.J})
	}

	out := make([]Edge, 0, n)
	i := 0
	for i < len(segs) {
		j := i
		for j+1 < len(segs) && segs[j+1].dx == segs[i].dx && segs[j+1].dy == segs[i].dy {
			j++
		}
		start := path[segs[i].startIdx]
		end := path[(segs[j].startIdx+1)%n]
		out = append(out, Edge{
			X1: float64(start.I) * s, Y1: float64(start.J) * s,
			X2: float64(end.I) * s, Y2: float64(end.J) * s,
		})
		i = j + 1
	}

	// The run starting at index 0 and the run ending at the last index may
	// share a direction (the walk's start point was arbitrary); merge them.
	if len(out) > 1 {
		first, last := out[0], out[len(out)-1]
		if sameDirection(first, last) {
			merged := Edge{X1: last.X1, Y1: last.Y1, X2: first.X2, Y2: first.Y2}
			out = append(out[1:len(out)-1], merged)
		}
	}
	return out
}

func sameDirection(a, b Edge) bool {
	adx, ady := a.X2-a.X1, a.Y2-a.Y1
	bdx, bdy := b.X2-b.X1, b.Y2-b.Y1
	return adx*bdy-ady*bdx == 0 && (adx*bdx >= 0 && ady*bdy >= 0)
}
