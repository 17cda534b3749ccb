// Package point defines the weighted 2D point ("building") data model
// shared by every stage of the rectilinear-cover solver.
package point

// Point is a single weighted building at (X, Y). Weight may be negative,
// zero, or positive: a region enclosing a negatively-weighted point reduces
// its cost, trading against the perimeter the enclosure adds.
type Point struct {
	X, Y   float64
	Weight float64
}

// MaxCoord returns the largest of X and Y over every point in pts, or 0 if
// pts is empty. The grid builder uses this to derive a base cell size.
//
// Complexity: O(N) time, O(1) space.
func MaxCoord(pts []Point) float64 {
	var m float64
	for _, p := range pts {
		if p.X > m {
			m = p.X
		}
		if p.Y > m {
			m = p.Y
		}
	}
	return m
}

// InAxisAlignedBox reports whether p lies inside or on the boundary of the
// rectangle [minX,maxX] x [minY,maxY]. Used by callers that need a cheap
// bounding-box membership test distinct from exact polygon containment.
//
// Complexity: O(1).
func (p Point) InAxisAlignedBox(minX, minY, maxX, maxY float64) bool {
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
