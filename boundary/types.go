package boundary

import "errors"

// Sentinel errors returned by Extract.
var (
	// ErrEmptyRegion indicates Extract was called on a region with no cells.
	ErrEmptyRegion = errors.New("boundary: region is empty")
	// ErrNotClosed indicates the stitched corner graph is not a single
	// simple cycle; this should never happen for a region that passed I1/I2,
	// and signals a bug rather than a recoverable input condition.
	ErrNotClosed = errors.New("boundary: stitched boundary is not a single closed polyline")
)

// Edge is one axis-aligned world-coordinate segment of a boundary polyline,
// directed from (X1,Y1) to (X2,Y2).
type Edge struct {
	X1, Y1, X2, Y2 float64
}

// corner is an integer grid-corner coordinate: corner (I,J) sits at world
// position (I*s, J*s). Cell (i,j) spans corners (i,j)-(i+1,j+1).
type corner struct {
	I, J int
}

// side identifies one of a cell's four sides in clockwise walk order: top,
// right, bottom, left.
type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)
