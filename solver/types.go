package solver

import (
	"errors"

	"github.com/AyushWani11/CityZone-Optimizer/boundary"
)

// ErrNoFeasibleSolution is returned when every trial across the entire
// split sweep failed to reach coverage k (always theoretically unreachable
// when k <= len(points), since the largest split-1 cell encloses every
// point; a caller seeing this for k <= N has found a solver defect, not a
// genuinely infeasible instance).
var ErrNoFeasibleSolution = errors.New("solver: no trial reached the required coverage")

// Result is the chosen polygon: its cost, the count of original points it
// encloses, and its clockwise boundary segments.
type Result struct {
	Cost          float64
	EnclosedCount int
	Edges         []boundary.Edge
}
