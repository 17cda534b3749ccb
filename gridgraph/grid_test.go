package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushWani11/CityZone-Optimizer/gridgraph"
	"github.com/AyushWani11/CityZone-Optimizer/point"
)

func TestNewGrid_EmptyPoints(t *testing.T) {
	_, err := gridgraph.NewGrid(nil, 4, 1.0)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyPoints)
}

func TestNewGrid_InvalidSplit(t *testing.T) {
	pts := []point.Point{{X: 1, Y: 1, Weight: 0}}
	_, err := gridgraph.NewGrid(pts, 0, 1.0)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidSplit)
}

func TestNewGrid_BinsAndAggregates(t *testing.T) {
	pts := []point.Point{
		{X: 0, Y: 0, Weight: 1},
		{X: 0.1, Y: 0.1, Weight: 2},
		{X: 9.9, Y: 9.9, Weight: 5},
	}
	g, err := gridgraph.NewGrid(pts, 2, 1.0)
	require.NoError(t, err)

	// max_coord = 9.9 + 1 = 10.9, split = 2 => cellSize = 5.45
	assert.InDelta(t, 5.45, g.CellSize, 1e-9)
	assert.Equal(t, 2, g.NonEmptyCellCount())

	origin := g.Cells[gridgraph.CellCoord{I: 0, J: 0}]
	assert.Equal(t, 2, origin.Count)
	assert.InDelta(t, 3.0, origin.WeightSum, 1e-9)
}

func TestNewGrid_ClampsBoundaryPoints(t *testing.T) {
	// A point exactly on the max coordinate must bin into the last row/col,
	// not overflow split.
	pts := []point.Point{{X: 10, Y: 10, Weight: 0}, {X: 0, Y: 0, Weight: 0}}
	g, err := gridgraph.NewGrid(pts, 5, 1.0)
	require.NoError(t, err)

	_, ok := g.Cells[gridgraph.CellCoord{I: 4, J: 4}]
	assert.True(t, ok, "boundary point must clamp into split-1")
}

func TestNewGrid_OriginOnlyInstanceIsFeasible(t *testing.T) {
	// A single point at the origin has max_coord == 0; without the +1
	// margin this collapses cellSize to 0 and NewGrid would wrongly reject
	// a perfectly valid instance.
	pts := []point.Point{{X: 0, Y: 0, Weight: 3}}
	g, err := gridgraph.NewGrid(pts, 4, 1.0)
	require.NoError(t, err)
	assert.Greater(t, g.CellSize, 0.0)

	origin := g.Cells[gridgraph.CellCoord{I: 0, J: 0}]
	assert.Equal(t, 1, origin.Count)
}
