package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushWani11/CityZone-Optimizer/point"
	"github.com/AyushWani11/CityZone-Optimizer/solver"
)

func TestSolve_SinglePoint(t *testing.T) {
	pts := []point.Point{{X: 5, Y: 5, Weight: 0}}
	res, err := solver.Solve(pts, 1, solver.WithSMax(10), solver.WithSeed(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.EnclosedCount, 1)
	assert.Len(t, res.Edges, 4)
}

func TestSolve_NegativeWeightsCanYieldNegativeCost(t *testing.T) {
	pts := []point.Point{
		{X: 3, Y: 3, Weight: -10},
		{X: 3, Y: 3, Weight: -10},
	}
	res, err := solver.Solve(pts, 2, solver.WithSMax(20), solver.WithSeed(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.EnclosedCount, 2)
	assert.Less(t, res.Cost, 0.0)
}

func TestSolve_IsDeterministicForSameSeed(t *testing.T) {
	pts := []point.Point{
		{X: 0, Y: 0, Weight: 1},
		{X: 0, Y: 5, Weight: 1},
		{X: 0, Y: 10, Weight: 1},
	}
	run := func() solver.Result {
		res, err := solver.Solve(pts, 3, solver.WithSMax(15), solver.WithSeed(123))
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, a.EnclosedCount, b.EnclosedCount)
	assert.Equal(t, a.Edges, b.Edges)
}

func TestSolve_RespectsCoverageFloor(t *testing.T) {
	pts := []point.Point{
		{X: 1, Y: 1, Weight: 5},
		{X: 2, Y: 2, Weight: 5},
		{X: 3, Y: 3, Weight: 5},
	}
	res, err := solver.Solve(pts, 1, solver.WithSMax(20), solver.WithSeed(7))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.EnclosedCount, 1)
}

func TestSolve_ParallelMatchesSequentialCost(t *testing.T) {
	pts := []point.Point{
		{X: 0, Y: 0, Weight: -5}, {X: 0, Y: 1, Weight: -5}, {X: 1, Y: 0, Weight: -5},
		{X: 10, Y: 10, Weight: 100},
	}
	seq, err := solver.Solve(pts, 4, solver.WithSMax(15), solver.WithSeed(9))
	require.NoError(t, err)

	par, err := solver.Solve(pts, 4, solver.WithSMax(15), solver.WithSeed(9), solver.WithParallel(4))
	require.NoError(t, err)

	assert.Equal(t, seq.Cost, par.Cost)
}
