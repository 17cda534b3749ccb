package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AyushWani11/CityZone-Optimizer/fixtures"
)

func TestUniformRandom_IsDeterministicForSameSeed(t *testing.T) {
	a := fixtures.UniformRandom(50, fixtures.WithSeed(42))
	b := fixtures.UniformRandom(50, fixtures.WithSeed(42))
	assert.Equal(t, a, b)
}

func TestUniformRandom_RespectsCoordRange(t *testing.T) {
	pts := fixtures.UniformRandom(200, fixtures.WithSeed(1), fixtures.WithCoordRange(10, 20))
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, 10.0)
		assert.Less(t, p.X, 20.0)
	}
}

func TestClustered_ProducesRequestedCount(t *testing.T) {
	pts := fixtures.Clustered(100, 4, 0.5, fixtures.WithSeed(3), fixtures.WithCoordRange(0, 50))
	assert.Len(t, pts, 100)
}

func TestGridAligned_ProducesExactLattice(t *testing.T) {
	pts := fixtures.GridAligned(3, 3, 2.0, fixtures.WithSeed(1), fixtures.WithCoordRange(0, 100))
	require := assert.New(t)
	require.Len(pts, 9)
	require.Equal(0.0, pts[0].X)
	require.Equal(0.0, pts[0].Y)
	require.Equal(4.0, pts[8].X)
	require.Equal(4.0, pts[8].Y)
}
