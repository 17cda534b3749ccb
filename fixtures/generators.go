package fixtures

import "github.com/AyushWani11/CityZone-Optimizer/point"

// UniformRandom draws n points independently and uniformly over the
// configured coordinate range, with independently drawn weights.
//
// Complexity: O(n).
func UniformRandom(n int, opts ...Option) []point.Point {
	cfg := resolve(opts)
	span := cfg.maxCoord - cfg.minCoord

	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.Point{
			X:      cfg.minCoord + cfg.rng.Float64()*span,
			Y:      cfg.minCoord + cfg.rng.Float64()*span,
			Weight: cfg.weightFn(cfg.rng),
		}
	}
	return pts
}

// Clustered draws n points split across clusterCount Gaussian clusters,
// assigned round-robin (so the first n%clusterCount clusters get one extra
// point), each centered at an independently drawn point with the given
// standard deviation.
//
// Complexity: O(n + clusterCount).
func Clustered(n, clusterCount int, stddev float64, opts ...Option) []point.Point {
	cfg := resolve(opts)
	span := cfg.maxCoord - cfg.minCoord

	centers := make([][2]float64, clusterCount)
	for i := range centers {
		centers[i] = [2]float64{
			cfg.minCoord + cfg.rng.Float64()*span,
			cfg.minCoord + cfg.rng.Float64()*span,
		}
	}

	pts := make([]point.Point, n)
	for i := range pts {
		center := centers[i%clusterCount]
		pts[i] = point.Point{
			X:      center[0] + cfg.rng.NormFloat64()*stddev,
			Y:      center[1] + cfg.rng.NormFloat64()*stddev,
			Weight: cfg.weightFn(cfg.rng),
		}
	}
	return pts
}

// GridAligned lays out rows*cols points on a regular lattice spaced by
// step, anchored at the configured coordinate range's minimum, with
// independently drawn weights. Useful for exercising the grid builder's
// cell-boundary clamping with exact, predictable coordinates.
//
// Complexity: O(rows*cols).
func GridAligned(rows, cols int, step float64, opts ...Option) []point.Point {
	cfg := resolve(opts)
	pts := make([]point.Point, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			pts = append(pts, point.Point{
				X:      cfg.minCoord + float64(i)*step,
				Y:      cfg.minCoord + float64(j)*step,
				Weight: cfg.weightFn(cfg.rng),
			})
		}
	}
	return pts
}
