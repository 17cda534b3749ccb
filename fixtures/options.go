package fixtures

import "math/rand"

// config holds the resolved generator settings; unexported, configured
// only through Option values.
type config struct {
	rng      *rand.Rand
	minCoord float64
	maxCoord float64
	weightFn func(*rand.Rand) float64
}

// Option customizes a generator before it runs.
type Option func(*config)

// WithSeed creates a deterministic RNG for the generator. Without it, seed
// 1 is used.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCoordRange overrides the coordinate domain [min,max) points are drawn
// from. Panics if max <= min, since a degenerate domain is always a
// programmer error, not a recoverable input.
func WithCoordRange(min, max float64) Option {
	if max <= min {
		panic("fixtures: WithCoordRange requires max > min")
	}
	return func(c *config) { c.minCoord, c.maxCoord = min, max }
}

// WithWeightFn overrides the per-point weight generator.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("fixtures: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

func defaultConfig() config {
	return config{
		rng:      rand.New(rand.NewSource(1)),
		minCoord: 0,
		maxCoord: 100,
		weightFn: func(r *rand.Rand) float64 { return r.Float64()*20 - 10 },
	}
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
