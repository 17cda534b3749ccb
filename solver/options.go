package solver

// Options configures one Solve sweep. Construct via DefaultOptions and
// override with functional Option values.
type Options struct {
	// SMax is the largest grid split swept (inclusive); splits 1..SMax are
	// all tried.
	SMax int
	// SATimeBudget is the wall-clock ceiling, in seconds, for each trial's
	// SA refinement pass.
	SATimeBudget float64
	// SAIMax is the SA iteration cap per trial.
	SAIMax int
	// T0, TEnd are the SA cooling schedule's endpoints.
	T0, TEnd float64
	// Seed is the base RNG seed; Seed==0 uses a fixed deterministic default.
	// Two Solve calls with the same points, k, and Seed produce identical
	// output.
	Seed int64
	// Parallel, if true, runs trials across a worker pool instead of
	// sequentially. Each trial's RNG stream is derived from (Seed, split,
	// trial index), not from execution order; only an exact cost tie between
	// two trials may resolve differently from run to run (see Solve).
	Parallel bool
	// MaxWorkers caps concurrent trials when Parallel is true. Zero means
	// runtime.GOMAXPROCS(0).
	MaxWorkers int
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns the default sweep configuration: S_max=110,
// SA_TIME=0.30, I_max=5000, T0=5.0, T_end=0.05, sequential execution.
func DefaultOptions() Options {
	return Options{
		SMax:         110,
		SATimeBudget: 0.30,
		SAIMax:       5000,
		T0:           5.0,
		TEnd:         0.05,
		Seed:         0,
		Parallel:     false,
		MaxWorkers:   0,
	}
}

// WithSMax overrides the largest split swept.
func WithSMax(sMax int) Option { return func(o *Options) { o.SMax = sMax } }

// WithSeed overrides the base RNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithParallel enables concurrent trial execution.
func WithParallel(maxWorkers int) Option {
	return func(o *Options) { o.Parallel = true; o.MaxWorkers = maxWorkers }
}

// WithSATuning overrides the SA refiner's time budget, iteration cap, and
// cooling-schedule endpoints.
func WithSATuning(timeBudget float64, iMax int, t0, tEnd float64) Option {
	return func(o *Options) {
		o.SATimeBudget, o.SAIMax, o.T0, o.TEnd = timeBudget, iMax, t0, tEnd
	}
}
