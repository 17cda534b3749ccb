package anneal

// Options configures one Refine run. Construct via DefaultOptions and
// override fields with functional Option values.
type Options struct {
	// TimeBudget is the wall-clock ceiling, in seconds, for one Refine call.
	TimeBudget float64
	// IMax is the iteration cap; the cooling schedule is defined over
	// exactly IMax steps regardless of which terminator fires first.
	IMax int
	// T0 is the initial temperature.
	T0 float64
	// TEnd is the temperature the schedule would reach at iteration IMax.
	TEnd float64
}

// Option is a functional option for Refine.
type Option func(*Options)

// DefaultOptions returns the default refinement tuning: a 0.30s time
// budget, 5000 iterations, T0=5.0, TEnd=0.05.
func DefaultOptions() Options {
	return Options{
		TimeBudget: 0.30,
		IMax:       5000,
		T0:         5.0,
		TEnd:       0.05,
	}
}

// WithTimeBudget overrides the wall-clock ceiling, in seconds.
func WithTimeBudget(seconds float64) Option {
	return func(o *Options) { o.TimeBudget = seconds }
}

// WithIMax overrides the iteration cap.
func WithIMax(n int) Option {
	return func(o *Options) { o.IMax = n }
}

// WithTemperatureRange overrides the geometric cooling schedule's endpoints.
func WithTemperatureRange(t0, tEnd float64) Option {
	return func(o *Options) { o.T0, o.TEnd = t0, tEnd }
}
