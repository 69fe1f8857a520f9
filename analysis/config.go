package analysis

import "math/rand"

// Config carries the safety bounds every unbounded-search analysis
// function is run under, mirroring the teacher's functional-options
// GraphOption pattern.
type Config struct {
	// DerivedSeriesDepth caps the number of terms computed by
	// DerivedSeries before it gives up and reports overflow.
	DerivedSeriesDepth int

	// LowerCentralDepth caps LowerCentralSeries the same way.
	LowerCentralDepth int

	// SylowTrialBudget caps the number of random elements tried per
	// restart while building a Sylow subgroup.
	SylowTrialBudget int

	// SylowRestartBudget caps the number of restarts SylowSubgroup
	// will attempt before giving up.
	SylowRestartBudget int

	// QuotientIndexBound caps [G:N] that Quotient will enumerate
	// coset representatives for.
	QuotientIndexBound int

	// Rand backs every randomised search in this package when a call
	// site does not supply its own source.
	Rand *rand.Rand
}

// Option mutates a Config under construction.
type Option func(*Config)

// DefaultConfig returns the documented finite defaults: depth bounds
// generous enough for any solvable or nilpotent group this engine can
// realistically represent, a Sylow search budget tuned for degrees in
// the low hundreds, and a fixed-seed sampler for reproducibility. A
// nil *Config passed to any function in this package is equivalent to
// DefaultConfig().
func DefaultConfig() *Config {
	return &Config{
		DerivedSeriesDepth: 64,
		LowerCentralDepth:  64,
		SylowTrialBudget:   200,
		SylowRestartBudget: 8,
		QuotientIndexBound: 1_000_000,
		Rand:               rand.New(rand.NewSource(1)),
	}
}

// resolve substitutes DefaultConfig() for a nil cfg without mutating
// the caller's value.
func resolve(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return cfg
}

// WithDerivedSeriesDepth overrides DerivedSeriesDepth.
func WithDerivedSeriesDepth(n int) Option {
	return func(c *Config) { c.DerivedSeriesDepth = n }
}

// WithLowerCentralDepth overrides LowerCentralDepth.
func WithLowerCentralDepth(n int) Option {
	return func(c *Config) { c.LowerCentralDepth = n }
}

// WithSylowTrialBudget overrides SylowTrialBudget.
func WithSylowTrialBudget(n int) Option {
	return func(c *Config) { c.SylowTrialBudget = n }
}

// WithSylowRestartBudget overrides SylowRestartBudget.
func WithSylowRestartBudget(n int) Option {
	return func(c *Config) { c.SylowRestartBudget = n }
}

// WithQuotientIndexBound overrides QuotientIndexBound.
func WithQuotientIndexBound(n int) Option {
	return func(c *Config) { c.QuotientIndexBound = n }
}

// WithRandomSource overrides Rand.
func WithRandomSource(r *rand.Rand) Option {
	return func(c *Config) { c.Rand = r }
}

// NewConfig builds a Config from DefaultConfig() with opts applied in
// order.
func NewConfig(opts ...Option) *Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}
