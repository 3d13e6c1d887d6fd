package resonance

import (
	errorsmod "cosmossdk.io/errors"
)

// SearchOptions bounds the integer search performed by Enumerate.
type SearchOptions struct {
	// Order3 is the largest accepted |i+j+k|. Zero keeps only zero-sum resonances.
	Order3 int `json:"order3" yaml:"order3" mapstructure:"order3"`
	// MaxInt3 bounds |i|, |j| and |k|.
	MaxInt3 int `json:"max_int3" yaml:"max_int3" mapstructure:"max_int3"`
	// IncludeTwoBody enables the p:q search.
	IncludeTwoBody bool `json:"include_two_body" yaml:"include_two_body" mapstructure:"include_two_body"`
	// Order2 is the largest accepted p-q, checked before gcd reduction.
	Order2 int `json:"order2" yaml:"order2" mapstructure:"order2"`
	// MaxInt2 bounds p and q.
	MaxInt2 int `json:"max_int2" yaml:"max_int2" mapstructure:"max_int2"`
}

// DefaultSearchOptions returns zero-order three-body resonances with
// coefficients up to 10 and two-body resonances up to second order.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Order3:         0,
		MaxInt3:        10,
		IncludeTwoBody: true,
		Order2:         2,
		MaxInt2:        10,
	}
}

// Validate checks the integer bounds. MaxInt2 and Order2 are only
// checked when the two-body search is enabled.
func (o SearchOptions) Validate() error {
	if o.MaxInt3 <= 0 {
		return errorsmod.Wrapf(ErrInvalidSearchBounds, "max_int3 must be positive, got %d", o.MaxInt3)
	}
	if o.Order3 < 0 {
		return errorsmod.Wrapf(ErrInvalidSearchBounds, "order3 must not be negative, got %d", o.Order3)
	}
	if !o.IncludeTwoBody {
		return nil
	}
	if o.MaxInt2 <= 0 {
		return errorsmod.Wrapf(ErrInvalidSearchBounds, "max_int2 must be positive, got %d", o.MaxInt2)
	}
	if o.Order2 < 0 {
		return errorsmod.Wrapf(ErrInvalidSearchBounds, "order2 must not be negative, got %d", o.Order2)
	}
	return nil
}

// DistanceOptions controls MinDistance.
type DistanceOptions struct {
	// Tolerance stops the iteration once |Δx| falls to or below it.
	Tolerance float64 `json:"tolerance" yaml:"tolerance" mapstructure:"tolerance"`
	// MaxIterations caps Halley steps before falling back to the grid search.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations" mapstructure:"max_iterations"`
	// FallbackSamples is the grid size of the fallback search.
	FallbackSamples int `json:"fallback_samples" yaml:"fallback_samples" mapstructure:"fallback_samples"`
}

// Solver constants.
const (
	DefaultTolerance       = 1e-6
	DefaultMaxIterations   = 1000
	DefaultFallbackSamples = 1_000_000

	// startOffset places the first iterate to the left of the point.
	startOffset = 0.5
	// restartOffset is how far left of the asymptote the iteration restarts.
	restartOffset = 5e-2
	// fallbackStart is the lower end of the fallback grid.
	fallbackStart = 1.0
	// fallbackMargin keeps the fallback grid off the asymptote.
	fallbackMargin = 1e-5
)

// DefaultDistanceOptions returns the solver defaults.
func DefaultDistanceOptions() DistanceOptions {
	return DistanceOptions{
		Tolerance:       DefaultTolerance,
		MaxIterations:   DefaultMaxIterations,
		FallbackSamples: DefaultFallbackSamples,
	}
}

// Validate checks the tolerance; zero iteration and sample counts are
// replaced by defaults in withDefaults.
func (o DistanceOptions) Validate() error {
	if !(o.Tolerance > 0) {
		return errorsmod.Wrapf(ErrInvalidTolerance, "tolerance must be positive, got %g", o.Tolerance)
	}
	if o.MaxIterations < 0 || o.FallbackSamples < 0 {
		return errorsmod.Wrapf(ErrInvalidTolerance, "iteration and sample counts must not be negative")
	}
	return nil
}

func (o DistanceOptions) withDefaults() DistanceOptions {
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.FallbackSamples == 0 {
		o.FallbackSamples = DefaultFallbackSamples
	}
	if o.FallbackSamples < 2 {
		o.FallbackSamples = 2
	}
	return o
}
