// Package epsdelta defines options and error definitions for the
// epsilon-delta neighbourhood search.
package epsdelta

import (
	"errors"
	"fmt"
)

// Sentinel errors for the delta search.
var (
	// ErrNilFunc is returned when the function under test is nil.
	ErrNilFunc = errors.New("epsdelta: function is nil")

	// ErrBadEpsilon is returned when epsilon is zero, negative, or NaN.
	ErrBadEpsilon = errors.New("epsdelta: epsilon must be a positive real number")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("epsdelta: invalid option supplied")
)

// Search bounds fixed by the algorithm.
const (
	// DefaultMaxDelta is the upper end of the search interval.
	DefaultMaxDelta = 1.0

	// DefaultMaxIterations caps the binary search.
	DefaultMaxIterations = 50

	// DefaultSamples is how many interior points validate a candidate,
	// split evenly across the two sides of the approach point.
	DefaultSamples = 20

	// precisionFloor stops the search once the bracket is this thin.
	precisionFloor = 1e-10
)

// Option configures the search via functional arguments. An invalid
// value is recorded internally and surfaced as ErrOptionViolation when
// the search runs.
type Option func(*Options)

// Options holds the tunable parameters of a delta search.
type Options struct {
	// MaxDelta is the upper end of the search interval. Must be > 0.
	MaxDelta float64

	// MaxIterations caps the number of binary-search halvings. Must be > 0.
	MaxIterations int

	// Samples is the number of interior validation points per candidate,
	// split across both sides. Must be ≥ 2.
	Samples int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults:
// MaxDelta 1, MaxIterations 50, Samples 20.
func DefaultOptions() Options {
	return Options{
		MaxDelta:      DefaultMaxDelta,
		MaxIterations: DefaultMaxIterations,
		Samples:       DefaultSamples,
	}
}

// WithMaxDelta sets the upper end of the search interval; d must be > 0.
func WithMaxDelta(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDelta must be positive (%g)", ErrOptionViolation, d)
			return
		}
		o.MaxDelta = d
	}
}

// WithMaxIterations caps the binary search; n must be > 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSamples sets the per-candidate validation sample count; n must be ≥ 2.
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: Samples must be at least 2 (%d)", ErrOptionViolation, n)
			return
		}
		o.Samples = n
	}
}
