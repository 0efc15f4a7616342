// Package limit defines tunable options, result types, and error
// definitions for numerical limit evaluation.
package limit

import (
	"errors"
	"fmt"
	"math"

	"github.com/odrellan/limitkit/core"
)

// Sentinel errors for limit evaluation.
var (
	// ErrNilFunc is returned when the function under test is nil.
	ErrNilFunc = errors.New("limit: function is nil")

	// ErrBadDirection is returned when a Direction outside the declared
	// enum is supplied.
	ErrBadDirection = errors.New("limit: invalid direction")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("limit: invalid option supplied")
)

// Step is one sample of an approach sequence: the sampled input, the
// function value there (NaN when undefined, ±Inf at asymptotes), and the
// distance |X − a| from the approach point.
type Step struct {
	X        float64
	FX       float64
	Distance float64
}

// Type is the coarse classification of a limit.
type Type int

const (
	// DoesNotExist means no limit could be detected: the approach did not
	// settle, or the two sides disagree.
	DoesNotExist Type = iota

	// Finite means the approach settled on an ordinary real value.
	Finite

	// Infinite means at least one approach is unbounded (vertical asymptote).
	Infinite
)

// String returns the spec-style name of the limit type.
func (t Type) String() string {
	switch t {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	default:
		return "does-not-exist"
	}
}

// Result is the structured outcome of a limit evaluation. Sides that did
// not settle are NaN; use HasLeft/HasRight to test them.
//
// Invariant: Exists is true only when both requested one-sided limits are
// finite and agree within the (relaxed) tolerance; Value is meaningful
// only then, except for single-direction queries, where Value mirrors the
// requested side.
type Result struct {
	Exists bool
	Value  float64
	Left   float64
	Right  float64
	Type   Type
}

// HasLeft reports whether the left approach produced a value (finite or ±Inf).
func (r Result) HasLeft() bool {
	return !math.IsNaN(r.Left)
}

// HasRight reports whether the right approach produced a value (finite or ±Inf).
func (r Result) HasRight() bool {
	return !math.IsNaN(r.Right)
}

// Option configures limit evaluation via functional arguments. An invalid
// value is recorded internally and surfaced as ErrOptionViolation when the
// evaluation runs.
type Option func(*Options)

// Options holds the tunable parameters of an evaluation.
type Options struct {
	// Tolerance is the absolute convergence tolerance. Must be > 0.
	Tolerance float64

	// Steps is the length of each approach sequence. Must be ≥ 3 so the
	// detector has a full tail to inspect.
	Steps int

	// Shrink is the per-step distance factor, 0 < Shrink < 1.
	Shrink float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults:
// Tolerance 1e-8, Steps 10, Shrink 0.1.
func DefaultOptions() Options {
	return Options{
		Tolerance: core.DefaultTolerance,
		Steps:     core.DefaultSteps,
		Shrink:    core.DefaultShrink,
	}
}

// WithTolerance sets the absolute convergence tolerance; tol must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithSteps sets the approach-sequence length; n must be ≥ 3.
func WithSteps(n int) Option {
	return func(o *Options) {
		if n < 3 {
			o.err = fmt.Errorf("%w: Steps must be at least 3 (%d)", ErrOptionViolation, n)
			return
		}
		o.Steps = n
	}
}

// WithShrink sets the per-step distance factor; f must satisfy 0 < f < 1.
func WithShrink(f float64) Option {
	return func(o *Options) {
		if !(f > 0 && f < 1) {
			o.err = fmt.Errorf("%w: Shrink must lie in (0,1) (%g)", ErrOptionViolation, f)
			return
		}
		o.Shrink = f
	}
}
