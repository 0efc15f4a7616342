// Package continuity defines the classification enum, result type, and
// options for point-continuity analysis.
package continuity

import (
	"errors"
	"fmt"
	"math"

	"github.com/odrellan/limitkit/core"
)

// Sentinel errors for continuity analysis.
var (
	// ErrNilFunc is returned when the function under test is nil.
	ErrNilFunc = errors.New("continuity: function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("continuity: invalid option supplied")
)

// Kind is the closed classification of behavior at a point.
type Kind int

const (
	// Continuous: the limit exists and equals the function's value.
	Continuous Kind = iota

	// Removable: the two-sided limit exists but the function's value is
	// missing or different — a hole that could be patched.
	Removable

	// Jump: both one-sided limits are finite but unequal.
	Jump

	// Infinite: at least one side is unbounded (vertical asymptote).
	Infinite

	// Oscillating: no one-sided limit can be detected at all.
	Oscillating
)

// String returns the lowercase name of the classification.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "none"
	case Removable:
		return "removable"
	case Jump:
		return "jump"
	case Infinite:
		return "infinite"
	case Oscillating:
		return "oscillating"
	default:
		return "unknown"
	}
}

// Result is the outcome of a continuity check at one point. Description
// is a human-readable account naming the values involved.
type Result struct {
	Continuous  bool
	Kind        Kind
	Description string
}

// Option configures the check via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a continuity check.
type Options struct {
	// Tolerance is the absolute comparison tolerance. Must be > 0.
	// Comparisons between the limit and the directly evaluated f(a) use
	// the relaxed band Tolerance×core.ToleranceRelaxation to absorb
	// float accumulation from the sampling chain.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Tolerance = 1e-8.
func DefaultOptions() Options {
	return Options{Tolerance: core.DefaultTolerance}
}

// WithTolerance sets the absolute comparison tolerance; tol must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}
