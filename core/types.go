package core

import "math"

// Default numeric parameters of the analysis chain. Individual packages
// expose functional options to override them per call.
const (
	// DefaultTolerance is the absolute tolerance used when comparing
	// function values and one-sided limits.
	DefaultTolerance = 1e-8

	// DefaultSteps is the number of samples generated when approaching
	// a point from one side.
	DefaultSteps = 10

	// DefaultShrink is the factor by which the approach distance shrinks
	// between consecutive samples (1, 0.1, 0.01, ...).
	DefaultShrink = 0.1

	// ToleranceRelaxation widens a comparison tolerance to absorb the
	// floating-point accumulation introduced by the sampling chain.
	// Comparisons against directly computed values use Tolerance;
	// comparisons between two sampled results use Tolerance×ToleranceRelaxation.
	ToleranceRelaxation = 100
)

// Func is the function under test: a black-box mapping from one real
// number to another. It may be undefined at isolated points (return NaN)
// and unbounded near asymptotes (return ±Inf).
type Func func(x float64) float64

// Eval evaluates f at x, converting every exceptional outcome into NaN:
// a nil Func and a panicking evaluation both yield NaN. This is the only
// place limitkit touches the function under test, so downstream code can
// rely on evaluation never failing.
func (f Func) Eval(x float64) (y float64) {
	if f == nil {
		return math.NaN()
	}
	defer func() {
		if recover() != nil {
			y = math.NaN()
		}
	}()

	return f(x)
}

// Direction selects which side(s) of the approach point are examined.
type Direction int

const (
	// Left approaches the point from below (x < a).
	Left Direction = iota

	// Right approaches the point from above (x > a).
	Right

	// Both evaluates the left and right approaches independently and
	// combines them into a two-sided result.
	Both
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the three declared directions.
func (d Direction) Valid() bool {
	return d == Left || d == Right || d == Both
}

// IsDefined reports whether v carries numeric information: finite values
// and infinities are defined, NaN is not.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}

// IsFinite reports whether v is an ordinary real number (not NaN, not ±Inf).
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Interval is a closed range [Lo, Hi] on the real line.
type Interval struct {
	Lo float64
	Hi float64
}

// Contains reports whether x lies within the interval (inclusive).
func (iv Interval) Contains(x float64) bool {
	return x >= iv.Lo && x <= iv.Hi
}

// Width returns Hi − Lo.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}
