package epsdelta

import (
	"math"

	"github.com/odrellan/limitkit/core"
)

// FindDelta returns the widest delta ≤ MaxDelta such that every sampled
// x within (at−delta, at+delta), excluding the point itself, maps to a
// finite f(x) with |f(x) − limitValue| < epsilon. It returns NaN when no
// candidate satisfies the condition, and NaN immediately when limitValue
// is not finite.
//
// The search is a bounded binary search: at most MaxIterations halvings,
// stopping early once the bracket is thinner than the precision floor.
// For a fixed function, point, and limit value, a smaller epsilon never
// yields a wider delta than a larger one.
//
// Returns ErrNilFunc, ErrBadEpsilon, or ErrOptionViolation for misuse;
// a failed search is reported as NaN, not as an error.
func FindDelta(fn core.Func, at, limitValue, epsilon float64, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return math.NaN(), o.err
	}
	if fn == nil {
		return math.NaN(), ErrNilFunc
	}
	if epsilon <= 0 || math.IsNaN(epsilon) {
		return math.NaN(), ErrBadEpsilon
	}
	// No neighbourhood can bound an unbounded or undetected approach.
	if !core.IsFinite(limitValue) {
		return math.NaN(), nil
	}

	lo, hi := 0.0, o.MaxDelta
	best := math.NaN()
	for i := 0; i < o.MaxIterations && hi-lo > precisionFloor; i++ {
		mid := lo + (hi-lo)/2
		if holdsWithin(fn, at, limitValue, epsilon, mid, o.Samples) {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}

	return best, nil
}

// Validate reports whether a caller-chosen delta satisfies the epsilon
// condition at the point, using the default sample count. Non-positive
// delta or epsilon, a nil function, and a non-finite limit value are all
// invalid by definition.
func Validate(fn core.Func, at, limitValue, epsilon, delta float64) bool {
	if fn == nil || delta <= 0 || epsilon <= 0 || math.IsNaN(epsilon) {
		return false
	}
	if !core.IsFinite(limitValue) {
		return false
	}

	return holdsWithin(fn, at, limitValue, epsilon, delta, DefaultSamples)
}

// holdsWithin samples interior points on both sides of the approach
// point — at fractions i/(half+1) of delta, never on the boundary — and
// checks the epsilon condition at each. Samples that collapse onto the
// approach point at floating-point precision are skipped; a candidate so
// narrow that every sample collapses cannot be verified and is rejected.
func holdsWithin(fn core.Func, at, limitValue, epsilon, delta float64, samples int) bool {
	if delta <= 0 {
		return false
	}
	half := samples / 2
	if half < 1 {
		half = 1
	}

	used := 0
	for i := 1; i <= half; i++ {
		off := delta * float64(i) / float64(half+1)
		for _, x := range [2]float64{at - off, at + off} {
			if x == at {
				continue
			}
			fx := fn.Eval(x)
			if !core.IsFinite(fx) || math.Abs(fx-limitValue) >= epsilon {
				return false
			}
			used++
		}
	}

	return used > 0
}
