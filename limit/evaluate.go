package limit

import (
	"math"

	"github.com/odrellan/limitkit/core"
)

// Evaluate computes the numerical limit of fn at the approach point for
// the requested direction and classifies it.
//
// For core.Left or core.Right, only that side of the Result is populated
// and Value mirrors it. For core.Both, the two sides are evaluated
// independently: Exists is true only when both settled on finite values
// that agree within the relaxed tolerance, in which case Value is their
// midpoint; otherwise Value is NaN.
//
// Type classification for core.Both:
//   - neither side settled            → DoesNotExist
//   - either side unbounded           → Infinite
//   - both finite, in agreement       → Finite
//   - both finite but apart, or mixed → DoesNotExist
//
// Returns ErrNilFunc, ErrBadDirection, or ErrOptionViolation for misuse;
// an undetectable limit is a valid Result, never an error.
func Evaluate(fn core.Func, at float64, dir core.Direction, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if fn == nil {
		return Result{}, ErrNilFunc
	}
	if !dir.Valid() {
		return Result{}, ErrBadDirection
	}

	nan := math.NaN()
	res := Result{Value: nan, Left: nan, Right: nan, Type: DoesNotExist}

	if dir == core.Left || dir == core.Both {
		res.Left = sideLimit(fn, at, core.Left, o)
	}
	if dir == core.Right || dir == core.Both {
		res.Right = sideLimit(fn, at, core.Right, o)
	}

	if dir != core.Both {
		side := res.Left
		if dir == core.Right {
			side = res.Right
		}
		res.Value = side
		switch {
		case core.IsFinite(side):
			res.Exists = true
			res.Type = Finite
		case math.IsInf(side, 0):
			res.Type = Infinite
		}

		return res, nil
	}

	switch {
	case !res.HasLeft() && !res.HasRight():
		res.Type = DoesNotExist
	case math.IsInf(res.Left, 0) || math.IsInf(res.Right, 0):
		res.Type = Infinite
	case core.IsFinite(res.Left) && core.IsFinite(res.Right) &&
		math.Abs(res.Left-res.Right) <= o.Tolerance*core.ToleranceRelaxation:
		res.Exists = true
		res.Type = Finite
		res.Value = res.Left + (res.Right-res.Left)/2
	default:
		res.Type = DoesNotExist
	}

	return res, nil
}

// EvaluateLeft computes the one-sided limit of fn approaching at from
// below. It returns the detected value — possibly ±Inf at an asymptote —
// or NaN when the approach does not settle.
func EvaluateLeft(fn core.Func, at float64, opts ...Option) (float64, error) {
	res, err := Evaluate(fn, at, core.Left, opts...)
	if err != nil {
		return math.NaN(), err
	}

	return res.Left, nil
}

// EvaluateRight computes the one-sided limit of fn approaching at from
// above. Semantics mirror EvaluateLeft.
func EvaluateRight(fn core.Func, at float64, opts ...Option) (float64, error) {
	res, err := Evaluate(fn, at, core.Right, opts...)
	if err != nil {
		return math.NaN(), err
	}

	return res.Right, nil
}

// IsValidApproachPoint reports whether at is worth exploring: sampling
// immediately on either side must yield at least one defined value
// (finite or infinite — anything but NaN). Points whose every nearby
// sample is undefined, and nil functions, are rejected.
func IsValidApproachPoint(fn core.Func, at float64) bool {
	if fn == nil {
		return false
	}
	o := DefaultOptions()
	for _, side := range []core.Direction{core.Left, core.Right} {
		for _, s := range approximate(fn, at, side, o) {
			if core.IsDefined(s.FX) {
				return true
			}
		}
	}

	return false
}

// sideLimit samples one approach sequence and runs the detector over its
// function values. NaN means the side did not settle.
func sideLimit(fn core.Func, at float64, side core.Direction, o Options) float64 {
	steps := approximate(fn, at, side, o)
	values := make([]float64, len(steps))
	for i, s := range steps {
		values[i] = s.FX
	}
	v, ok := detect(values, o.Tolerance)
	if !ok {
		return math.NaN()
	}

	return v
}
