package continuity

import (
	"fmt"
	"math"

	"github.com/odrellan/limitkit/core"
	"github.com/odrellan/limitkit/limit"
)

// Check classifies the behavior of fn at the point per the ordered
// decision list in the package documentation. The numerical limit is
// obtained by black-box sampling (see package limit); fn(at) itself is
// evaluated once, directly.
//
// Returns ErrNilFunc or ErrOptionViolation for misuse; every numeric
// outcome — including "nothing settles" — is a valid Result.
func Check(fn core.Func, at float64, opts ...Option) (Result, error) {
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

	lim, err := limit.Evaluate(fn, at, core.Both, limit.WithTolerance(o.Tolerance))
	if err != nil {
		return Result{}, err
	}
	fa := fn.Eval(at)
	relaxed := o.Tolerance * core.ToleranceRelaxation

	switch {
	case core.IsFinite(fa) && lim.Exists && math.Abs(lim.Value-fa) <= relaxed:
		return Result{
			Continuous:  true,
			Kind:        Continuous,
			Description: fmt.Sprintf("continuous at x = %g: limit and value agree at %g", at, fa),
		}, nil

	case lim.Exists:
		actual := "undefined"
		if core.IsDefined(fa) {
			actual = fmt.Sprintf("%g", fa)
		}
		return Result{
			Kind: Removable,
			Description: fmt.Sprintf(
				"removable discontinuity at x = %g: limit is %g but f(%g) is %s",
				at, lim.Value, at, actual),
		}, nil

	case core.IsFinite(lim.Left) && core.IsFinite(lim.Right) &&
		math.Abs(lim.Left-lim.Right) >= o.Tolerance:
		return Result{
			Kind: Jump,
			Description: fmt.Sprintf(
				"jump discontinuity at x = %g: left limit %g, right limit %g",
				at, lim.Left, lim.Right),
		}, nil

	case math.IsInf(lim.Left, 0) || math.IsInf(lim.Right, 0):
		return Result{
			Kind: Infinite,
			Description: fmt.Sprintf(
				"infinite discontinuity at x = %g: the function is unbounded nearby", at),
		}, nil

	default:
		return Result{
			Kind: Oscillating,
			Description: fmt.Sprintf(
				"oscillating behavior at x = %g: nearby values never settle", at),
		}, nil
	}
}
