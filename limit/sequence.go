package limit

import "github.com/odrellan/limitkit/core"

// Approximate generates the approach sequence toward at from one side:
// Steps samples at distances 1, Shrink, Shrink², … offset below (Left) or
// above (Right) the approach point. Samples are recorded as-is — NaN and
// ±Inf function values propagate unchanged so downstream consumers can
// reason about them. Distances across the returned slice are strictly
// decreasing.
//
// side must be core.Left or core.Right; core.Both is rejected with
// ErrBadDirection, since a sequence approaches from exactly one side.
func Approximate(fn core.Func, at float64, side core.Direction, opts ...Option) ([]Step, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	if side != core.Left && side != core.Right {
		return nil, ErrBadDirection
	}

	return approximate(fn, at, side, o), nil
}

// approximate is the validated core of Approximate, shared by the
// evaluator so it can skip re-validation on every side.
func approximate(fn core.Func, at float64, side core.Direction, o Options) []Step {
	steps := make([]Step, 0, o.Steps)
	dist := 1.0
	for i := 0; i < o.Steps; i++ {
		x := at - dist
		if side == core.Right {
			x = at + dist
		}
		steps = append(steps, Step{X: x, FX: fn.Eval(x), Distance: dist})
		dist *= o.Shrink
	}

	return steps
}
