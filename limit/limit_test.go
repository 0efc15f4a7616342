package limit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odrellan/limitkit/core"
	"github.com/odrellan/limitkit/limit"
)

// TestEvaluate_PolynomialMatchesValue verifies that the two-sided limit
// of a polynomial at an ordinary point agrees with the direct value.
func TestEvaluate_PolynomialMatchesValue(t *testing.T) {
	f := func(x float64) float64 { return x*x + 3*x - 1 }

	res, err := limit.Evaluate(f, 2, core.Both)
	require.NoError(t, err, "polynomial evaluation should not error")

	assert.True(t, res.Exists, "polynomial limit must exist")
	assert.Equal(t, limit.Finite, res.Type, "polynomial limit must classify as finite")
	assert.InDelta(t, f(2), res.Value, 1e-4, "limit must agree with f(2)")
}

// TestEvaluate_RemovableRational checks (x²−1)/(x−1) at its hole: the
// limit exists and equals 2 even though f(1) is undefined.
func TestEvaluate_RemovableRational(t *testing.T) {
	f := func(x float64) float64 { return (x*x - 1) / (x - 1) }

	res, err := limit.Evaluate(f, 1, core.Both)
	require.NoError(t, err)

	assert.True(t, res.Exists, "the hole must not hide the limit")
	assert.Equal(t, limit.Finite, res.Type)
	assert.InDelta(t, 2, res.Value, 1e-4, "limit at the hole is 2")
	assert.True(t, math.IsNaN(f(1)), "f itself is undefined at 1")
}

// TestEvaluate_Sinc checks the classic sin(x)/x limit at zero.
func TestEvaluate_Sinc(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) / x }

	res, err := limit.Evaluate(f, 0, core.Both)
	require.NoError(t, err)

	assert.True(t, res.Exists)
	assert.InDelta(t, 1, res.Value, 1e-4, "sin(x)/x → 1 as x → 0")
}

// TestEvaluate_FloorJump verifies both one-sided limits of ⌊x⌋ at 2 and
// that the two-sided limit does not exist.
func TestEvaluate_FloorJump(t *testing.T) {
	res, err := limit.Evaluate(math.Floor, 2, core.Both)
	require.NoError(t, err)

	assert.False(t, res.Exists, "a jump has no two-sided limit")
	assert.Equal(t, limit.DoesNotExist, res.Type)
	assert.InDelta(t, 1, res.Left, 1e-6, "left limit of floor at 2 is 1")
	assert.InDelta(t, 2, res.Right, 1e-6, "right limit of floor at 2 is 2")
	assert.True(t, math.IsNaN(res.Value), "no common value may be reported")
}

// TestEvaluate_ReciprocalInfinite verifies the vertical asymptote of 1/x
// at zero: −Inf from the left, +Inf from the right, type infinite.
func TestEvaluate_ReciprocalInfinite(t *testing.T) {
	f := func(x float64) float64 { return 1 / x }

	res, err := limit.Evaluate(f, 0, core.Both)
	require.NoError(t, err)

	assert.False(t, res.Exists)
	assert.Equal(t, limit.Infinite, res.Type)
	assert.True(t, math.IsInf(res.Left, -1), "left approach must diverge to −Inf")
	assert.True(t, math.IsInf(res.Right, 1), "right approach must diverge to +Inf")
}

// TestEvaluate_OscillationUndetected verifies that sin(1/x) at zero
// settles on neither side.
func TestEvaluate_OscillationUndetected(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(1 / x) }

	res, err := limit.Evaluate(f, 0, core.Both)
	require.NoError(t, err)

	assert.False(t, res.Exists)
	assert.Equal(t, limit.DoesNotExist, res.Type)
	assert.False(t, res.HasLeft(), "left side must not settle")
	assert.False(t, res.HasRight(), "right side must not settle")
}

// TestEvaluate_SingleDirectionMirrors verifies that a one-direction query
// populates only its side and mirrors it into Value.
func TestEvaluate_SingleDirectionMirrors(t *testing.T) {
	res, err := limit.Evaluate(math.Floor, 2, core.Left)
	require.NoError(t, err)

	assert.True(t, res.Exists, "the left approach settles")
	assert.Equal(t, limit.Finite, res.Type)
	assert.InDelta(t, 1, res.Value, 1e-6, "Value mirrors the left limit")
	assert.InDelta(t, 1, res.Left, 1e-6)
	assert.False(t, res.HasRight(), "right side was not requested")
}

// TestEvaluateLeftRight_SqrtAtZero exercises the one-sided helpers on a
// function defined on only one side of the point.
func TestEvaluateLeftRight_SqrtAtZero(t *testing.T) {
	left, err := limit.EvaluateLeft(math.Sqrt, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(left), "sqrt has no values left of zero")

	right, err := limit.EvaluateRight(math.Sqrt, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, right, 1e-3, "sqrt approaches 0 from the right")
}

// TestEvaluate_Idempotent verifies that two identical calls produce
// identical results — the evaluator holds no state.
func TestEvaluate_Idempotent(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	first, err := limit.Evaluate(f, 2, core.Both)
	require.NoError(t, err)
	second, err := limit.Evaluate(f, 2, core.Both)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield identical results")
}

// TestEvaluate_InputValidation covers the sentinel errors for misuse.
func TestEvaluate_InputValidation(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := limit.Evaluate(nil, 0, core.Both)
	assert.ErrorIs(t, err, limit.ErrNilFunc, "nil function must error")

	_, err = limit.Evaluate(f, 0, core.Direction(9))
	assert.ErrorIs(t, err, limit.ErrBadDirection, "undeclared direction must error")

	_, err = limit.Evaluate(f, 0, core.Both, limit.WithTolerance(-1))
	assert.ErrorIs(t, err, limit.ErrOptionViolation, "negative tolerance must error")

	_, err = limit.Evaluate(f, 0, core.Both, limit.WithSteps(2))
	assert.ErrorIs(t, err, limit.ErrOptionViolation, "too few steps must error")

	_, err = limit.Evaluate(f, 0, core.Both, limit.WithShrink(1.5))
	assert.ErrorIs(t, err, limit.ErrOptionViolation, "shrink outside (0,1) must error")
}

// TestApproximate_Sequence verifies strictly decreasing distances, side
// placement, and honest propagation of undefined samples.
func TestApproximate_Sequence(t *testing.T) {
	f := func(x float64) float64 { return 1 / x }

	seq, err := limit.Approximate(f, 0, core.Right, limit.WithSteps(6))
	require.NoError(t, err)
	require.Len(t, seq, 6)

	for i, s := range seq {
		assert.Greater(t, s.X, 0.0, "right-side samples sit above the point")
		assert.InDelta(t, s.X, s.Distance, 1e-18, "distance is |x − a|")
		if i > 0 {
			assert.Less(t, s.Distance, seq[i-1].Distance, "distances must strictly decrease")
		}
	}

	left, err := limit.Approximate(math.Sqrt, 0, core.Left)
	require.NoError(t, err)
	for _, s := range left {
		assert.True(t, math.IsNaN(s.FX), "sqrt of a negative sample propagates NaN unchanged")
	}

	_, err = limit.Approximate(f, 0, core.Both)
	assert.ErrorIs(t, err, limit.ErrBadDirection, "a sequence approaches from exactly one side")
}

// TestApproximate_PanickingFunc verifies that a panicking callable is
// absorbed into NaN at the sampling boundary.
func TestApproximate_PanickingFunc(t *testing.T) {
	f := func(x float64) float64 { panic("unstable model") }

	seq, err := limit.Approximate(f, 3, core.Right)
	require.NoError(t, err, "a panicking function must not fail the generator")
	for _, s := range seq {
		assert.True(t, math.IsNaN(s.FX), "panics convert to NaN samples")
	}
}

// TestIsValidApproachPoint gates exploration: at least one nearby defined
// sample on either side qualifies a point.
func TestIsValidApproachPoint(t *testing.T) {
	square := func(x float64) float64 { return x * x }
	nowhere := func(x float64) float64 { return math.NaN() }

	assert.True(t, limit.IsValidApproachPoint(square, 2))
	assert.True(t, limit.IsValidApproachPoint(math.Sqrt, 0),
		"one defined side is enough")
	assert.False(t, limit.IsValidApproachPoint(nowhere, 0),
		"a function undefined everywhere nearby is not explorable")
	assert.False(t, limit.IsValidApproachPoint(nil, 0))
}

// TestResult_TypeStrings pins the wire-facing names of the classification.
func TestResult_TypeStrings(t *testing.T) {
	assert.Equal(t, "finite", limit.Finite.String())
	assert.Equal(t, "infinite", limit.Infinite.String())
	assert.Equal(t, "does-not-exist", limit.DoesNotExist.String())
}
