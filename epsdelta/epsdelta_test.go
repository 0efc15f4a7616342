package epsdelta_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odrellan/limitkit/epsdelta"
)

// TestFindDelta_LinearFunction pins the search on a function whose exact
// answer is known: |2x+1 − 7| < ε around x = 3 holds for |x−3| < ε/2,
// and interior sampling stretches that bound by (half+1)/half ≈ 11/10.
func TestFindDelta_LinearFunction(t *testing.T) {
	f := func(x float64) float64 { return 2*x + 1 }

	delta, err := epsdelta.FindDelta(f, 3, 7, 0.4)
	require.NoError(t, err)

	require.False(t, math.IsNaN(delta), "a delta must be found")
	assert.InDelta(t, 0.22, delta, 1e-6, "widest delta for ε=0.4 under interior sampling")
	assert.True(t, epsdelta.Validate(f, 3, 7, 0.4, delta), "the returned delta must validate")
}

// TestFindDelta_ContinuousFunction verifies a positive result for a
// smooth function and that the found delta is within the search bound.
func TestFindDelta_ContinuousFunction(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	delta, err := epsdelta.FindDelta(f, 2, 4, 0.1)
	require.NoError(t, err)

	require.False(t, math.IsNaN(delta))
	assert.Greater(t, delta, 0.0)
	assert.LessOrEqual(t, delta, 1.0, "delta never exceeds MaxDelta")
	assert.True(t, epsdelta.Validate(f, 2, 4, 0.1, delta))
	assert.False(t, epsdelta.Validate(f, 2, 4, 0.1, 0.5),
		"a much wider delta must fail the same epsilon")
}

// TestFindDelta_MonotonicInEpsilon verifies that tightening epsilon never
// widens the returned delta.
func TestFindDelta_MonotonicInEpsilon(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	wide, err := epsdelta.FindDelta(f, 2, 4, 0.1)
	require.NoError(t, err)
	narrow, err := epsdelta.FindDelta(f, 2, 4, 0.01)
	require.NoError(t, err)

	require.False(t, math.IsNaN(wide))
	require.False(t, math.IsNaN(narrow))
	assert.LessOrEqual(t, narrow, wide, "smaller ε must not yield larger δ")
}

// TestFindDelta_RemovableHole verifies that the excluded point itself
// does not sabotage the search: the hole of (x²−1)/(x−1) still admits a
// delta because the point is never sampled.
func TestFindDelta_RemovableHole(t *testing.T) {
	f := func(x float64) float64 { return (x*x - 1) / (x - 1) }

	delta, err := epsdelta.FindDelta(f, 1, 2, 0.1)
	require.NoError(t, err)

	require.False(t, math.IsNaN(delta))
	assert.Greater(t, delta, 0.0)
}

// TestFindDelta_JumpFails verifies the failure sentinel: around a jump,
// no delta can keep both sides within a small epsilon of the midpoint.
func TestFindDelta_JumpFails(t *testing.T) {
	delta, err := epsdelta.FindDelta(math.Floor, 2, 1.5, 0.4)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(delta), "every candidate must fail near a jump")
}

// TestFindDelta_NonFiniteLimit verifies the precondition: a non-finite
// limit value short-circuits to the failure sentinel without error.
func TestFindDelta_NonFiniteLimit(t *testing.T) {
	f := func(x float64) float64 { return 1 / x }

	delta, err := epsdelta.FindDelta(f, 0, math.Inf(1), 0.1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(delta), "no neighbourhood bounds an unbounded approach")

	delta, err = epsdelta.FindDelta(f, 0, math.NaN(), 0.1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(delta))
}

// TestFindDelta_InputValidation covers the sentinel errors for misuse.
func TestFindDelta_InputValidation(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := epsdelta.FindDelta(nil, 0, 0, 0.1)
	assert.ErrorIs(t, err, epsdelta.ErrNilFunc)

	_, err = epsdelta.FindDelta(f, 0, 0, -1)
	assert.ErrorIs(t, err, epsdelta.ErrBadEpsilon)

	_, err = epsdelta.FindDelta(f, 0, 0, 0.1, epsdelta.WithMaxDelta(0))
	assert.ErrorIs(t, err, epsdelta.ErrOptionViolation)

	_, err = epsdelta.FindDelta(f, 0, 0, 0.1, epsdelta.WithMaxIterations(0))
	assert.ErrorIs(t, err, epsdelta.ErrOptionViolation)

	_, err = epsdelta.FindDelta(f, 0, 0, 0.1, epsdelta.WithSamples(1))
	assert.ErrorIs(t, err, epsdelta.ErrOptionViolation)
}

// TestValidate covers the caller-chosen-delta check, including the
// inputs that are invalid by definition.
func TestValidate(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	assert.True(t, epsdelta.Validate(f, 2, 4, 0.5, 0.05))
	assert.False(t, epsdelta.Validate(f, 2, 4, 0.5, 0.5), "too wide for this epsilon")
	assert.False(t, epsdelta.Validate(f, 2, 4, 0.5, 0), "delta must be positive")
	assert.False(t, epsdelta.Validate(f, 2, 4, 0, 0.05), "epsilon must be positive")
	assert.False(t, epsdelta.Validate(f, 2, math.Inf(1), 0.5, 0.05), "limit must be finite")
	assert.False(t, epsdelta.Validate(nil, 2, 4, 0.5, 0.05))
}

// TestFindDelta_Idempotent verifies bit-identical results across calls.
func TestFindDelta_Idempotent(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) }

	first, err := epsdelta.FindDelta(f, 0, 0, 0.2)
	require.NoError(t, err)
	second, err := epsdelta.FindDelta(f, 0, 0, 0.2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
