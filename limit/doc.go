// Package limit evaluates one-sided and two-sided numerical limits of a
// black-box function at a point, by sampling a geometrically shrinking
// approach sequence and running a convergence heuristic over its tail.
//
// Overview:
//
//   - Approximate generates the approach sequence itself: Steps samples at
//     distances 1, 0.1, 0.01, … (Shrink factor) offset to one side of the
//     approach point. NaN and ±Inf samples are kept, never filtered, so
//     callers (and the detector) can reason about them.
//   - Evaluate runs the approach on the left side, the right side, or both,
//     and classifies the outcome as finite, infinite, or does-not-exist.
//   - EvaluateLeft / EvaluateRight answer a single side with one number
//     (NaN when that side does not settle).
//   - IsValidApproachPoint gates whether a point is worth exploring at all.
//
// Convergence heuristic:
//
//	The detector looks at the last three samples (the closest to the
//	point). An explicit ±Inf among them dominates and is reported as an
//	infinite limit. Otherwise at least two finite values are required,
//	and the sequence counts as converged when the final consecutive
//	difference is below Tolerance, when the differences strictly shrink
//	below a looser secondary threshold, or when the whole tail is stable
//	within Tolerance×100 of the last value (slow but clearly settled
//	convergence, e.g. rational functions with a removable hole). A tail
//	whose magnitudes escalate monotonically without bound is reported as
//	a signed infinite limit even before the samples overflow to ±Inf.
//	Anything else is undetected — the numeric signature of oscillation.
//
//	This is a pragmatic approximation, not a convergence proof: a
//	function that happens to stabilize at exactly the sampled distances
//	while misbehaving at smaller scales will be misread. The thresholds
//	are empirical; keep the three-sample, dual-threshold structure if you
//	need behavior-compatible results.
//
// Errors (sentinel):
//
//   - ErrNilFunc         if the function under test is nil.
//   - ErrBadDirection    if an undeclared Direction value is supplied.
//   - ErrOptionViolation if a functional option carries an invalid value.
//
// Undetected limits are never errors: they come back as NaN (one-sided
// queries) or as a Result with Exists=false and Type=DoesNotExist.
//
// Example usage:
//
//	res, err := limit.Evaluate(math.Floor, 2, core.Both)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// res.Left ≈ 1, res.Right ≈ 2, res.Exists == false
//
// Every function here is pure and safe for concurrent use.
package limit
