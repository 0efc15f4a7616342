// Package epsdelta searches for the widest neighbourhood radius (delta)
// that satisfies the formal epsilon-delta condition around a point with a
// known finite limit.
//
// The condition being verified: every x with 0 < |x − a| < delta must map
// to a finite f(x) with |f(x) − L| < epsilon. Since the condition is
// universally quantified over a continuous interval, it is checked by
// sampling: each candidate delta is validated at a fixed number of
// interior points spanning both sides of the approach point, excluding
// the point itself and any sample that collapses onto it at floating-
// point precision. Interior points only — sampling at the boundary delta
// itself invites false negatives from rounding.
//
// FindDelta runs a bounded binary search over [0, MaxDelta]: a valid
// candidate becomes the lower bound (try wider), an invalid one the upper
// bound (try narrower), for at most MaxIterations or until the bracket is
// thinner than the precision floor. The result is the widest valid delta
// found, or NaN when even the narrowest tested candidate fails — the
// numeric signature of a limit that does not exist or a discontinuity at
// the point. A non-finite limit value short-circuits to NaN immediately:
// no neighbourhood can bound an unbounded approach.
//
// Work per call is a constant: MaxIterations × Samples evaluations at
// most. Everything is pure and safe for concurrent use.
//
// Errors (sentinel):
//
//   - ErrNilFunc         if the function under test is nil.
//   - ErrBadEpsilon      if epsilon is not a positive real number.
//   - ErrOptionViolation if a functional option carries an invalid value.
//
// A failed search is never an error; it comes back as NaN.
package epsdelta
