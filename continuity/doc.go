// Package continuity classifies how a black-box function behaves at a
// point: continuous, or one of four discontinuity kinds.
//
// The classification is an ordered decision list over the function's
// value at the point and its two-sided numerical limit (first match wins):
//
//  1. f(a) is finite, the two-sided limit exists, and the two agree
//     within the relaxed tolerance → Continuous.
//  2. The two-sided limit exists but f(a) is undefined or disagrees
//     → Removable (the classic "hole").
//  3. Both one-sided limits are finite but apart by at least the
//     tolerance → Jump.
//  4. Either one-sided limit is unbounded → Infinite (vertical asymptote).
//  5. Otherwise → Oscillating (nothing settles, nothing diverges).
//
// Order matters: a removable discontinuity also has equal finite
// one-sided limits, so rule 2 must fire before rules 3–4 get a look.
//
// Every call recomputes from scratch and returns a fresh value; results
// are never cached and the package holds no state.
//
// Errors (sentinel):
//
//   - ErrNilFunc         if the function under test is nil.
//   - ErrOptionViolation if a functional option carries an invalid value.
//
// Example usage:
//
//	res, err := continuity.Check(math.Floor, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Kind) // jump
package continuity
