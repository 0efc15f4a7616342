package limit

import "math"

// Detector thresholds. Tolerance is the caller-supplied primary
// tolerance; the secondary and stability thresholds are fixed multiples
// of it, chosen empirically. Keep the three-sample tail and the dual
// thresholds intact for behavior-compatible results.
const (
	// tailLen is how many of the closest samples the detector inspects.
	tailLen = 3

	// looseFactor widens the tolerance for the strictly-shrinking-
	// differences acceptance path.
	looseFactor = 1e4

	// stabilityFactor bounds the spread of a "slow but clearly settled"
	// tail relative to its last value.
	stabilityFactor = 100

	// divergenceThreshold is the magnitude past which a monotonically
	// escalating tail is read as an unbounded approach rather than slow
	// convergence. Samples near an asymptote grow like 1/distance, so a
	// genuine pole clears this long before the values overflow to ±Inf.
	divergenceThreshold = 1e6
)

// detect runs the convergence heuristic over the tail of a sequence of
// function values ordered farthest-first. It returns the detected limit
// and true, or NaN and false when the tail does not settle. The detected
// value may be ±Inf: an explicit infinity among the closest samples, or
// monotone unbounded growth, both read as a vertical asymptote.
func detect(values []float64, tol float64) (float64, bool) {
	tail := values
	if len(tail) > tailLen {
		tail = tail[len(tail)-tailLen:]
	}

	// An explicit infinity among the closest samples dominates.
	for _, v := range tail {
		if math.IsInf(v, 1) {
			return math.Inf(1), true
		}
	}
	for _, v := range tail {
		if math.IsInf(v, -1) {
			return math.Inf(-1), true
		}
	}

	finite := make([]float64, 0, tailLen)
	for _, v := range tail {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	// Fewer than two usable samples cannot witness convergence.
	if len(finite) < 2 {
		return math.NaN(), false
	}

	last := finite[len(finite)-1]
	diffs := make([]float64, len(finite)-1)
	for i := 1; i < len(finite); i++ {
		diffs[i-1] = math.Abs(finite[i] - finite[i-1])
	}
	final := diffs[len(diffs)-1]

	// Primary acceptance: the closest consecutive difference is below tolerance.
	if final < tol {
		return last, true
	}
	// Secondary acceptance: differences strictly shrink and the final one
	// is below the looser threshold.
	if len(diffs) >= 2 && final < diffs[len(diffs)-2] && final < tol*looseFactor {
		return last, true
	}
	// Stability fallback: the whole tail sits within the relaxed band of
	// the last value (slow but clearly settled convergence).
	stable := true
	for _, v := range finite {
		if math.Abs(v-last) > tol*stabilityFactor {
			stable = false
			break
		}
	}
	if stable {
		return last, true
	}

	// Monotone unbounded growth: a pole whose samples have not yet
	// reached literal ±Inf.
	if len(finite) == tailLen && escalates(finite) {
		return math.Copysign(math.Inf(1), last), true
	}

	return math.NaN(), false
}

// escalates reports whether all three values share a sign, grow strictly
// in magnitude, and have escaped past the divergence threshold.
func escalates(v []float64) bool {
	if math.Abs(v[len(v)-1]) <= divergenceThreshold {
		return false
	}
	for i := 1; i < len(v); i++ {
		if math.Abs(v[i]) <= math.Abs(v[i-1]) {
			return false
		}
		if math.Signbit(v[i]) != math.Signbit(v[i-1]) {
			return false
		}
	}

	return true
}
