package chart

import "sort"

// invertMonotonic returns the x where a piecewise-linear function through
// (xs[i], ys[i]) reaches target. ys must be strictly increasing; xs and ys
// must have equal length. The second result is false when target lies outside
// [ys[0], ys[len-1]] — no clamping, callers decide what out-of-range means.
func invertMonotonic(xs, ys []float64, target float64) (float64, bool) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, false
	}
	if target < ys[0] || target > ys[len(ys)-1] {
		return 0, false
	}
	// First index with ys[i] >= target; i >= 1 implies ys[i-1] < target <= ys[i].
	i := sort.SearchFloat64s(ys, target)
	if i == 0 {
		return xs[0], true
	}
	frac := (target - ys[i-1]) / (ys[i] - ys[i-1])
	return xs[i-1] + frac*(xs[i]-xs[i-1]), true
}
