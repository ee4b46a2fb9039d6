package analysis

import "math"

// DefaultTolerance separates genuine samples from round-off around a node.
const DefaultTolerance = 1e-9

// SignChanges counts sign flips between successive samples, skipping NaN
// and values with |v| <= tol.
func SignChanges(values []float64, tol float64) int {
	n, prev := 0, 0.0
	for _, v := range values {
		if math.IsNaN(v) || math.Abs(v) <= tol {
			continue
		}
		if prev != 0 && math.Signbit(v) != math.Signbit(prev) {
			n++
		}
		prev = v
	}
	return n
}

// HalfPeriods returns the number of half-wave lobes along a slice, or zero
// if the slice never leaves the tolerance band.
func HalfPeriods(values []float64, tol float64) int {
	for _, v := range values {
		if !math.IsNaN(v) && math.Abs(v) > tol {
			return SignChanges(values, tol) + 1
		}
	}
	return 0
}

// Extrema returns the minimum and maximum finite samples. Both are NaN when
// no finite sample exists.
func Extrema(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}
