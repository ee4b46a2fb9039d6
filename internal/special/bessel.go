package special

import "math"

// BesselJ evaluates the Bessel function of the first kind J_n(x). Negative
// orders follow J_{-n}(x) = (-1)^n J_n(x).
func BesselJ(n int, x float64) float64 {
	return math.Jn(n, x)
}
