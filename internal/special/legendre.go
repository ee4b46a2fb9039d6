package special

import (
	"fmt"
	"math"
)

// AssocLegendre evaluates the associated Legendre function P_l^m(x) for
// -1 <= x <= 1. Orders with |m| > l evaluate to zero.
func AssocLegendre(l, m int, x float64) (float64, error) {
	if l < 0 {
		return 0, fmt.Errorf("%w: degree %d", ErrDomain, l)
	}
	if math.IsNaN(x) || x < -1 || x > 1 {
		return 0, fmt.Errorf("%w: x=%g not in [-1, 1]", ErrDomain, x)
	}
	am := m
	if am < 0 {
		am = -am
	}
	if am > l {
		return 0, nil
	}

	p := legendrePositive(l, am, x)
	if m < 0 {
		// P_l^{-m} = (-1)^m (l-m)!/(l+m)! P_l^m
		p *= factorialRatio(l, am)
		if am%2 == 1 {
			p = -p
		}
	}
	return p, nil
}

// Legendre evaluates the Legendre polynomial P_l(x).
func Legendre(l int, x float64) (float64, error) {
	return AssocLegendre(l, 0, x)
}

// legendrePositive runs the upward recurrence in l starting from P_m^m.
// Requires 0 <= m <= l and |x| <= 1.
func legendrePositive(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}

	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}

	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pmmp1 = pmmp1, pll
	}
	return pll
}

// factorialRatio returns (l-m)!/(l+m)! for 0 <= m <= l.
func factorialRatio(l, m int) float64 {
	if m == 0 {
		return 1
	}
	a, _ := math.Lgamma(float64(l - m + 1))
	b, _ := math.Lgamma(float64(l + m + 1))
	return math.Exp(a - b)
}
