package special

import (
	"math"
	"math/cmplx"
)

// SphericalHarmonic evaluates the orthonormal spherical harmonic Y_l^m at
// azimuth theta and polar angle phi.
func SphericalHarmonic(l, m int, theta, phi float64) (complex128, error) {
	p, err := AssocLegendre(l, m, math.Cos(phi))
	if err != nil {
		return 0, err
	}
	if p == 0 {
		return 0, nil
	}

	am := m
	if am < 0 {
		am = -am
	}
	ratio := factorialRatio(l, am)
	if m < 0 {
		// (l-m)!/(l+m)! with m negative is the reciprocal ratio.
		ratio = 1 / ratio
	}
	norm := math.Sqrt(float64(2*l+1) / (4 * math.Pi) * ratio)

	return complex(norm*p, 0) * cmplx.Exp(complex(0, float64(m)*theta)), nil
}
