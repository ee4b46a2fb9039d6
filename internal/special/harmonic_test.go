package special

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestSphericalHarmonic_Y00(t *testing.T) {
	want := 0.5 / math.Sqrt(math.Pi)
	for _, phi := range []float64{0, 0.7, math.Pi} {
		y, err := SphericalHarmonic(0, 0, 1.3, phi)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(real(y)-want) > 1e-12 || imag(y) != 0 {
			t.Errorf("Y00(phi=%g) = %v, want %v", phi, y, want)
		}
	}
}

func TestSphericalHarmonic_Y10Pole(t *testing.T) {
	y, err := SphericalHarmonic(1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(3 / (4 * math.Pi))
	if math.Abs(real(y)-want) > 1e-12 {
		t.Errorf("Y10 at north pole = %v, want %v", real(y), want)
	}
}

func TestSphericalHarmonic_Y11(t *testing.T) {
	theta, phi := 0.4, 1.1
	y, err := SphericalHarmonic(1, 1, theta, phi)
	if err != nil {
		t.Fatal(err)
	}
	want := complex(-0.5*math.Sqrt(3/(2*math.Pi))*math.Sin(phi), 0) * cmplx.Exp(complex(0, theta))
	if cmplx.Abs(y-want) > 1e-12 {
		t.Errorf("Y11 = %v, want %v", y, want)
	}
}

func TestSphericalHarmonic_NegativeOrderConjugate(t *testing.T) {
	theta, phi := 2.1, 0.6
	for l := 1; l <= 4; l++ {
		for m := 1; m <= l; m++ {
			pos, err := SphericalHarmonic(l, m, theta, phi)
			if err != nil {
				t.Fatal(err)
			}
			neg, err := SphericalHarmonic(l, -m, theta, phi)
			if err != nil {
				t.Fatal(err)
			}
			want := cmplx.Conj(pos)
			if m%2 == 1 {
				want = -want
			}
			if cmplx.Abs(neg-want) > 1e-10 {
				t.Errorf("Y_%d^-%d = %v, want %v", l, m, neg, want)
			}
		}
	}
}

func TestSphericalHarmonic_OrderAboveDegree(t *testing.T) {
	y, err := SphericalHarmonic(1, 2, 0.3, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	if y != 0 {
		t.Errorf("expected zero for |m|>l, got %v", y)
	}
}
