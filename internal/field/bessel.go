package field

import (
	"fmt"

	"github.com/san-kum/pdeviz/internal/special"
)

const DefaultBesselXMax = 10.0

type BesselParams struct {
	N       int
	Samples int
	XMax    float64
}

func DefaultBesselParams(n int) BesselParams {
	return BesselParams{N: n, Samples: DefaultCurveSamples, XMax: DefaultBesselXMax}
}

// Bessel samples J_n(x) over x in [0, XMax].
func Bessel(p BesselParams) (*Curve, error) {
	if !(p.XMax > 0) {
		return nil, fmt.Errorf("%w: x range [0, %g]", ErrParameterBounds, p.XMax)
	}
	xs, err := Linspace(0, p.XMax, p.Samples)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = special.BesselJ(p.N, x)
	}
	return &Curve{Family: FamilyBessel, Label: fmt.Sprintf("n=%d", p.N), X: xs, Y: ys}, nil
}
