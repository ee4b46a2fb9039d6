package field

import (
	"fmt"

	"github.com/san-kum/pdeviz/internal/special"
)

const DefaultCurveSamples = 500

type LegendreParams struct {
	L       int
	Samples int
}

func DefaultLegendreParams(l int) LegendreParams {
	return LegendreParams{L: l, Samples: DefaultCurveSamples}
}

// Legendre samples P_l(x) over x in [-1, 1].
func Legendre(p LegendreParams) (*Curve, error) {
	xs, err := Linspace(-1, 1, p.Samples)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		v, err := special.Legendre(p.L, x)
		if err != nil {
			return nil, &EvalError{Family: FamilyLegendre, Col: i, Wrapped: err}
		}
		ys[i] = v
	}
	return &Curve{Family: FamilyLegendre, Label: fmt.Sprintf("l=%d", p.L), X: xs, Y: ys}, nil
}
