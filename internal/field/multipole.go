package field

import (
	"fmt"
	"math"

	"github.com/san-kum/pdeviz/internal/special"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultThetaSamples  = 500
	DefaultRadialSamples = 100
	DefaultRMax          = 5.0
	DefaultRMask         = 1.0
)

// MultipoleParams selects the degree-l axial multipole potential.
// Points with r < RMask are masked to keep the origin singularity off
// the plot.
type MultipoleParams struct {
	L             int
	ThetaSamples  int
	RadialSamples int
	RMax          float64
	RMask         float64
}

func DefaultMultipoleParams(l int) MultipoleParams {
	return MultipoleParams{
		L:             l,
		ThetaSamples:  DefaultThetaSamples,
		RadialSamples: DefaultRadialSamples,
		RMax:          DefaultRMax,
		RMask:         DefaultRMask,
	}
}

func (p MultipoleParams) Validate() error {
	if p.L < 0 {
		return fmt.Errorf("%w: degree %d must be non-negative", ErrParameterBounds, p.L)
	}
	if !(p.RMax > 0) || p.RMask < 0 {
		return fmt.Errorf("%w: radius range [%g, %g]", ErrParameterBounds, p.RMask, p.RMax)
	}
	return nil
}

// Multipole samples Z = P_l(cos theta) / r^(l+1) over theta in [-pi, pi]
// (columns) and r in [0, RMax] (rows).
func Multipole(p MultipoleParams) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g, err := axes(-math.Pi, math.Pi, p.ThetaSamples, 0, p.RMax, p.RadialSamples)
	if err != nil {
		return nil, err
	}

	ang := make([]float64, len(g.U))
	for j, theta := range g.U {
		v, err := special.Legendre(p.L, math.Cos(theta))
		if err != nil {
			return nil, &EvalError{Family: FamilyMultipole, Col: j, Wrapped: err}
		}
		ang[j] = v
	}

	rows, cols := g.Dims()
	z := mat.NewDense(rows, cols, nil)
	mask := NewMask(rows, cols)
	for i, r := range g.V {
		if r < p.RMask {
			for j := 0; j < cols; j++ {
				mask.Hide(i, j)
				z.Set(i, j, nan)
			}
			continue
		}
		falloff := math.Pow(r, float64(p.L+1))
		for j := range ang {
			z.Set(i, j, ang[j]/falloff)
		}
	}

	return &Field{
		Family: FamilyMultipole,
		Label:  fmt.Sprintf("l=%d", p.L),
		Grid:   g,
		Values: z,
		Mask:   mask,
	}, nil
}
