package field

import (
	"fmt"
	"math"

	"github.com/san-kum/pdeviz/internal/special"
	"gonum.org/v1/gonum/mat"
)

const DefaultSphereSamples = 100

// HarmonicParams selects Y_l^m. |m| <= l is the physical convention but is
// not enforced; outside it the field is identically zero.
type HarmonicParams struct {
	L, M    int
	Samples int
	// Strict turns a constant field into ErrConstantField instead of a
	// uniform 0.5.
	Strict bool
}

func DefaultHarmonicParams(l, m int) HarmonicParams {
	return HarmonicParams{L: l, M: m, Samples: DefaultSphereSamples}
}

// Harmonic samples Re Y_l^m over polar angle phi in [0, pi] (columns) and
// azimuth theta in [0, 2pi] (rows), then min-max normalises to [0, 1].
func Harmonic(p HarmonicParams) (*Field, error) {
	g, err := axes(0, math.Pi, p.Samples, 0, 2*math.Pi, p.Samples)
	if err != nil {
		return nil, err
	}

	rows, cols := g.Dims()
	raw := mat.NewDense(rows, cols, nil)
	sphere := &SphereCoords{
		X: mat.NewDense(rows, cols, nil),
		Y: mat.NewDense(rows, cols, nil),
		Z: mat.NewDense(rows, cols, nil),
	}

	for i, theta := range g.V {
		st, ct := math.Sincos(theta)
		for j, phi := range g.U {
			y, err := special.SphericalHarmonic(p.L, p.M, theta, phi)
			if err != nil {
				return nil, &EvalError{Family: FamilyHarmonic, Row: i, Col: j, Wrapped: err}
			}
			raw.Set(i, j, real(y))

			sp, cp := math.Sincos(phi)
			sphere.X.Set(i, j, sp*ct)
			sphere.Y.Set(i, j, sp*st)
			sphere.Z.Set(i, j, cp)
		}
	}

	values := mat.DenseCopyOf(raw)
	degenerate := NormalizeMinMax(values)
	if degenerate && p.Strict {
		return nil, fmt.Errorf("%w: Y_%d^%d", ErrConstantField, p.L, p.M)
	}

	return &Field{
		Family:     FamilyHarmonic,
		Label:      fmt.Sprintf("l=%d, m=%d", p.L, p.M),
		Grid:       g,
		Values:     values,
		Raw:        raw,
		Sphere:     sphere,
		Degenerate: degenerate,
	}, nil
}
