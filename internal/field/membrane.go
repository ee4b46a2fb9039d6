package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	DefaultSizeX      = 1.0
	DefaultSizeY      = 2.0
	DefaultAmplitude  = 1.0
	DefaultResolution = 500
)

// MembraneParams selects a standing-wave mode of a rectangular membrane
// clamped on all four edges.
type MembraneParams struct {
	N, M         int
	SizeX, SizeY float64
	Amplitude    float64
	Resolution   int
}

func DefaultMembraneParams(n, m int) MembraneParams {
	return MembraneParams{
		N:          n,
		M:          m,
		SizeX:      DefaultSizeX,
		SizeY:      DefaultSizeY,
		Amplitude:  DefaultAmplitude,
		Resolution: DefaultResolution,
	}
}

func (p MembraneParams) Validate() error {
	if p.N < 0 || p.M < 0 {
		return fmt.Errorf("%w: mode (%d, %d) must be non-negative", ErrParameterBounds, p.N, p.M)
	}
	if !(p.SizeX > 0) || !(p.SizeY > 0) {
		return fmt.Errorf("%w: sizes (%g, %g) must be positive", ErrParameterBounds, p.SizeX, p.SizeY)
	}
	if p.Resolution < 2 {
		return fmt.Errorf("%w: resolution %d", ErrInvalidGrid, p.Resolution)
	}
	return nil
}

// Wavenumbers returns kx = n pi / size_x and ky = m pi / size_y.
func (p MembraneParams) Wavenumbers() (kx, ky float64) {
	return float64(p.N) * math.Pi / p.SizeX, float64(p.M) * math.Pi / p.SizeY
}

// Membrane samples Z = A sin(kx x) sin(ky y) on [0, size_x] x [0, size_y].
// Rows follow y and columns follow x.
func Membrane(p MembraneParams) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g, err := axes(0, p.SizeX, p.Resolution, 0, p.SizeY, p.Resolution)
	if err != nil {
		return nil, err
	}

	kx, ky := p.Wavenumbers()
	sx := make([]float64, len(g.U))
	for j, x := range g.U {
		sx[j] = math.Sin(kx * x)
	}

	rows, cols := g.Dims()
	z := mat.NewDense(rows, cols, nil)
	for i, y := range g.V {
		sy := p.Amplitude * math.Sin(ky*y)
		for j := range sx {
			z.Set(i, j, sy*sx[j])
		}
	}

	// sin(0) vanishes everywhere along an axis with a zero mode number.
	degenerate := p.N == 0 || p.M == 0 || p.Amplitude == 0

	return &Field{
		Family:     FamilyMembrane,
		Label:      fmt.Sprintf("n=%d, m=%d", p.N, p.M),
		Grid:       g,
		Values:     z,
		Degenerate: degenerate,
	}, nil
}
