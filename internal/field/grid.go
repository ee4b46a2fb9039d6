package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is a mesh built from two 1D sample sequences. U varies along
// columns and V along rows, so X.At(i, j) == U[j] and Y.At(i, j) == V[i].
type Grid struct {
	U, V []float64
	X, Y *mat.Dense
}

// Linspace returns n evenly spaced samples from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrInvalidGrid, n)
	}
	s := floats.Span(make([]float64, n), start, stop)
	s[n-1] = stop
	return s, nil
}

// Meshgrid combines u and v into matching coordinate matrices of shape
// (len(v), len(u)).
func Meshgrid(u, v []float64) *Grid {
	rows, cols := len(v), len(u)
	x := mat.NewDense(rows, cols, nil)
	y := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		x.SetRow(i, u)
		for j := 0; j < cols; j++ {
			y.Set(i, j, v[i])
		}
	}
	return &Grid{U: u, V: v, X: x, Y: y}
}

// Dims returns the grid shape as (rows, cols).
func (g *Grid) Dims() (int, int) {
	return len(g.V), len(g.U)
}

func axes(u0, u1 float64, nu int, v0, v1 float64, nv int) (*Grid, error) {
	u, err := Linspace(u0, u1, nu)
	if err != nil {
		return nil, err
	}
	v, err := Linspace(v0, v1, nv)
	if err != nil {
		return nil, err
	}
	return Meshgrid(u, v), nil
}
