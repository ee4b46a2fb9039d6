package field

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Field is a scalar field sampled over a grid. Values has the grid's shape.
type Field struct {
	Family Family
	Label  string
	Grid   *Grid
	Values *mat.Dense

	// Raw holds the values before normalisation; nil if none was applied.
	Raw *mat.Dense
	// Mask marks points suppressed from rendering; nil if nothing is masked.
	Mask *Mask
	// Sphere carries unit-sphere coordinates for fields defined on a sphere.
	Sphere *SphereCoords
	// Degenerate is set when the field is constant: a membrane with a zero
	// mode number or amplitude, or a harmonic that normalisation could not rescale.
	Degenerate bool
}

// Dims returns the field shape as (rows, cols).
func (f *Field) Dims() (int, int) {
	return f.Values.Dims()
}

// Row returns a copy of row i.
func (f *Field) Row(i int) []float64 {
	return mat.Row(nil, i, f.Values)
}

// Col returns a copy of column j.
func (f *Field) Col(j int) []float64 {
	return mat.Col(nil, j, f.Values)
}

// Visible reports whether point (i, j) is rendered.
func (f *Field) Visible(i, j int) bool {
	return f.Mask == nil || !f.Mask.Hidden(i, j)
}

// SphereCoords are Cartesian coordinates of grid points on the unit sphere.
type SphereCoords struct {
	X, Y, Z *mat.Dense
}

// Curve is a 1D function sampled at increasing X.
type Curve struct {
	Family Family
	Label  string
	X, Y   []float64
}

// Len returns the number of samples.
func (c *Curve) Len() int { return len(c.X) }

// XY returns sample i; it satisfies gonum plotter.XYer.
func (c *Curve) XY(i int) (float64, float64) { return c.X[i], c.Y[i] }

// Mask flags grid points hidden from rendering without changing the grid shape.
type Mask struct {
	rows, cols int
	hidden     []bool
}

// NewMask returns a mask of the given shape with every point visible.
func NewMask(rows, cols int) *Mask {
	return &Mask{rows: rows, cols: cols, hidden: make([]bool, rows*cols)}
}

// Hide marks point (i, j) as hidden.
func (m *Mask) Hide(i, j int) { m.hidden[i*m.cols+j] = true }

// Hidden reports whether point (i, j) is hidden.
func (m *Mask) Hidden(i, j int) bool { return m.hidden[i*m.cols+j] }

// Count returns the number of hidden points.
func (m *Mask) Count() int {
	n := 0
	for _, h := range m.hidden {
		if h {
			n++
		}
	}
	return n
}

var nan = math.NaN()
