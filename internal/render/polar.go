package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/pdeviz/internal/field"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	defaultLevels = 20
	polarMin      = -1.0
	polarMax      = 1.0
	spokeStep     = 30
)

// polarXY places angle theta (radians, 0 at north, clockwise) and radius r
// on the page.
func polarXY(theta, r float64) (float64, float64) {
	s, c := math.Sincos(theta)
	return r * s, r * c
}

// polarCells fills annular cells of a polar grid with banded colours.
type polarCells struct {
	cells []quad
	rmax  float64
}

func newPolarCells(f *field.Field, cm palette.ColorMap, levels int) *polarCells {
	theta, radius := f.Grid.U, f.Grid.V
	pc := &polarCells{rmax: radius[len(radius)-1]}
	rows, cols := f.Dims()
	band := (polarMax - polarMin) / float64(levels)

	for i := 0; i+1 < rows; i++ {
		for j := 0; j+1 < cols; j++ {
			corners := [4][2]int{{i, j}, {i, j + 1}, {i + 1, j + 1}, {i + 1, j}}
			sum, ok := 0.0, true
			for _, c := range corners {
				if !f.Visible(c[0], c[1]) {
					ok = false
					break
				}
				sum += f.Values.At(c[0], c[1])
			}
			if !ok {
				continue
			}

			v := math.Max(polarMin, math.Min(polarMax, sum/4))
			k := math.Min(float64(levels-1), math.Floor((v-polarMin)/band))
			var q quad
			for n, c := range corners {
				x, y := polarXY(theta[c[1]], radius[c[0]])
				q.pts[n] = point2{x, y}
			}
			q.color = colorAt(cm, polarMin+(k+0.5)*band)
			pc.cells = append(pc.cells, q)
		}
	}
	return pc
}

func (pc *polarCells) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pts := make([]vg.Point, 4)
	for _, q := range pc.cells {
		for n, p := range q.pts {
			pts[n] = vg.Point{X: trX(p.X), Y: trY(p.Y)}
		}
		c.FillPolygon(q.color, c.ClipPolygonXY(pts))
	}
}

func (pc *polarCells) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -pc.rmax, pc.rmax, -pc.rmax, pc.rmax
}

// Len returns the number of filled cells.
func (pc *polarCells) Len() int { return len(pc.cells) }

// PolarContour draws a filled contour of a field sampled over
// (theta, r) on polar axes: theta=0 points north and angles increase
// clockwise. The colour scale is fixed to [-1, 1] and masked points are
// left blank.
func PolarContour(f *field.Field, opts Options) (*Figure, error) {
	if f.Grid == nil {
		return nil, fmt.Errorf("%w: %s has no grid", ErrMissingCoords, f.Family)
	}
	cm, err := Colormap(opts.colormapOr("diverging"))
	if err != nil {
		return nil, err
	}
	cm = scaled(cm, polarMin, polarMax)
	levels := opts.Levels
	if levels <= 0 {
		levels = defaultLevels
	}

	cells := newPolarCells(f, cm, levels)
	p := plot.New()
	p.Title.Text = title("Multipole", f.Label)
	p.HideAxes()
	p.Add(cells)

	if err := addPolarGuides(p, cells.rmax); err != nil {
		return nil, err
	}
	s := cells.rmax * 1.15
	p.X.Min, p.X.Max = -s, s
	p.Y.Min, p.Y.Max = -s, s

	return &Figure{
		Title:    p.Title.Text,
		Kind:     KindPolar,
		Plot:     p,
		ColorBar: colorBar(cm, "Z"),
	}, nil
}

// addPolarGuides draws range rings, angle spokes and angle labels.
func addPolarGuides(p *plot.Plot, rmax float64) error {
	guide := draw.LineStyle{
		Color:  color.Gray{Y: 140},
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(2), vg.Points(2)},
	}

	for r := 1.0; r <= rmax+1e-9; r++ {
		ring := make(plotter.XYs, 0, 121)
		for k := 0; k <= 120; k++ {
			x, y := polarXY(2*math.Pi*float64(k)/120, r)
			ring = append(ring, plotter.XY{X: x, Y: y})
		}
		line, err := plotter.NewLine(ring)
		if err != nil {
			return err
		}
		line.LineStyle = guide
		p.Add(line)
	}

	var labels plotter.XYLabels
	for deg := 0; deg < 360; deg += spokeStep {
		rad := float64(deg) * math.Pi / 180
		x, y := polarXY(rad, rmax)
		spoke, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: x, Y: y}})
		if err != nil {
			return err
		}
		spoke.LineStyle = guide
		p.Add(spoke)

		lx, ly := polarXY(rad, rmax*1.08)
		labels.XYs = append(labels.XYs, plotter.XY{X: lx, Y: ly})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%d°", deg))
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}
