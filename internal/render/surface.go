package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/pdeviz/internal/field"
	"github.com/san-kum/pdeviz/internal/viz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	defaultSurfaceCount = 50
	defaultSphereCount  = 100
	surfaceHeight       = 0.8
)

// Options tune figure construction. Zero values pick per-kind defaults.
type Options struct {
	Colormap string
	Camera   *viz.Camera
	// Count caps the number of mesh cells per axis on 3D figures.
	Count int
	// Levels is the number of filled bands on polar contour figures.
	Levels int
}

func (o Options) camera() *viz.Camera {
	if o.Camera != nil {
		return o.Camera
	}
	return viz.NewCamera()
}

func (o Options) colormapOr(name string) string {
	if o.Colormap != "" {
		return o.Colormap
	}
	return name
}

func (o Options) countOr(n int) int {
	if o.Count > 0 {
		return o.Count
	}
	return n
}

// Surface draws Z over the (x, y) grid as a shaded 3D surface inside a
// unit box, with a colour bar for Z.
func Surface(f *field.Field, opts Options) (*Figure, error) {
	if f.Grid == nil {
		return nil, fmt.Errorf("%w: %s has no grid", ErrMissingCoords, f.Family)
	}
	cm, err := Colormap(opts.colormapOr("kindlmann"))
	if err != nil {
		return nil, err
	}

	u, v := f.Grid.U, f.Grid.V
	cu, hu := center(u)
	cv, hv := center(v)
	zlo, zhi := finiteRange(f.Values.RawMatrix().Data)
	zscale := math.Max(math.Abs(zlo), math.Abs(zhi))
	if zscale == 0 {
		zscale = 1
	}
	cm = scaled(cm, zlo, zhi)

	rows, cols := f.Dims()
	src := meshSource{
		rows: rows,
		cols: cols,
		point: func(i, j int) viz.Vec3 {
			return viz.Vec3{
				X: (u[j] - cu) / hu,
				Y: (v[i] - cv) / hv,
				Z: f.Values.At(i, j) / zscale * surfaceHeight,
			}
		},
		value:   f.Values.At,
		visible: f.Visible,
	}

	cam := opts.camera()
	mesh := newMesh(src, opts.countOr(defaultSurfaceCount), cam, cm)
	box := viz.BoxWireframe(viz.Vec3{X: -1, Y: -1, Z: -surfaceHeight}, viz.Vec3{X: 1, Y: 1, Z: surfaceHeight})
	wire := newWire(box, cam, draw.LineStyle{Color: color.Gray{Y: 150}, Width: vg.Points(0.5)})

	labels, err := axisLabels(cam, surfaceHeight)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title("Membrane", f.Label)
	p.HideAxes()
	p.Add(wire, mesh, labels)
	squareRange(p, mesh)

	return &Figure{
		Title:    p.Title.Text,
		Kind:     KindSurface,
		Plot:     p,
		ColorBar: colorBar(cm, "Z"),
	}, nil
}

// Sphere paints the unit sphere coloured by the field's values, which are
// expected in [0, 1]. Axes are hidden.
func Sphere(f *field.Field, opts Options) (*Figure, error) {
	if f.Sphere == nil {
		return nil, fmt.Errorf("%w: %s has no sphere coordinates", ErrMissingCoords, f.Family)
	}
	cm, err := Colormap(opts.colormapOr("diverging"))
	if err != nil {
		return nil, err
	}
	cm = scaled(cm, 0, 1)

	rows, cols := f.Dims()
	s := f.Sphere
	src := meshSource{
		rows: rows,
		cols: cols,
		point: func(i, j int) viz.Vec3 {
			return viz.Vec3{X: s.X.At(i, j), Y: s.Y.At(i, j), Z: s.Z.At(i, j)}
		},
		value:   f.Values.At,
		visible: f.Visible,
	}
	mesh := newMesh(src, opts.countOr(defaultSphereCount), opts.camera(), cm)

	p := plot.New()
	p.Title.Text = title("Spherical harmonic", f.Label)
	p.HideAxes()
	p.Add(mesh)
	squareRange(p, mesh)

	return &Figure{Title: p.Title.Text, Kind: KindSphere, Plot: p}, nil
}

func axisLabels(cam *viz.Camera, h float64) (*plotter.Labels, error) {
	anchors := []struct {
		at   viz.Vec3
		text string
	}{
		{viz.Vec3{X: 0, Y: -1.25, Z: -h}, "x"},
		{viz.Vec3{X: 1.25, Y: 0, Z: -h}, "y"},
		{viz.Vec3{X: -1.25, Y: -1.25, Z: 0}, "Z"},
	}
	var xyl plotter.XYLabels
	for _, a := range anchors {
		x, y, _, ok := cam.ProjectPoint(a.at)
		if !ok {
			continue
		}
		xyl.XYs = append(xyl.XYs, plotter.XY{X: x, Y: y})
		xyl.Labels = append(xyl.Labels, a.text)
	}
	return plotter.NewLabels(xyl)
}

// squareRange gives both axes the same symmetric span around the mesh.
func squareRange(p *plot.Plot, m *meshPlotter) {
	xmin, xmax, ymin, ymax := m.DataRange()
	s := 1.05 * math.Max(math.Max(math.Abs(xmin), math.Abs(xmax)), math.Max(math.Abs(ymin), math.Abs(ymax)))
	p.X.Min, p.X.Max = -s, s
	p.Y.Min, p.Y.Max = -s, s
}

func center(axis []float64) (mid, half float64) {
	lo, hi := axis[0], axis[len(axis)-1]
	half = (hi - lo) / 2
	if half == 0 {
		half = 1
	}
	return (lo + hi) / 2, half
}

func finiteRange(data []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}

func title(prefix, label string) string {
	if label == "" {
		return prefix
	}
	return prefix + " " + label
}
