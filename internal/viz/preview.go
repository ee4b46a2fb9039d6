package viz

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pdeviz/internal/field"
)

// shadeRamp orders characters from empty to dense.
const shadeRamp = " .:-=+*#%@"

// surfaceHeight is the half-height of the box a surface is drawn in.
const surfaceHeight = 0.8

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.DarkOrange,
	asciigraph.Green,
	asciigraph.DarkRed,
	asciigraph.DarkMagenta,
	asciigraph.Goldenrod,
	asciigraph.DarkCyan,
}

// CurvePreview plots curves as one asciigraph chart, one colour and legend
// entry per curve.
func CurvePreview(curves []*field.Curve, width, height int, caption string) string {
	if len(curves) == 0 {
		return ""
	}
	data := make([][]float64, len(curves))
	legends := make([]string, len(curves))
	colors := make([]asciigraph.AnsiColor, len(curves))
	for i, c := range curves {
		data[i] = c.Y
		legends[i] = c.Label
		colors[i] = seriesColors[i%len(seriesColors)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

// SurfaceWireframe returns grid lines of Z over (x, y), fitted into the
// box [-1, 1] x [-1, 1] x [-0.8, 0.8]. At most lines lines are drawn along
// each axis.
func SurfaceWireframe(f *field.Field, lines int) *Wireframe {
	u, v := f.Grid.U, f.Grid.V
	cu, hu := centerOf(u)
	cv, hv := centerOf(v)
	zscale := 0.0
	for _, z := range f.Values.RawMatrix().Data {
		if !math.IsNaN(z) {
			zscale = math.Max(zscale, math.Abs(z))
		}
	}
	if zscale == 0 {
		zscale = 1
	}

	point := func(i, j int) Vec3 {
		return Vec3{
			X: (u[j] - cu) / hu,
			Y: (v[i] - cv) / hv,
			Z: f.Values.At(i, j) / zscale * surfaceHeight,
		}
	}
	w := gridWireframe(f, lines, point)
	w.Merge(BoxWireframe(Vec3{-1, -1, -surfaceHeight}, Vec3{1, 1, surfaceHeight}))
	return w
}

// LobeWireframe draws a harmonic as the surface r = |Y| / max|Y| over the
// unit-sphere directions, the usual picture of its lobes. The raw values
// are used when present, else the normalised values are recentred on 0.5.
func LobeWireframe(f *field.Field, lines int) *Wireframe {
	s := f.Sphere
	src := f.Raw
	offset := 0.0
	if src == nil {
		src, offset = f.Values, 0.5
	}
	peak := 0.0
	for _, x := range src.RawMatrix().Data {
		if !math.IsNaN(x) {
			peak = math.Max(peak, math.Abs(x-offset))
		}
	}
	if peak == 0 {
		peak = 1
	}

	point := func(i, j int) Vec3 {
		r := math.Abs(src.At(i, j)-offset) / peak
		return Vec3{X: s.X.At(i, j), Y: s.Y.At(i, j), Z: s.Z.At(i, j)}.Scale(r)
	}
	return gridWireframe(f, lines, point)
}

// gridWireframe strokes every k-th row and column of a mesh, skipping
// segments that touch hidden points.
func gridWireframe(f *field.Field, lines int, point func(i, j int) Vec3) *Wireframe {
	rows, cols := f.Dims()
	rs, cs := stride(rows, lines), stride(cols, lines)
	w := NewWireframe()
	seg := func(i0, j0, i1, j1 int) {
		if f.Visible(i0, j0) && f.Visible(i1, j1) {
			w.AddEdge(point(i0, j0), point(i1, j1))
		}
	}
	for i := 0; i < rows; i += rs {
		for j := 0; j+1 < cols; j++ {
			seg(i, j, i, j+1)
		}
	}
	for j := 0; j < cols; j += cs {
		for i := 0; i+1 < rows; i++ {
			seg(i, j, i+1, j)
		}
	}
	return w
}

// SurfacePreview draws a membrane-style field as a Braille wireframe.
func SurfacePreview(f *field.Field, cam *Camera, width, height, lines int) string {
	c := NewCanvas(width, height)
	Render3D(c, SurfaceWireframe(f, lines), cam)
	return c.String()
}

// SpherePreview draws the lobes of a spherical harmonic field.
func SpherePreview(f *field.Field, cam *Camera, width, height, lines int) string {
	if f.Sphere == nil {
		return ""
	}
	c := NewCanvas(width, height)
	Render3D(c, LobeWireframe(f, lines), cam)
	return c.String()
}

// Shading is a character rendering of a scalar field. Signs holds the
// sign of the value behind each character, 0 for blanks.
type Shading struct {
	Rows  []string
	Signs [][]int
}

func (s Shading) String() string {
	return strings.Join(s.Rows, "\n") + "\n"
}

// PolarPreview shades a field sampled over (theta, r) with theta=0 at the
// top and angles increasing clockwise. Character density follows |value|
// clamped to 1; masked points and points past the outer radius are blank.
// Terminal cells are about twice as tall as wide, so each row covers twice
// the vertical distance of a column.
func PolarPreview(f *field.Field, width, height int) Shading {
	theta, radius := f.Grid.U, f.Grid.V
	rmax := radius[len(radius)-1]
	ramp := []rune(shadeRamp)
	sh := Shading{Rows: make([]string, height), Signs: make([][]int, height)}

	for row := 0; row < height; row++ {
		line := make([]rune, width)
		signs := make([]int, width)
		y := rmax * (1 - 2*(float64(row)+0.5)/float64(height))
		for col := 0; col < width; col++ {
			x := rmax * (2*(float64(col)+0.5)/float64(width) - 1)
			line[col] = ' '
			r := math.Hypot(x, y)
			if r > rmax {
				continue
			}
			i := nearest(radius, r)
			j := nearest(theta, wrapAngle(math.Atan2(x, y), theta))
			// r may round up onto a visible row from inside a masked region.
			if !f.Visible(i, j) || !f.Visible(below(radius, r), j) {
				continue
			}
			val := f.Values.At(i, j)
			k := int(math.Min(1, math.Abs(val)) * float64(len(ramp)-1))
			line[col] = ramp[k]
			switch {
			case val > 0:
				signs[col] = 1
			case val < 0:
				signs[col] = -1
			}
		}
		sh.Rows[row] = string(line)
		sh.Signs[row] = signs
	}
	return sh
}

// wrapAngle shifts a into the span of the theta axis.
func wrapAngle(a float64, axis []float64) float64 {
	lo := axis[0]
	for a < lo {
		a += 2 * math.Pi
	}
	for a > lo+2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// nearest returns the index of the sample of a uniform axis closest to x.
func nearest(axis []float64, x float64) int {
	n := len(axis)
	span := axis[n-1] - axis[0]
	if span == 0 {
		return 0
	}
	i := int(math.Round((x - axis[0]) / span * float64(n-1)))
	return max(0, min(n-1, i))
}

// below returns the last index of axis whose sample does not exceed x.
func below(axis []float64, x float64) int {
	n := len(axis)
	span := axis[n-1] - axis[0]
	if span == 0 {
		return 0
	}
	i := int(math.Floor((x - axis[0]) / span * float64(n-1)))
	return max(0, min(n-1, i))
}

func stride(n, lines int) int {
	if lines <= 1 || n <= lines {
		return 1
	}
	return (n - 1) / (lines - 1)
}

func centerOf(axis []float64) (mid, half float64) {
	lo, hi := axis[0], axis[len(axis)-1]
	half = (hi - lo) / 2
	if half == 0 {
		half = 1
	}
	return (lo + hi) / 2, half
}
