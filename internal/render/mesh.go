package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/san-kum/pdeviz/internal/viz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// point2 is a projected view-plane coordinate.
type point2 struct{ X, Y float64 }

type quad struct {
	pts   [4]point2
	depth float64
	color color.Color
}

// meshPlotter paints projected quads back to front. It implements
// plot.Plotter and plot.DataRanger.
type meshPlotter struct {
	quads                  []quad
	xmin, xmax, ymin, ymax float64
}

// meshSource describes a rows x cols mesh of 3D points with a scalar per point.
type meshSource struct {
	rows, cols int
	point      func(i, j int) viz.Vec3
	value      func(i, j int) float64
	visible    func(i, j int) bool
}

// strideFor picks the step that keeps at most count cells along an axis.
func strideFor(n, count int) int {
	if count <= 0 || n <= count {
		return 1
	}
	return int(math.Ceil(float64(n-1) / float64(count)))
}

// indices returns 0, s, 2s, ... and always ends at n-1.
func indices(n, s int) []int {
	idx := make([]int, 0, n/s+2)
	for i := 0; i < n-1; i += s {
		idx = append(idx, i)
	}
	return append(idx, n-1)
}

func newMesh(src meshSource, count int, cam *viz.Camera, cm palette.ColorMap) *meshPlotter {
	m := &meshPlotter{
		xmin: math.Inf(1), xmax: math.Inf(-1),
		ymin: math.Inf(1), ymax: math.Inf(-1),
	}
	ri := indices(src.rows, strideFor(src.rows, count))
	ci := indices(src.cols, strideFor(src.cols, count))

	for a := 0; a+1 < len(ri); a++ {
		for b := 0; b+1 < len(ci); b++ {
			corners := [4][2]int{{ri[a], ci[b]}, {ri[a], ci[b+1]}, {ri[a+1], ci[b+1]}, {ri[a+1], ci[b]}}
			q, ok := m.project(src, corners, cam)
			if !ok {
				continue
			}
			sum := 0.0
			for _, c := range corners {
				sum += src.value(c[0], c[1])
			}
			q.color = colorAt(cm, sum/4)
			m.quads = append(m.quads, q)
		}
	}
	sort.SliceStable(m.quads, func(i, j int) bool { return m.quads[i].depth < m.quads[j].depth })
	return m
}

func (m *meshPlotter) project(src meshSource, corners [4][2]int, cam *viz.Camera) (quad, bool) {
	var q quad
	for k, c := range corners {
		if src.visible != nil && !src.visible(c[0], c[1]) {
			return q, false
		}
		x, y, d, ok := cam.ProjectPoint(src.point(c[0], c[1]))
		if !ok {
			return q, false
		}
		q.pts[k] = point2{x, y}
		q.depth += d / 4
	}
	for _, p := range q.pts {
		m.xmin, m.xmax = math.Min(m.xmin, p.X), math.Max(m.xmax, p.X)
		m.ymin, m.ymax = math.Min(m.ymin, p.Y), math.Max(m.ymax, p.Y)
	}
	return q, true
}

func (m *meshPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	seam := draw.LineStyle{Width: vg.Points(0.3)}
	pts := make([]vg.Point, 5)
	for _, q := range m.quads {
		for k, p := range q.pts {
			pts[k] = vg.Point{X: trX(p.X), Y: trY(p.Y)}
		}
		pts[4] = pts[0]
		c.FillPolygon(q.color, c.ClipPolygonXY(pts[:4]))
		seam.Color = q.color
		c.StrokeLines(seam, c.ClipLinesXY(pts)...)
	}
}

func (m *meshPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(m.quads) == 0 {
		return -1, 1, -1, 1
	}
	return m.xmin, m.xmax, m.ymin, m.ymax
}

// Len returns the number of painted quads.
func (m *meshPlotter) Len() int { return len(m.quads) }

// wirePlotter strokes projected 3D segments such as a bounding box.
type wirePlotter struct {
	segments [][2]point2
	style    draw.LineStyle
}

func newWire(w *viz.Wireframe, cam *viz.Camera, style draw.LineStyle) *wirePlotter {
	wp := &wirePlotter{style: style}
	for _, e := range w.Edges {
		x1, y1, _, ok1 := cam.ProjectPoint(e.Start)
		x2, y2, _, ok2 := cam.ProjectPoint(e.End)
		if ok1 && ok2 {
			wp.segments = append(wp.segments, [2]point2{{x1, y1}, {x2, y2}})
		}
	}
	return wp
}

func (w *wirePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, s := range w.segments {
		line := []vg.Point{
			{X: trX(s[0].X), Y: trY(s[0].Y)},
			{X: trX(s[1].X), Y: trY(s[1].Y)},
		}
		c.StrokeLines(w.style, c.ClipLinesXY(line)...)
	}
}
