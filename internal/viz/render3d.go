package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera orbits the origin of a Z-up world. Yaw turns about the vertical
// axis, Pitch raises the eye above the XY plane.
type Camera struct {
	Yaw, Pitch float64
	Distance   float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Yaw: -math.Pi / 6, Pitch: math.Pi / 6, Distance: 50, Zoom: 1.0}
}

func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, c.Pitch+dPitch))
}
func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// View maps a world point to view space: X right, Y up, Z toward the eye.
func (c *Camera) View(p Vec3) Vec3 {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	x, y := p.X*cy-p.Y*sy, p.X*sy+p.Y*cy
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	return Vec3{X: x, Y: y*sp + p.Z*cp, Z: -y*cp + p.Z*sp}
}

// ProjectPoint returns continuous view-plane coordinates and depth.
// Larger depth is closer to the eye.
func (c *Camera) ProjectPoint(p Vec3) (x, y, depth float64, ok bool) {
	v := c.View(p).Scale(c.Zoom)
	if v.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - v.Z)
	return v.X * scale, v.Y * scale, v.Z, true
}

// Project converts a world point to sub-pixel screen coordinates on a
// sw x sh surface. Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	x, y, depth, ok := c.ProjectPoint(p)
	if !ok {
		return 0, 0, 0, false
	}
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(x*pScale) + sw/2
	sy := int(-y*pScale) + sh/2
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe          { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3)  { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPoint(p Vec3)    { w.Edges = append(w.Edges, Edge{p, p}) }
func (w *Wireframe) Merge(o *Wireframe) { w.Edges = append(w.Edges, o.Edges...) }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render3D draws the wireframe onto the Braille canvas, far edges first.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

// BoxWireframe returns the edges of the axis-aligned box [min, max].
func BoxWireframe(min, max Vec3) *Wireframe {
	w := NewWireframe()
	v := []Vec3{
		{min.X, min.Y, min.Z}, {max.X, min.Y, min.Z}, {max.X, max.Y, min.Z}, {min.X, max.Y, min.Z},
		{min.X, min.Y, max.Z}, {max.X, min.Y, max.Z}, {max.X, max.Y, max.Z}, {min.X, max.Y, max.Z},
	}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	for _, e := range ei {
		w.AddEdge(v[e[0]], v[e[1]])
	}
	return w
}
