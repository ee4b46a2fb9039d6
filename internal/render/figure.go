package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/pdeviz/internal/field"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Kind is the drawing style of a figure.
type Kind int

const (
	KindLine Kind = iota
	KindSurface
	KindPolar
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindSurface:
		return "surface"
	case KindPolar:
		return "polar"
	case KindSphere:
		return "sphere"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Default output size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4.5 * vg.Inch
)

// colorBarShare is the fraction of the canvas width given to a colour bar.
const colorBarShare = 0.16

// Figure is a finished or in-progress rendering. ColorBar is nil for
// figures without a colour scale.
type Figure struct {
	Title    string
	Kind     Kind
	Plot     *plot.Plot
	ColorBar *plot.Plot

	curves int
}

// NewFigure returns an empty line figure with a grid and legend.
func NewFigure(title string) *Figure {
	p := plot.New()
	p.Title.Text = title
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return &Figure{Title: title, Kind: KindLine, Plot: p}
}

// AddCurve overlays c on the figure with the next colour in the cycle and
// a legend entry for its label.
func (f *Figure) AddCurve(c *field.Curve) error {
	if f.Kind != KindLine {
		return fmt.Errorf("%w: add curve to %s figure", ErrFigureKind, f.Kind)
	}
	line, err := plotter.NewLine(c)
	if err != nil {
		return fmt.Errorf("render: curve %s: %w", c.Label, err)
	}
	line.Color = plotutil.Color(f.curves)
	line.Width = vg.Points(1.5)
	f.Plot.Add(line)
	f.Plot.Legend.Add(c.Label, line)
	f.curves++
	return nil
}

// Curves returns the number of curves drawn on a line figure.
func (f *Figure) Curves() int { return f.curves }

// Draw renders the figure onto dc, reserving a strip on the right for the
// colour bar when there is one.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.ColorBar == nil {
		f.Plot.Draw(dc)
		return
	}
	width := dc.Max.X - dc.Min.X
	bar := width * colorBarShare
	f.Plot.Draw(draw.Crop(dc, 0, -bar, 0, 0))
	f.ColorBar.Draw(draw.Crop(dc, width-bar, 0, 0, 0))
}

// WriteTo encodes the figure in the given format (png, svg, pdf, eps, jpg, tif).
func (f *Figure) WriteTo(w io.Writer, format string, width, height vg.Length) (int64, error) {
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

// Save writes the figure to path, taking the format from the extension.
func (f *Figure) Save(path string, width, height vg.Length) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("render: no file extension in %q", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteTo(file, format, width, height); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
