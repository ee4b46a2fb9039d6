package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

var colormaps = map[string]func() palette.ColorMap{
	"diverging": func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"kindlmann": moreland.Kindlmann,
	"extended":  moreland.ExtendedKindlmann,
	"blackbody": moreland.BlackBody,
}

// Colormap resolves a colour map by name. The empty name is "diverging".
func Colormap(name string) (palette.ColorMap, error) {
	if name == "" {
		name = "diverging"
	}
	fn, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownColormap, name, ColormapNames())
	}
	return fn(), nil
}

// ColormapNames lists the registered colour maps.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scaled returns cm spanning [lo, hi], widening an empty range so the
// map stays valid for constant fields.
func scaled(cm palette.ColorMap, lo, hi float64) palette.ColorMap {
	if !(hi > lo) {
		lo, hi = lo-0.5, hi+0.5
	}
	cm.SetMax(hi)
	cm.SetMin(lo)
	return cm
}

// colorAt looks up v, clamping it into the map's range.
func colorAt(cm palette.ColorMap, v float64) color.Color {
	if math.IsNaN(v) {
		return color.Transparent
	}
	v = math.Max(cm.Min(), math.Min(cm.Max(), v))
	c, err := cm.At(v)
	if err != nil {
		return color.Gray{Y: 128}
	}
	return c
}

// colorBar builds the side plot showing the colour scale.
func colorBar(cm palette.ColorMap, label string) *plot.Plot {
	p := plot.New()
	p.Title.Text = label
	p.HideX()
	p.Y.Padding = 0
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	return p
}
