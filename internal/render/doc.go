// Package render turns sampled fields and curves into static figures.
//
// Figures are explicit handles built on gonum/plot. Nothing is drawn into
// shared state; callers keep the [Figure] and pass it along to overlay
// further curves:
//
//	fig := render.NewFigure("Legendre polynomials")
//	for l := 0; l < 4; l++ {
//	    c, _ := field.Legendre(field.DefaultLegendreParams(l))
//	    fig.AddCurve(c)
//	}
//	err := fig.Save("legendre.png", 6*vg.Inch, 4*vg.Inch)
//
// Three-dimensional figures ([Surface], [Sphere]) project the sampled mesh
// through a [viz.Camera] and paint quads back to front.
package render
