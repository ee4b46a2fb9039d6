package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pdeviz/internal/field"
	"github.com/san-kum/pdeviz/internal/viz"
	"gonum.org/v1/plot/vg"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

var _ = Describe("Figure", func() {
	It("overlays curves on one explicit handle", func() {
		fig := NewFigure("Legendre")
		for l := 0; l < 3; l++ {
			c, err := field.Legendre(field.DefaultLegendreParams(l))
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.AddCurve(c)).To(Succeed())
		}
		Expect(fig.Curves()).To(Equal(3))
		Expect(fig.Kind).To(Equal(KindLine))
	})

	It("keeps separate figures independent", func() {
		a, b := NewFigure("a"), NewFigure("b")
		c, err := field.Bessel(field.DefaultBesselParams(0))
		Expect(err).NotTo(HaveOccurred())
		Expect(a.AddCurve(c)).To(Succeed())
		Expect(a.Curves()).To(Equal(1))
		Expect(b.Curves()).To(BeZero())
	})

	It("writes PNG and SVG encodings", func() {
		fig := NewFigure("Bessel")
		c, err := field.Bessel(field.DefaultBesselParams(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.AddCurve(c)).To(Succeed())

		var png bytes.Buffer
		_, err = fig.WriteTo(&png, "png", 3*vg.Inch, 2*vg.Inch)
		Expect(err).NotTo(HaveOccurred())
		Expect(png.Bytes()[:8]).To(Equal(pngMagic))

		var svg bytes.Buffer
		_, err = fig.WriteTo(&svg, "svg", 3*vg.Inch, 2*vg.Inch)
		Expect(err).NotTo(HaveOccurred())
		Expect(svg.String()).To(ContainSubstring("<svg"))
	})

	It("saves to a path using its extension", func() {
		fig := NewFigure("empty")
		path := filepath.Join(GinkgoT().TempDir(), "fig.png")
		Expect(fig.Save(path, 2*vg.Inch, 2*vg.Inch)).To(Succeed())
		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Size()).To(BeNumerically(">", 0))

		Expect(fig.Save(filepath.Join(GinkgoT().TempDir(), "fig"), vg.Inch, vg.Inch)).NotTo(Succeed())
	})
})

var _ = Describe("Surface", func() {
	var membrane *field.Field

	BeforeEach(func() {
		p := field.DefaultMembraneParams(2, 3)
		p.Resolution = 60
		var err error
		membrane, err = field.Membrane(p)
		Expect(err).NotTo(HaveOccurred())
	})

	It("builds a surface figure with a colour bar", func() {
		fig, err := Surface(membrane, Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Kind).To(Equal(KindSurface))
		Expect(fig.ColorBar).NotTo(BeNil())

		var buf bytes.Buffer
		_, err = fig.WriteTo(&buf, "png", 4*vg.Inch, 3*vg.Inch)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.Bytes()[:8]).To(Equal(pngMagic))
	})

	It("caps the mesh at the requested cell count", func() {
		cm, err := Colormap("kindlmann")
		Expect(err).NotTo(HaveOccurred())
		src := meshSource{
			rows:  60,
			cols:  60,
			point: func(i, j int) viz.Vec3 { return viz.Vec3{X: float64(j) / 60, Y: float64(i) / 60} },
			value: membrane.Values.At,
		}
		m := newMesh(src, 10, viz.NewCamera(), scaled(cm, -1, 1))
		Expect(m.Len()).To(BeNumerically("<=", 10*10))
		Expect(m.Len()).To(BeNumerically(">", 0))
	})

	It("rejects curves", func() {
		fig, err := Surface(membrane, Options{})
		Expect(err).NotTo(HaveOccurred())
		c, err := field.Legendre(field.DefaultLegendreParams(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.AddCurve(c)).To(MatchError(ErrFigureKind))
	})

	It("refuses to draw a membrane as a sphere", func() {
		_, err := Sphere(membrane, Options{})
		Expect(err).To(MatchError(ErrMissingCoords))
	})

	It("rejects unknown colour maps", func() {
		_, err := Surface(membrane, Options{Colormap: "jet"})
		Expect(err).To(MatchError(ErrUnknownColormap))
	})
})

var _ = Describe("PolarContour", func() {
	It("leaves the masked core blank", func() {
		f, err := field.Multipole(field.DefaultMultipoleParams(1))
		Expect(err).NotTo(HaveOccurred())

		cm, err := Colormap("diverging")
		Expect(err).NotTo(HaveOccurred())
		cells := newPolarCells(f, scaled(cm, -1, 1), 10)

		rows, cols := f.Dims()
		// Rows 0..19 have r < 1, so only cells between rows 20..99 remain.
		Expect(cells.Len()).To(Equal((rows - 1 - 20) * (cols - 1)))
		for _, q := range cells.cells {
			for _, p := range q.pts {
				Expect(math.Hypot(p.X, p.Y)).To(BeNumerically(">=", 1-1e-9))
			}
		}
	})

	It("puts theta=0 north and turns clockwise", func() {
		x, y := polarXY(0, 2)
		Expect(x).To(BeNumerically("~", 0, 1e-12))
		Expect(y).To(BeNumerically("~", 2, 1e-12))
		x, y = polarXY(math.Pi/2, 2)
		Expect(x).To(BeNumerically("~", 2, 1e-12))
		Expect(y).To(BeNumerically("~", 0, 1e-12))
	})

	It("renders with a fixed [-1, 1] colour bar", func() {
		p := field.DefaultMultipoleParams(2)
		p.ThetaSamples, p.RadialSamples = 90, 30
		f, err := field.Multipole(p)
		Expect(err).NotTo(HaveOccurred())
		fig, err := PolarContour(f, Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Kind).To(Equal(KindPolar))
		Expect(fig.ColorBar).NotTo(BeNil())

		var buf bytes.Buffer
		_, err = fig.WriteTo(&buf, "svg", 4*vg.Inch, 4*vg.Inch)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Sphere", func() {
	It("paints every cell of the harmonic", func() {
		p := field.DefaultHarmonicParams(2, 1)
		p.Samples = 30
		f, err := field.Harmonic(p)
		Expect(err).NotTo(HaveOccurred())

		fig, err := Sphere(f, Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Kind).To(Equal(KindSphere))
		Expect(fig.ColorBar).To(BeNil())

		var buf bytes.Buffer
		_, err = fig.WriteTo(&buf, "png", 3*vg.Inch, 3*vg.Inch)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Colormap", func() {
	It("defaults to the diverging map", func() {
		cm, err := Colormap("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cm).NotTo(BeNil())
	})

	It("widens an empty range", func() {
		cm, err := Colormap("blackbody")
		Expect(err).NotTo(HaveOccurred())
		cm = scaled(cm, 0, 0)
		Expect(cm.Max()).To(BeNumerically(">", cm.Min()))
		Expect(colorAt(cm, 0)).NotTo(BeNil())
	})

	It("lists names sorted", func() {
		Expect(ColormapNames()).To(Equal([]string{"blackbody", "diverging", "extended", "kindlmann"}))
	})
})
