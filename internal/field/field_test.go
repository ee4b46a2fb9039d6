package field

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pdeviz/internal/special"
	"gonum.org/v1/gonum/mat"
)

func signChanges(vals []float64) int {
	n, prev := 0, 0.0
	for _, v := range vals {
		if math.Abs(v) <= 1e-9 {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			n++
		}
		prev = v
	}
	return n
}

func TestLinspace(t *testing.T) {
	s, err := Linspace(-1, 1, 500)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 500 || s[0] != -1 || s[499] != 1 {
		t.Errorf("unexpected endpoints: len=%d first=%v last=%v", len(s), s[0], s[len(s)-1])
	}
	if _, err := Linspace(0, 1, 1); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestMeshgrid(t *testing.T) {
	g := Meshgrid([]float64{1, 2, 3}, []float64{10, 20})
	rows, cols := g.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected 2x3 grid, got %dx%d", rows, cols)
	}
	xr, xc := g.X.Dims()
	yr, yc := g.Y.Dims()
	if xr != yr || xc != yc {
		t.Errorf("coordinate shapes differ: %dx%d vs %dx%d", xr, xc, yr, yc)
	}
	if g.X.At(1, 2) != 3 || g.Y.At(1, 2) != 20 {
		t.Errorf("unexpected mesh values X=%v Y=%v", g.X.At(1, 2), g.Y.At(1, 2))
	}
}

func TestMembrane_Shape(t *testing.T) {
	f, err := Membrane(DefaultMembraneParams(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := f.Dims()
	if rows != 500 || cols != 500 {
		t.Errorf("expected 500x500, got %dx%d", rows, cols)
	}
}

func TestMembrane_DirichletEdges(t *testing.T) {
	for _, mode := range [][2]int{{1, 1}, {2, 3}, {4, 1}} {
		f, err := Membrane(DefaultMembraneParams(mode[0], mode[1]))
		if err != nil {
			t.Fatal(err)
		}
		rows, cols := f.Dims()
		for i := 0; i < rows; i++ {
			if f.Values.At(i, 0) != 0 {
				t.Fatalf("mode %v: Z(0, y_%d) = %v", mode, i, f.Values.At(i, 0))
			}
		}
		for j := 0; j < cols; j++ {
			if f.Values.At(0, j) != 0 {
				t.Fatalf("mode %v: Z(x_%d, 0) = %v", mode, j, f.Values.At(0, j))
			}
		}
	}
}

func TestMembrane_HalfPeriods(t *testing.T) {
	tests := []struct{ n, m int }{{1, 1}, {2, 3}, {3, 2}, {5, 4}}
	for _, tt := range tests {
		f, err := Membrane(DefaultMembraneParams(tt.n, tt.m))
		if err != nil {
			t.Fatal(err)
		}
		// Row 37 and column 37 sit off every nodal line for these modes.
		if got := signChanges(f.Row(37)) + 1; got != tt.n {
			t.Errorf("mode (%d,%d): %d half-periods along x, want %d", tt.n, tt.m, got, tt.n)
		}
		if got := signChanges(f.Col(37)) + 1; got != tt.m {
			t.Errorf("mode (%d,%d): %d half-periods along y, want %d", tt.n, tt.m, got, tt.m)
		}
	}
}

func TestMembrane_ZeroModeIsZeroField(t *testing.T) {
	p := DefaultMembraneParams(0, 2)
	p.Resolution = 50
	f, err := Membrane(p)
	if err != nil {
		t.Fatal(err)
	}
	if mat.Norm(f.Values, 1) != 0 {
		t.Error("expected identically zero field for n=0")
	}
	if !f.Degenerate {
		t.Error("expected the zero field to be marked degenerate")
	}

	p = DefaultMembraneParams(2, 3)
	p.Amplitude = 0
	p.Resolution = 20
	if f, err = Membrane(p); err != nil {
		t.Fatal(err)
	}
	if mat.Norm(f.Values, 1) != 0 || !f.Degenerate {
		t.Error("expected a degenerate zero field for amplitude 0")
	}

	f, err = Membrane(DefaultMembraneParams(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if f.Degenerate {
		t.Error("expected a (2, 3) mode not to be degenerate")
	}
}

func TestMembrane_Validation(t *testing.T) {
	tests := []struct {
		name string
		edit func(*MembraneParams)
		want error
	}{
		{"negative n", func(p *MembraneParams) { p.N = -1 }, ErrParameterBounds},
		{"zero size", func(p *MembraneParams) { p.SizeX = 0 }, ErrParameterBounds},
		{"NaN size", func(p *MembraneParams) { p.SizeY = math.NaN() }, ErrParameterBounds},
		{"one sample", func(p *MembraneParams) { p.Resolution = 1 }, ErrInvalidGrid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultMembraneParams(1, 1)
			tt.edit(&p)
			if _, err := Membrane(p); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLegendre_ConstantForDegreeZero(t *testing.T) {
	c, err := Legendre(DefaultLegendreParams(0))
	if err != nil {
		t.Fatal(err)
	}
	for i, y := range c.Y {
		if y != 1 {
			t.Fatalf("P_0(%v) = %v at sample %d", c.X[i], y, i)
		}
	}
}

func TestLegendre_UnityAtRightEnd(t *testing.T) {
	for l := 0; l <= 8; l++ {
		c, err := Legendre(DefaultLegendreParams(l))
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Y[c.Len()-1]; math.Abs(got-1) > 1e-12 {
			t.Errorf("P_%d(1) = %v", l, got)
		}
	}
}

func TestLegendre_MidpointDegreeTwo(t *testing.T) {
	c, err := Legendre(DefaultLegendreParams(2))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 500 {
		t.Fatalf("expected 500 samples, got %d", c.Len())
	}
	// 500 samples straddle x=0; both neighbours sit within 1/499 of it.
	mid := (c.Y[249] + c.Y[250]) / 2
	if math.Abs(mid+0.5) > 1e-4 {
		t.Errorf("P_2 near 0 = %v, want -0.5", mid)
	}
	if c.Label != "l=2" {
		t.Errorf("unexpected label %q", c.Label)
	}
}

func TestLegendre_NegativeDegree(t *testing.T) {
	_, err := Legendre(DefaultLegendreParams(-1))
	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvalError, got %v", err)
	}
	if !errors.Is(err, special.ErrDomain) {
		t.Errorf("expected wrapped ErrDomain, got %v", err)
	}
}

func TestMultipole_Mask(t *testing.T) {
	f, err := Multipole(DefaultMultipoleParams(1))
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := f.Dims()
	if rows != 100 || cols != 500 {
		t.Fatalf("expected 100x500, got %dx%d", rows, cols)
	}
	hidden := 0
	for i, r := range f.Grid.V {
		for j := 0; j < cols; j++ {
			v := f.Values.At(i, j)
			if r < 1 {
				hidden++
				if f.Visible(i, j) || !math.IsNaN(v) {
					t.Fatalf("r=%v should be masked", r)
				}
			} else if !f.Visible(i, j) || math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("r=%v should be present, got %v", r, v)
			}
		}
	}
	if hidden != f.Mask.Count() {
		t.Errorf("mask count %d, want %d", f.Mask.Count(), hidden)
	}
}

func TestMultipole_Monopole(t *testing.T) {
	f, err := Multipole(DefaultMultipoleParams(0))
	if err != nil {
		t.Fatal(err)
	}
	last := len(f.Grid.V) - 1
	if got := f.Values.At(last, 0); math.Abs(got-0.2) > 1e-12 {
		t.Errorf("monopole at r=5: %v, want 0.2", got)
	}
}

func TestMultipole_NegativeDegreeRejected(t *testing.T) {
	if _, err := Multipole(DefaultMultipoleParams(-1)); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestHarmonic_NormalizedRange(t *testing.T) {
	for _, lm := range [][2]int{{1, 0}, {2, 1}, {3, -2}, {4, 4}} {
		f, err := Harmonic(DefaultHarmonicParams(lm[0], lm[1]))
		if err != nil {
			t.Fatal(err)
		}
		if f.Degenerate {
			t.Fatalf("Y_%d^%d unexpectedly degenerate", lm[0], lm[1])
		}
		data := f.Values.RawMatrix().Data
		lo, hi := data[0], data[0]
		for _, v := range data {
			if v < 0 || v > 1 {
				t.Fatalf("Y_%d^%d: value %v outside [0,1]", lm[0], lm[1], v)
			}
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		if lo != 0 || hi != 1 {
			t.Errorf("Y_%d^%d: range [%v, %v], want [0, 1]", lm[0], lm[1], lo, hi)
		}
	}
}

func TestHarmonic_UnitSphere(t *testing.T) {
	p := DefaultHarmonicParams(2, 1)
	p.Samples = 20
	f, err := Harmonic(p)
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := f.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, y, z := f.Sphere.X.At(i, j), f.Sphere.Y.At(i, j), f.Sphere.Z.At(i, j)
			if r := math.Sqrt(x*x + y*y + z*z); math.Abs(r-1) > 1e-12 {
				t.Fatalf("point (%d,%d) at radius %v", i, j, r)
			}
		}
	}
}

func TestHarmonic_ConstantField(t *testing.T) {
	f, err := Harmonic(DefaultHarmonicParams(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !f.Degenerate {
		t.Error("expected Y00 to be degenerate")
	}
	for _, v := range f.Values.RawMatrix().Data {
		if v != 0.5 {
			t.Fatalf("expected 0.5 for constant field, got %v", v)
		}
	}

	p := DefaultHarmonicParams(0, 0)
	p.Strict = true
	if _, err := Harmonic(p); !errors.Is(err, ErrConstantField) {
		t.Errorf("expected ErrConstantField, got %v", err)
	}
}

func TestHarmonic_NegativeDegree(t *testing.T) {
	if _, err := Harmonic(DefaultHarmonicParams(-2, 0)); !errors.Is(err, special.ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestBessel_Origin(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 1},
		{1, 0},
		{2, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		c, err := Bessel(DefaultBesselParams(tt.n))
		if err != nil {
			t.Fatal(err)
		}
		if c.X[0] != 0 || c.Y[0] != tt.want {
			t.Errorf("J_%d(%v) = %v, want %v", tt.n, c.X[0], c.Y[0], tt.want)
		}
		if c.X[c.Len()-1] != 10 {
			t.Errorf("expected domain to end at 10, got %v", c.X[c.Len()-1])
		}
	}
}

func TestNormalizeMinMax_SkipsNaN(t *testing.T) {
	m := mat.NewDense(1, 4, []float64{math.NaN(), -2, 0, 2})
	if NormalizeMinMax(m) {
		t.Fatal("unexpected degenerate")
	}
	want := []float64{0, 0.5, 1}
	for j, w := range want {
		if got := m.At(0, j+1); got != w {
			t.Errorf("col %d: got %v, want %v", j+1, got, w)
		}
	}
	if !math.IsNaN(m.At(0, 0)) {
		t.Error("NaN should be preserved")
	}
}

func TestParseFamily(t *testing.T) {
	for _, f := range Families() {
		got, err := ParseFamily(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFamily(%q) = %v, %v", f, got, err)
		}
	}
	if _, err := ParseFamily("heat"); err == nil {
		t.Error("expected error for unknown family")
	}
}
