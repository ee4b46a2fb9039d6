package experiment

import (
	"fmt"

	"github.com/san-kum/pdeviz/internal/config"
	"github.com/san-kum/pdeviz/internal/field"
	"github.com/san-kum/pdeviz/internal/render"
)

// Job is one sampling run. Nil sizes and amplitude and a zero resolution
// take the family defaults.
type Job struct {
	Name   string
	Family field.Family
	N, M   int
	L      int
	// Orders are overlaid on one figure for curve families.
	Orders []int

	SizeX, SizeY *float64
	Amplitude    *float64
	// Resolution overrides the sample count along the family's main axis.
	Resolution int
	Strict     bool

	Render render.Options
}

// Degrees returns the orders a curve job draws.
func (j Job) Degrees() []int {
	if len(j.Orders) > 0 {
		return j.Orders
	}
	if j.Family == field.FamilyBessel {
		return []int{j.N}
	}
	return []int{j.L}
}

// JobFromConfig converts a validated job entry.
func JobFromConfig(jc config.JobConfig, colormap string) (Job, error) {
	fam, err := field.ParseFamily(jc.Family)
	if err != nil {
		return Job{}, fmt.Errorf("job %q: %w", jc.Name, err)
	}
	return Job{
		Name:       jc.Name,
		Family:     fam,
		N:          jc.N,
		M:          jc.M,
		L:          jc.L,
		Orders:     jc.Orders,
		SizeX:      jc.SizeX,
		SizeY:      jc.SizeY,
		Amplitude:  jc.Amplitude,
		Resolution: jc.Resolution,
		Strict:     jc.Strict,
		Render:     render.Options{Colormap: colormap},
	}, nil
}

// Sample is the data behind a figure: curves for curve families, a field
// otherwise.
type Sample struct {
	Family field.Family
	Curves []*field.Curve
	Field  *field.Field
}

func (j Job) membrane() field.MembraneParams {
	p := field.DefaultMembraneParams(j.N, j.M)
	if j.SizeX != nil {
		p.SizeX = *j.SizeX
	}
	if j.SizeY != nil {
		p.SizeY = *j.SizeY
	}
	if j.Amplitude != nil {
		p.Amplitude = *j.Amplitude
	}
	if j.Resolution > 0 {
		p.Resolution = j.Resolution
	}
	return p
}

func (j Job) multipole() field.MultipoleParams {
	p := field.DefaultMultipoleParams(j.L)
	if j.Resolution > 0 {
		p.ThetaSamples = j.Resolution
	}
	return p
}

func (j Job) harmonic() field.HarmonicParams {
	p := field.DefaultHarmonicParams(j.L, j.M)
	if j.Resolution > 0 {
		p.Samples = j.Resolution
	}
	p.Strict = j.Strict
	return p
}

func (j Job) legendre(l int) field.LegendreParams {
	p := field.DefaultLegendreParams(l)
	if j.Resolution > 0 {
		p.Samples = j.Resolution
	}
	return p
}

func (j Job) bessel(n int) field.BesselParams {
	p := field.DefaultBesselParams(n)
	if j.Resolution > 0 {
		p.Samples = j.Resolution
	}
	return p
}
