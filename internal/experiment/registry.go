package experiment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/san-kum/pdeviz/internal/config"
	"github.com/san-kum/pdeviz/internal/field"
	"github.com/san-kum/pdeviz/internal/render"
	"gonum.org/v1/plot/vg"
)

type entry struct {
	info   string
	title  string
	sample func(Job) (*Sample, error)
	draw   func(*field.Field, render.Options) (*render.Figure, error)
}

// Registry maps family names to their samplers and figure builders.
type Registry struct {
	families map[field.Family]entry
}

func NewRegistry() *Registry {
	r := &Registry{families: make(map[field.Family]entry)}

	r.families[field.FamilyMembrane] = entry{
		info: "rectangular membrane mode",
		sample: func(j Job) (*Sample, error) {
			f, err := field.Membrane(j.membrane())
			return fieldSample(f, err)
		},
		draw: render.Surface,
	}
	r.families[field.FamilyLegendre] = entry{
		info:  "Legendre polynomials",
		title: "Legendre polynomials",
		sample: func(j Job) (*Sample, error) {
			return curveSample(field.FamilyLegendre, j.Degrees(), func(l int) (*field.Curve, error) {
				return field.Legendre(j.legendre(l))
			})
		},
	}
	r.families[field.FamilyMultipole] = entry{
		info: "multipole potential",
		sample: func(j Job) (*Sample, error) {
			f, err := field.Multipole(j.multipole())
			return fieldSample(f, err)
		},
		draw: render.PolarContour,
	}
	r.families[field.FamilyHarmonic] = entry{
		info: "spherical harmonic",
		sample: func(j Job) (*Sample, error) {
			f, err := field.Harmonic(j.harmonic())
			return fieldSample(f, err)
		},
		draw: render.Sphere,
	}
	r.families[field.FamilyBessel] = entry{
		info:  "Bessel functions",
		title: "Bessel functions of the first kind",
		sample: func(j Job) (*Sample, error) {
			return curveSample(field.FamilyBessel, j.Degrees(), func(n int) (*field.Curve, error) {
				return field.Bessel(j.bessel(n))
			})
		},
	}
	return r
}

func fieldSample(f *field.Field, err error) (*Sample, error) {
	if err != nil {
		return nil, err
	}
	return &Sample{Family: f.Family, Field: f}, nil
}

func curveSample(fam field.Family, orders []int, fn func(int) (*field.Curve, error)) (*Sample, error) {
	s := &Sample{Family: fam}
	for _, o := range orders {
		c, err := fn(o)
		if err != nil {
			return nil, err
		}
		s.Curves = append(s.Curves, c)
	}
	return s, nil
}

// Families lists the registered family names, sorted.
func (r *Registry) Families() []string {
	names := make([]string, 0, len(r.families))
	for f := range r.families {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a family.
func (r *Registry) Describe(f field.Family) string {
	return r.families[f].info
}

func (r *Registry) lookup(f field.Family) (entry, error) {
	e, ok := r.families[f]
	if !ok {
		return entry{}, fmt.Errorf("unknown family: %s", f)
	}
	return e, nil
}

// Sample evaluates the job without drawing it.
func (r *Registry) Sample(ctx context.Context, job Job) (*Sample, error) {
	e, err := r.lookup(job.Family)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.sample(job)
}

// Run samples the job and draws it. Curve jobs overlay every order onto
// fig, creating a line figure when fig is nil. Field jobs always produce a
// new figure and need fig to be nil.
func (r *Registry) Run(ctx context.Context, job Job, fig *render.Figure) (*render.Figure, error) {
	e, err := r.lookup(job.Family)
	if err != nil {
		return nil, err
	}
	if !job.Family.IsCurve() && fig != nil {
		return nil, fmt.Errorf("%w: %s draws its own figure", render.ErrFigureKind, job.Family)
	}

	s, err := r.Sample(ctx, job)
	if err != nil {
		return nil, err
	}
	return r.Draw(s, job.Render, fig, e.title)
}

// Draw renders a sample. title names new line figures.
func (r *Registry) Draw(s *Sample, opts render.Options, fig *render.Figure, title string) (*render.Figure, error) {
	if s.Field != nil {
		e, err := r.lookup(s.Family)
		if err != nil {
			return nil, err
		}
		return e.draw(s.Field, opts)
	}

	if fig == nil {
		if title == "" {
			title = r.families[s.Family].title
		}
		fig = render.NewFigure(title)
	}
	for _, c := range s.Curves {
		if err := fig.AddCurve(c); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// SampleAll samples every job concurrently. Results keep the order of
// jobs; the first error in that order is returned.
func (r *Registry) SampleAll(ctx context.Context, jobs []Job) ([]*Sample, error) {
	samples := make([]*Sample, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			samples[idx], errs[idx] = r.Sample(ctx, jobs[idx])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("job %q: %w", jobs[i].Name, err)
		}
	}
	return samples, nil
}

// RunConfig renders every job of cfg and saves it to its output path,
// calling done after each file is written. Sampling runs concurrently;
// drawing and writing happen in job order.
func (r *Registry) RunConfig(ctx context.Context, cfg *config.Config, done func(job Job, path string)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	width := vg.Length(cfg.Width) * vg.Inch
	height := vg.Length(cfg.Height) * vg.Inch

	jobs := make([]Job, len(cfg.Jobs))
	for i, jc := range cfg.Jobs {
		job, err := JobFromConfig(jc, cfg.Colormap)
		if err != nil {
			return err
		}
		jobs[i] = job
	}
	samples, err := r.SampleAll(ctx, jobs)
	if err != nil {
		return err
	}

	for i, job := range jobs {
		fig, err := r.Draw(samples[i], job.Render, nil, "")
		if err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}

		path := cfg.OutputPath(cfg.Jobs[i])
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		if err := fig.Save(path, width, height); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
		if done != nil {
			done(job, path)
		}
	}
	return nil
}
