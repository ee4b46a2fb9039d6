package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/pdeviz/internal/field"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir = "figures"
	DefaultFormat    = "png"
	DefaultWidth     = 6.0
	DefaultHeight    = 4.5
	DefaultColormap  = "diverging"
	DefaultTheme     = "diverging"
)

var ErrInvalid = errors.New("config: invalid configuration")

var formats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// Config describes a batch of figures. Width and Height are in inches.
// Theme styles terminal previews of the batch.
type Config struct {
	OutputDir string      `yaml:"output_dir"`
	Format    string      `yaml:"format"`
	Width     float64     `yaml:"width"`
	Height    float64     `yaml:"height"`
	Colormap  string      `yaml:"colormap"`
	Theme     string      `yaml:"theme"`
	Jobs      []JobConfig `yaml:"jobs"`
}

// JobConfig is one figure. Unset sizes and amplitude and a zero resolution
// take the family defaults. Orders lists the curves overlaid on a Legendre
// or Bessel figure; when empty the single order L (Legendre) or N (Bessel)
// is drawn.
type JobConfig struct {
	Name       string   `yaml:"name"`
	Family     string   `yaml:"family"`
	N          int      `yaml:"n,omitempty"`
	M          int      `yaml:"m,omitempty"`
	L          int      `yaml:"l,omitempty"`
	Orders     []int    `yaml:"orders,omitempty,flow"`
	SizeX      *float64 `yaml:"size_x,omitempty"`
	SizeY      *float64 `yaml:"size_y,omitempty"`
	Amplitude  *float64 `yaml:"amplitude,omitempty"`
	Resolution int      `yaml:"resolution,omitempty"`
	Strict     bool     `yaml:"strict,omitempty"`
	Output     string   `yaml:"output,omitempty"`
}

// DefaultConfig draws the classic set: a (2, 3) membrane mode, Legendre
// polynomials 0..4, multipoles 0..2, the (3, 2) harmonic and Bessel
// functions 0..3.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Format:    DefaultFormat,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Colormap:  DefaultColormap,
		Theme:     DefaultTheme,
		Jobs: []JobConfig{
			{Name: "membrane", Family: "membrane", N: 2, M: 3},
			{Name: "legendre", Family: "legendre", Orders: []int{0, 1, 2, 3, 4}},
			{Name: "multipole_l0", Family: "multipole", L: 0},
			{Name: "multipole_l1", Family: "multipole", L: 1},
			{Name: "multipole_l2", Family: "multipole", L: 2},
			{Name: "harmonic", Family: "harmonic", L: 3, M: 2},
			{Name: "bessel", Family: "bessel", Orders: []int{0, 1, 2, 3}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the output settings and every job.
func (c *Config) Validate() error {
	if !validFormat(c.Format) {
		return fmt.Errorf("%w: format %q (want one of %s)", ErrInvalid, c.Format, strings.Join(formats, ", "))
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: figure size %gx%g", ErrInvalid, c.Width, c.Height)
	}
	seen := make(map[string]bool, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Name == "" {
			return fmt.Errorf("%w: job %d has no name", ErrInvalid, i)
		}
		if seen[j.Name] {
			return fmt.Errorf("%w: duplicate job %q", ErrInvalid, j.Name)
		}
		seen[j.Name] = true
		if err := j.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the family name and the parameters it uses.
func (j JobConfig) Validate() error {
	fam, err := field.ParseFamily(j.Family)
	if err != nil {
		return fmt.Errorf("%w: job %q: %v", ErrInvalid, j.Name, err)
	}
	if len(j.Orders) > 0 && !fam.IsCurve() {
		return fmt.Errorf("%w: job %q: orders only apply to curve families", ErrInvalid, j.Name)
	}
	if (j.SizeX != nil && *j.SizeX <= 0) || (j.SizeY != nil && *j.SizeY <= 0) {
		return fmt.Errorf("%w: job %q: sizes must be positive", ErrInvalid, j.Name)
	}
	if j.Resolution < 0 {
		return fmt.Errorf("%w: job %q: negative resolution", ErrInvalid, j.Name)
	}

	switch fam {
	case field.FamilyMembrane:
		if j.N < 0 || j.M < 0 {
			return fmt.Errorf("%w: job %q: mode numbers must be non-negative", ErrInvalid, j.Name)
		}
	case field.FamilyLegendre:
		for _, l := range j.Degrees() {
			if l < 0 {
				return fmt.Errorf("%w: job %q: negative degree %d", ErrInvalid, j.Name, l)
			}
		}
	case field.FamilyMultipole, field.FamilyHarmonic:
		if j.L < 0 {
			return fmt.Errorf("%w: job %q: negative degree %d", ErrInvalid, j.Name, j.L)
		}
	}
	return nil
}

// Degrees returns the orders drawn by a curve job.
func (j JobConfig) Degrees() []int {
	if len(j.Orders) > 0 {
		return j.Orders
	}
	if j.Family == string(field.FamilyBessel) {
		return []int{j.N}
	}
	return []int{j.L}
}

// OutputPath returns where the job's figure goes: Output when set, else
// <output_dir>/<name>.<format>.
func (c *Config) OutputPath(j JobConfig) string {
	if j.Output != "" {
		return j.Output
	}
	return filepath.Join(c.OutputDir, j.Name+"."+c.Format)
}

func validFormat(f string) bool {
	for _, ok := range formats {
		if f == ok {
			return true
		}
	}
	return false
}

// Float returns a pointer to v, for the optional real-valued job fields.
func Float(v float64) *float64 {
	return &v
}
