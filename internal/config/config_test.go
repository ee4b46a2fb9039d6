package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Format != "png" {
		t.Errorf("expected format png, got %s", cfg.Format)
	}
	if len(cfg.Jobs) != 7 {
		t.Errorf("expected 7 jobs, got %d", len(cfg.Jobs))
	}

	families := map[string]int{}
	for _, j := range cfg.Jobs {
		families[j.Family]++
	}
	want := map[string]int{"membrane": 1, "legendre": 1, "multipole": 3, "harmonic": 1, "bessel": 1}
	for fam, n := range want {
		if families[fam] != n {
			t.Errorf("family %s: expected %d jobs, got %d", fam, n, families[fam])
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdeviz.yaml")
	cfg := DefaultConfig()
	cfg.Colormap = "kindlmann"
	cfg.Jobs[0].N = 4

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Colormap != "kindlmann" {
		t.Errorf("expected colormap kindlmann, got %s", loaded.Colormap)
	}
	if loaded.Jobs[0].N != 4 {
		t.Errorf("expected n=4, got %d", loaded.Jobs[0].N)
	}
	if len(loaded.Jobs[1].Orders) != 5 {
		t.Errorf("expected 5 legendre orders, got %v", loaded.Jobs[1].Orders)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("format: svg\njobs:\n  - name: dipole\n    family: multipole\n    l: 1\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "svg" || cfg.Width != DefaultWidth || cfg.OutputDir != DefaultOutputDir {
		t.Errorf("unexpected settings: %+v", cfg)
	}
	if len(cfg.Jobs) != 1 || cfg.Jobs[0].L != 1 {
		t.Errorf("expected one dipole job, got %+v", cfg.Jobs)
	}
}

func TestLoadExplicitZeroAmplitude(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.yaml")
	data := []byte("jobs:\n  - name: flat\n    family: membrane\n    n: 2\n    m: 3\n    amplitude: 0\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	jc := cfg.Jobs[0]
	if jc.Amplitude == nil || *jc.Amplitude != 0 {
		t.Errorf("expected explicit amplitude 0, got %v", jc.Amplitude)
	}
	if jc.SizeX != nil || jc.SizeY != nil {
		t.Errorf("expected unset sizes, got %v %v", jc.SizeX, jc.SizeY)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "bmp" }},
		{"size", func(c *Config) { c.Width = 0 }},
		{"unnamed job", func(c *Config) { c.Jobs[0].Name = "" }},
		{"duplicate job", func(c *Config) { c.Jobs[1].Name = c.Jobs[0].Name }},
		{"family", func(c *Config) { c.Jobs[0].Family = "hermite" }},
		{"membrane mode", func(c *Config) { c.Jobs[0].N = -1 }},
		{"legendre degree", func(c *Config) { c.Jobs[1].Orders = []int{0, -2} }},
		{"multipole degree", func(c *Config) { c.Jobs[2].L = -1 }},
		{"orders on field", func(c *Config) { c.Jobs[0].Orders = []int{1} }},
		{"negative resolution", func(c *Config) { c.Jobs[0].Resolution = -5 }},
		{"zero size", func(c *Config) { c.Jobs[0].SizeX = Float(0) }},
		{"negative size", func(c *Config) { c.Jobs[0].SizeY = Float(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestBesselAllowsNegativeOrder(t *testing.T) {
	j := JobConfig{Name: "b", Family: "bessel", N: -2}
	if err := j.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got := j.Degrees(); len(got) != 1 || got[0] != -2 {
		t.Errorf("expected degrees [-2], got %v", got)
	}
}

func TestOutputPath(t *testing.T) {
	cfg := DefaultConfig()
	if got, want := cfg.OutputPath(cfg.Jobs[0]), filepath.Join("figures", "membrane.png"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	j := cfg.Jobs[0]
	j.Output = "custom.svg"
	if got := cfg.OutputPath(j); got != "custom.svg" {
		t.Errorf("expected custom.svg, got %s", got)
	}
}

func TestGetPreset(t *testing.T) {
	jc := GetPreset("harmonic", "classic")
	if jc == nil {
		t.Fatal("expected preset, got nil")
	}
	if jc.L != 3 || jc.M != 2 {
		t.Errorf("expected (3, 2), got (%d, %d)", jc.L, jc.M)
	}
	if jc.Name != "harmonic_classic" {
		t.Errorf("expected name harmonic_classic, got %s", jc.Name)
	}
	if err := jc.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}
}

func TestGetPresetCopies(t *testing.T) {
	jc := GetPreset("legendre", "classic")
	jc.Orders[0] = 99
	if Presets["legendre"]["classic"].Orders[0] == 99 {
		t.Error("preset orders aliased")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("membrane", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("multipole")
	want := []string{"dipole", "monopole", "octupole", "quadrupole"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("expected %v, got %v", want, presets)
		}
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent family")
	}
}
