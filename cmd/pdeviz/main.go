package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pdeviz/internal/analysis"
	"github.com/san-kum/pdeviz/internal/config"
	"github.com/san-kum/pdeviz/internal/experiment"
	"github.com/san-kum/pdeviz/internal/export"
	"github.com/san-kum/pdeviz/internal/field"
	"github.com/san-kum/pdeviz/internal/render"
	"github.com/san-kum/pdeviz/internal/tui"
	"github.com/san-kum/pdeviz/internal/viz"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"
)

var (
	outPath    string
	outputDir  string
	width      float64
	height     float64
	colormap   string
	theme      string
	preview    bool
	configFile string
	dataFormat string
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// main registers the commands and runs the root command, exiting with
// status 1 on error. With no subcommand the terminal explorer starts.
func main() {
	rootCmd := &cobra.Command{
		Use:          "pdeviz",
		Short:        "sample and plot classical PDE solutions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(explorerOptions())
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags())

	membraneCmd := &cobra.Command{
		Use:   "membrane",
		Short: "rectangular membrane mode Z = A sin(kx x) sin(ky y)",
		Args:  cobra.NoArgs,
		RunE:  familyRunner(field.FamilyMembrane),
	}
	addJobFlags(membraneCmd, field.FamilyMembrane)

	legendreCmd := &cobra.Command{
		Use:   "legendre",
		Short: "Legendre polynomials P_l(x) on [-1, 1]",
		Args:  cobra.NoArgs,
		RunE:  familyRunner(field.FamilyLegendre),
	}
	addJobFlags(legendreCmd, field.FamilyLegendre)

	multipoleCmd := &cobra.Command{
		Use:   "multipole",
		Short: "multipole potential P_l(cos theta)/r^(l+1) on polar axes",
		Args:  cobra.NoArgs,
		RunE:  familyRunner(field.FamilyMultipole),
	}
	addJobFlags(multipoleCmd, field.FamilyMultipole)

	harmonicCmd := &cobra.Command{
		Use:   "harmonic",
		Short: "real part of the spherical harmonic Y_l^m on the unit sphere",
		Args:  cobra.NoArgs,
		RunE:  familyRunner(field.FamilyHarmonic),
	}
	addJobFlags(harmonicCmd, field.FamilyHarmonic)

	besselCmd := &cobra.Command{
		Use:   "bessel",
		Short: "Bessel functions of the first kind J_n(x) on [0, 10]",
		Args:  cobra.NoArgs,
		RunE:  familyRunner(field.FamilyBessel),
	}
	addJobFlags(besselCmd, field.FamilyBessel)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render every job of a config file",
		Args:  cobra.NoArgs,
		RunE:  renderConfig,
	}
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml); defaults to the built-in set")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "pdeviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", okStyle.Render("wrote"), path)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list parameter presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample [family]",
		Short: "write sampled data as csv or json to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  sampleData,
	}
	addJobFlags(sampleCmd, "")
	sampleCmd.Flags().StringVar(&dataFormat, "format", "csv", "output format (csv, json)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [family]",
		Short: "summarise a sampled field or curves",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}
	addJobFlags(inspectCmd, "")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive terminal explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(explorerOptions())
		},
	}

	rootCmd.AddCommand(membraneCmd, legendreCmd, multipoleCmd, harmonicCmd, besselCmd,
		renderCmd, initCmd, presetsCmd, sampleCmd, inspectCmd, exploreCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outPath, "out", "o", "", "output file (format from extension)")
	fs.StringVar(&outputDir, "dir", ".", "output directory for default file names")
	fs.Float64Var(&width, "width", config.DefaultWidth, "figure width in inches")
	fs.Float64Var(&height, "height", config.DefaultHeight, "figure height in inches")
	fs.StringVar(&colormap, "colormap", "", "colour map ("+strings.Join(render.ColormapNames(), ", ")+")")
	fs.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	fs.BoolVar(&preview, "preview", false, "draw in the terminal instead of writing a file")
}

func explorerOptions() tui.Options {
	return tui.Options{
		OutputDir: outputDir,
		Format:    config.DefaultFormat,
		Width:     vg.Length(width) * vg.Inch,
		Height:    vg.Length(height) * vg.Inch,
		Colormap:  colormap,
		Theme:     theme,
	}
}

// defaultPreset is the preset a family command starts from.
func defaultPreset(fam field.Family) string {
	if fam == field.FamilyMultipole {
		return "monopole"
	}
	return "classic"
}

// addJobFlags registers the parameter flags. Defaults show the family's
// default preset; an empty family registers the union for commands taking
// the family as an argument.
func addJobFlags(cmd *cobra.Command, fam field.Family) {
	f := cmd.Flags()
	def := config.GetPreset(string(fam), defaultPreset(fam))
	if def == nil {
		def = &config.JobConfig{}
	}

	all := fam == ""
	if all || fam == field.FamilyMembrane || fam == field.FamilyBessel {
		f.Int("n", def.N, "mode number along x (membrane) or Bessel order")
	}
	if all || fam == field.FamilyMembrane || fam == field.FamilyHarmonic {
		f.Int("m", def.M, "mode number along y (membrane) or harmonic order")
	}
	if all || fam == field.FamilyLegendre || fam == field.FamilyMultipole || fam == field.FamilyHarmonic {
		f.Int("l", def.L, "degree")
	}
	if all || fam.IsCurve() {
		f.IntSlice("orders", def.Orders, "orders to overlay (legendre, bessel)")
	}
	if all || fam == field.FamilyMembrane {
		f.Float64("size-x", field.DefaultSizeX, "membrane size along x")
		f.Float64("size-y", field.DefaultSizeY, "membrane size along y")
		f.Float64("amplitude", field.DefaultAmplitude, "membrane amplitude")
	}
	if all || fam == field.FamilyHarmonic {
		f.Bool("strict", false, "fail on a constant harmonic instead of normalising to 0.5")
	}
	f.Int("resolution", 0, "samples along the main axis (0 for the default)")
	f.String("preset", "", "start from a named preset")
}

// jobFromFlags starts from the named preset, or the family's default one,
// and applies every flag the user set.
func jobFromFlags(cmd *cobra.Command, fam field.Family) (experiment.Job, error) {
	flags := cmd.Flags()

	presetName, _ := flags.GetString("preset")
	if presetName == "" {
		presetName = defaultPreset(fam)
	}
	p := config.GetPreset(string(fam), presetName)
	if p == nil {
		return experiment.Job{}, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets(string(fam)))
	}
	jc := *p
	jc.Name = string(fam)

	if flags.Changed("n") {
		jc.N, _ = flags.GetInt("n")
	}
	if flags.Changed("m") {
		jc.M, _ = flags.GetInt("m")
	}
	if flags.Changed("l") {
		jc.L, _ = flags.GetInt("l")
		if fam.IsCurve() && !flags.Changed("orders") {
			jc.Orders = nil
		}
	}
	if flags.Changed("n") && fam == field.FamilyBessel && !flags.Changed("orders") {
		jc.Orders = nil
	}
	if flags.Changed("orders") {
		jc.Orders, _ = flags.GetIntSlice("orders")
	}
	if flags.Changed("size-x") {
		v, _ := flags.GetFloat64("size-x")
		jc.SizeX = config.Float(v)
	}
	if flags.Changed("size-y") {
		v, _ := flags.GetFloat64("size-y")
		jc.SizeY = config.Float(v)
	}
	if flags.Changed("amplitude") {
		v, _ := flags.GetFloat64("amplitude")
		jc.Amplitude = config.Float(v)
	}
	if flags.Changed("strict") {
		jc.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("resolution") {
		jc.Resolution, _ = flags.GetInt("resolution")
	}

	if err := jc.Validate(); err != nil {
		return experiment.Job{}, err
	}
	return experiment.JobFromConfig(jc, colormap)
}

func familyRunner(fam field.Family) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		job, err := jobFromFlags(cmd, fam)
		if err != nil {
			return err
		}
		return runJob(cmd.Context(), job)
	}
}

func runJob(ctx context.Context, job experiment.Job) error {
	registry := experiment.NewRegistry()
	s, err := registry.Sample(ctx, job)
	if err != nil {
		return err
	}
	if s.Field != nil && s.Field.Degenerate {
		msg := "warning: field is identically zero"
		if s.Field.Raw != nil {
			msg = "warning: constant field, values set to 0.5"
		}
		fmt.Println(warnStyle.Render(msg))
	}

	if preview {
		fmt.Print(terminalPreview(registry, s, theme))
		return nil
	}

	fig, err := registry.Draw(s, job.Render, nil, "")
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = filepath.Join(outputDir, job.Name+"."+config.DefaultFormat)
	}
	if err := fig.Save(path, vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch); err != nil {
		return err
	}
	fmt.Printf("%s %s %s\n", okStyle.Render("wrote"), path, dimStyle.Render("("+fig.Title+")"))
	return nil
}

func terminalPreview(registry *experiment.Registry, s *experiment.Sample, themeName string) string {
	if s.Field == nil {
		return viz.CurvePreview(s.Curves, 70, 15, registry.Describe(s.Family)) + "\n"
	}
	f := s.Field
	switch f.Family {
	case field.FamilyMultipole:
		sh := viz.PolarPreview(f, 60, 30)
		return viz.NewStyles(viz.GetTheme(themeName)).Shade(sh.Rows, sh.Signs)
	case field.FamilyHarmonic:
		return viz.SpherePreview(f, viz.NewCamera(), 40, 20, 24)
	default:
		return viz.SurfacePreview(f, viz.NewCamera(), 50, 20, 24)
	}
}

func renderConfig(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	applyConfigFlags(cmd.Flags(), cfg)

	if preview {
		return previewConfig(cmd.Context(), cmd.OutOrStdout(), cfg)
	}
	return experiment.NewRegistry().RunConfig(cmd.Context(), cfg, func(job experiment.Job, path string) {
		fmt.Printf("%s %-14s %s\n", okStyle.Render("wrote"), job.Name, path)
	})
}

// applyConfigFlags lets CLI flags override config values.
func applyConfigFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("colormap") {
		cfg.Colormap = colormap
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("dir") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
}

// previewConfig draws every job of cfg to w in the config's theme.
func previewConfig(ctx context.Context, w io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	jobs := make([]experiment.Job, len(cfg.Jobs))
	for i, jc := range cfg.Jobs {
		job, err := experiment.JobFromConfig(jc, cfg.Colormap)
		if err != nil {
			return err
		}
		jobs[i] = job
	}

	registry := experiment.NewRegistry()
	samples, err := registry.SampleAll(ctx, jobs)
	if err != nil {
		return err
	}
	styles := viz.NewStyles(viz.GetTheme(cfg.Theme))
	for i, s := range samples {
		fmt.Fprintln(w, styles.Title.Render(jobs[i].Name))
		fmt.Fprintln(w, terminalPreview(registry, s, cfg.Theme))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	families := make([]string, 0, len(field.Families()))
	if len(args) > 0 {
		if _, err := field.ParseFamily(args[0]); err != nil {
			return err
		}
		families = append(families, args[0])
	} else {
		for _, f := range field.Families() {
			families = append(families, string(f))
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tPRESET\tPARAMETERS")
	for _, fam := range families {
		for _, name := range config.ListPresets(fam) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", fam, name, describeJob(*config.GetPreset(fam, name)))
		}
	}
	return w.Flush()
}

func describeJob(jc config.JobConfig) string {
	switch field.Family(jc.Family) {
	case field.FamilyMembrane:
		s := fmt.Sprintf("n=%d m=%d", jc.N, jc.M)
		if jc.SizeX != nil || jc.SizeY != nil {
			sx, sy := field.DefaultSizeX, field.DefaultSizeY
			if jc.SizeX != nil {
				sx = *jc.SizeX
			}
			if jc.SizeY != nil {
				sy = *jc.SizeY
			}
			s += fmt.Sprintf(" size=%gx%g", sx, sy)
		}
		return s
	case field.FamilyHarmonic:
		return fmt.Sprintf("l=%d m=%d", jc.L, jc.M)
	case field.FamilyMultipole:
		return fmt.Sprintf("l=%d", jc.L)
	}
	return fmt.Sprintf("orders=%v", jc.Degrees())
}

func sampleData(cmd *cobra.Command, args []string) error {
	fam, err := field.ParseFamily(args[0])
	if err != nil {
		return err
	}
	job, err := jobFromFlags(cmd, fam)
	if err != nil {
		return err
	}
	s, err := experiment.NewRegistry().Sample(cmd.Context(), job)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch dataFormat {
	case "csv":
		if s.Field != nil {
			return export.WriteFieldCSV(out, s.Field)
		}
		return export.WriteCurvesCSV(out, s.Curves...)
	case "json":
		if s.Field != nil {
			return export.WriteJSON(out, export.NewFieldData(s.Field))
		}
		data := make([]export.CurveData, len(s.Curves))
		for i, c := range s.Curves {
			data[i] = export.NewCurveData(c)
		}
		return export.WriteJSON(out, data)
	}
	return fmt.Errorf("unknown format: %s (want csv or json)", dataFormat)
}

func inspect(cmd *cobra.Command, args []string) error {
	fam, err := field.ParseFamily(args[0])
	if err != nil {
		return err
	}
	job, err := jobFromFlags(cmd, fam)
	if err != nil {
		return err
	}
	s, err := experiment.NewRegistry().Sample(cmd.Context(), job)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if s.Field != nil {
		sum := analysis.Summarize(s.Field)
		fmt.Fprintln(w, "LABEL\tGRID\tMIN\tMAX\tMASKED\tLOBES U\tLOBES V\tDEGENERATE")
		fmt.Fprintf(w, "%s\t%dx%d\t%.6f\t%.6f\t%d\t%d\t%d\t%v\n",
			sum.Label, sum.Rows, sum.Cols, sum.Min, sum.Max, sum.Masked,
			sum.HalfPeriodsU, sum.HalfPeriodsV, sum.Degenerate)
		return w.Flush()
	}

	fmt.Fprintln(w, "LABEL\tSAMPLES\tMIN\tMAX\tZEROS\tDOMINANT FREQ")
	for _, c := range s.Curves {
		sum := analysis.SummarizeCurve(c)
		fmt.Fprintf(w, "%s\t%d\t%.6f\t%.6f\t%d\t%.4f\n",
			sum.Label, sum.Cols, sum.Min, sum.Max, sum.Zeros, sum.DominantFrequency)
	}
	return w.Flush()
}
