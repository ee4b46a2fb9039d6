package tui

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/pdeviz/internal/experiment"
	"github.com/san-kum/pdeviz/internal/field"
	"github.com/san-kum/pdeviz/internal/render"
	"github.com/san-kum/pdeviz/internal/viz"
	"gonum.org/v1/plot/vg"
)

type state int

const (
	stateMenu state = iota
	stateConfig
	statePreview
)

// Preview resolutions keep redraws fast; written figures use full defaults.
const (
	previewSurface = 60
	previewSphere  = 40
	previewPolar   = 200
)

// Options configure the explorer's output and look.
type Options struct {
	OutputDir string
	Format    string
	Width     vg.Length
	Height    vg.Length
	Colormap  string
	Theme     string
}

type param struct {
	name     string
	value    int
	min, max int
}

var familyParams = map[field.Family][]param{
	field.FamilyMembrane:  {{"n", 2, 0, 12}, {"m", 3, 0, 12}},
	field.FamilyLegendre:  {{"max l", 4, 0, 12}},
	field.FamilyMultipole: {{"l", 1, 0, 8}},
	field.FamilyHarmonic:  {{"l", 3, 0, 10}, {"m", 2, -10, 10}},
	field.FamilyBessel:    {{"max n", 3, 0, 12}},
}

type model struct {
	state    state
	cursor   int
	families []field.Family
	selected field.Family
	registry *experiment.Registry
	opts     Options

	params      []param
	paramCursor int
	editing     bool
	editBuf     string

	sample *experiment.Sample
	err    error
	status string
	camera *viz.Camera
	theme  int
	styles viz.Styles

	width  int
	height int
}

// NewExplorer builds the explorer model.
func NewExplorer(opts Options) *model {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Width == 0 {
		opts.Width = render.DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = render.DefaultHeight
	}
	theme := 0
	for i, t := range viz.Themes {
		if t.Name == opts.Theme {
			theme = i
		}
	}
	return &model{
		state:    stateMenu,
		families: field.Families(),
		registry: experiment.NewRegistry(),
		opts:     opts,
		camera:   viz.NewCamera(),
		theme:    theme,
		styles:   viz.NewStyles(viz.Themes[theme]),
		width:    80,
		height:   24,
	}
}

// RunInteractive starts the explorer on the alternate screen.
func RunInteractive(opts Options) error {
	_, err := tea.NewProgram(NewExplorer(opts), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

// savedMsg reports the result of writing a figure.
type savedMsg struct {
	path string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case savedMsg:
		if msg.err != nil {
			m.status = ""
			m.err = msg.err
		} else {
			m.err = nil
			m.status = "wrote " + msg.path
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case statePreview:
		return m.previewKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.families)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.families[m.cursor]
		m.state = stateConfig
		m.paramCursor = 0
		m.params = append([]param(nil), familyParams[m.selected]...)
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.Atoi(m.editBuf); err == nil {
				m.setParam(v)
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '-') {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.Itoa(m.params[m.paramCursor].value)
	case "left", "h":
		m.setParam(m.params[m.paramCursor].value - 1)
	case "right", "l":
		m.setParam(m.params[m.paramCursor].value + 1)
	case "s", "p":
		m.state = statePreview
		m.camera = viz.NewCamera()
		m.status = ""
		m.resample()
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) previewKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
		m.sample = nil
		return m, tea.ClearScreen
	case "c":
		m.state = stateConfig
		return m, tea.ClearScreen
	case "left", "h":
		m.camera.Orbit(-math.Pi/16, 0)
	case "right", "l":
		m.camera.Orbit(math.Pi/16, 0)
	case "up", "k":
		m.camera.Orbit(0, math.Pi/16)
	case "down", "j":
		m.camera.Orbit(0, -math.Pi/16)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "[":
		m.setParam(m.params[m.paramCursor].value - 1)
		m.resample()
	case "]":
		m.setParam(m.params[m.paramCursor].value + 1)
		m.resample()
	case "t":
		m.theme = (m.theme + 1) % len(viz.Themes)
		m.styles = viz.NewStyles(viz.Themes[m.theme])
	case "w":
		m.status = "writing..."
		return m, m.write()
	}
	return m, nil
}

func (m *model) setParam(v int) {
	p := &m.params[m.paramCursor]
	p.value = max(p.min, min(p.max, v))
}

func (m model) paramValue(name string) int {
	for _, p := range m.params {
		if p.name == name {
			return p.value
		}
	}
	return 0
}

func upTo(n int) []int {
	orders := make([]int, n+1)
	for i := range orders {
		orders[i] = i
	}
	return orders
}

// job builds the run for the current parameters. preview lowers the
// resolution for terminal drawing.
func (m model) job(preview bool) experiment.Job {
	job := experiment.Job{
		Name:   string(m.selected),
		Family: m.selected,
		Render: render.Options{Colormap: m.opts.Colormap, Camera: m.camera},
	}
	switch m.selected {
	case field.FamilyMembrane:
		job.N, job.M = m.paramValue("n"), m.paramValue("m")
		if preview {
			job.Resolution = previewSurface
		}
	case field.FamilyLegendre:
		job.Orders = upTo(m.paramValue("max l"))
	case field.FamilyMultipole:
		job.L = m.paramValue("l")
		if preview {
			job.Resolution = previewPolar
		}
	case field.FamilyHarmonic:
		job.L, job.M = m.paramValue("l"), m.paramValue("m")
		if preview {
			job.Resolution = previewSphere
		}
	case field.FamilyBessel:
		job.Orders = upTo(m.paramValue("max n"))
	}
	return job
}

func (m *model) resample() {
	m.sample, m.err = m.registry.Sample(context.Background(), m.job(true))
}

// outputPath names the file for the current family and parameters.
func (m model) outputPath() string {
	name := string(m.selected)
	for _, p := range m.params {
		name += fmt.Sprintf("_%s%d", string(p.name[len(p.name)-1]), p.value)
	}
	return filepath.Join(m.opts.OutputDir, name+"."+m.opts.Format)
}

// write renders the full-resolution figure off the event loop.
func (m model) write() tea.Cmd {
	job := m.job(false)
	cam := *m.camera
	job.Render.Camera = &cam
	path := m.outputPath()
	reg := m.registry
	opts := m.opts

	return func() tea.Msg {
		fig, err := reg.Run(context.Background(), job, nil)
		if err != nil {
			return savedMsg{err: err}
		}
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return savedMsg{err: err}
		}
		if err := fig.Save(path, opts.Width, opts.Height); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{path: path}
	}
}
