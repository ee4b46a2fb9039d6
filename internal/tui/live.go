package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pdeviz/internal/analysis"
	"github.com/san-kum/pdeviz/internal/field"
	"github.com/san-kum/pdeviz/internal/viz"
)

const wireLines = 24

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case statePreview:
		return m.viewPreview()
	}
	return ""
}

func (m model) viewMenu() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("    " + s.Separator(26) + "\n")
	b.WriteString("           " + s.Title.Render("p d e v i z") + "\n")
	b.WriteString("    " + s.Separator(26) + "\n\n")

	for i, fam := range m.families {
		desc := m.registry.Describe(fam)
		if i == m.cursor {
			b.WriteString("      " + s.Cursor.Render("▸ ") + s.Selected.Render(fmt.Sprintf("%-12s", fam)) + s.Subtitle.Render(desc) + "\n")
		} else {
			b.WriteString("        " + s.Label.Render(fmt.Sprintf("%-12s", fam)) + s.Label.Render(desc) + "\n")
		}
	}

	b.WriteString("\n      " + s.KeyHints([2]string{"↑↓", "select"}, [2]string{"enter", "configure"}, [2]string{"q", "quit"}) + "\n")
	return b.String()
}

func (m model) viewConfig() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + s.Title.Render(string(m.selected)) + "  " + s.Subtitle.Render(m.registry.Describe(m.selected)) + "\n")
	b.WriteString("      " + s.Separator(30) + "\n\n")

	for i, p := range m.params {
		val := fmt.Sprintf("%6d", p.value)
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%6s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + s.Cursor.Render("▸ ") + s.Selected.Render(fmt.Sprintf("%-8s", p.name)) + s.Value.Render(val) + "\n")
		} else {
			b.WriteString("        " + s.Label.Render(fmt.Sprintf("%-8s", p.name)) + s.Label.Render(val) + "\n")
		}
	}

	b.WriteString("\n      " + s.KeyHints(
		[2]string{"↑↓", "select"},
		[2]string{"←→", "adjust"},
		[2]string{"enter", "edit"},
		[2]string{"s", "preview"},
		[2]string{"esc", "back"},
	) + "\n")
	return b.String()
}

func (m model) viewPreview() string {
	s := m.styles
	cw := max(40, m.width-34)
	ch := max(12, m.height-8)

	var body string
	switch {
	case m.err != nil && m.sample == nil:
		body = s.Error.Render(m.err.Error())
	case m.sample == nil:
		body = ""
	case m.sample.Field == nil:
		body = viz.CurvePreview(m.sample.Curves, cw-10, ch-4, m.registry.Describe(m.selected))
	default:
		body = m.drawField(m.sample.Field, cw, ch)
	}

	header := fmt.Sprintf("\n   %s  %s\n\n", s.Title.Render(string(m.selected)), s.Subtitle.Render(m.paramLine()))
	main := lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsPanel())

	footer := "\n   " + s.KeyHints(
		[2]string{"←→↑↓", "orbit"},
		[2]string{"+-", "zoom"},
		[2]string{"[]", "param"},
		[2]string{"w", "write"},
		[2]string{"t", "theme"},
		[2]string{"c", "config"},
		[2]string{"q", "menu"},
	) + "\n"
	if m.status != "" {
		footer += "   " + s.Hint.Render(m.status) + "\n"
	}
	if m.err != nil && m.sample != nil {
		footer += "   " + s.Error.Render(m.err.Error()) + "\n"
	}
	return header + main + footer
}

func (m model) drawField(f *field.Field, cw, ch int) string {
	switch f.Family {
	case field.FamilyMultipole:
		// Characters are about twice as tall as wide.
		side := min(cw, ch*2)
		sh := viz.PolarPreview(f, side, side/2)
		return m.styles.Shade(sh.Rows, sh.Signs)
	case field.FamilyHarmonic:
		return viz.SpherePreview(f, m.camera, cw/2, ch, wireLines)
	default:
		return viz.SurfacePreview(f, m.camera, cw/2, ch, wireLines)
	}
}

func (m model) paramLine() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = fmt.Sprintf("%s=%d", p.name, p.value)
	}
	return strings.Join(parts, "  ")
}

func (m model) statsPanel() string {
	if m.sample == nil {
		return ""
	}
	s := m.styles
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(s.Label.Render(fmt.Sprintf("%-12s", label)) + s.Value.Render(value) + "\n")
	}

	if f := m.sample.Field; f != nil {
		sum := analysis.Summarize(f)
		row("label", sum.Label)
		row("grid", fmt.Sprintf("%dx%d", sum.Rows, sum.Cols))
		row("min", fmt.Sprintf("%.4f", sum.Min))
		row("max", fmt.Sprintf("%.4f", sum.Max))
		if sum.Masked > 0 {
			row("masked", fmt.Sprintf("%d", sum.Masked))
		}
		row("lobes u/v", fmt.Sprintf("%d / %d", sum.HalfPeriodsU, sum.HalfPeriodsV))
		if sum.Degenerate {
			row("degenerate", "constant field")
		}
	} else {
		for _, c := range m.sample.Curves {
			sum := analysis.SummarizeCurve(c)
			row(sum.Label, fmt.Sprintf("%d zeros", sum.Zeros))
		}
	}
	row("theme", viz.Themes[m.theme].Name)
	return s.Panel.Render(strings.TrimSuffix(b.String(), "\n"))
}
