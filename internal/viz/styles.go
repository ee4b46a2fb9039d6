package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles bundles the lipgloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Key      lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Subtitle: lipgloss.NewStyle().Foreground(t.Secondary),
		Label:    lipgloss.NewStyle().Foreground(t.Muted),
		Value:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Key:      lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Positive: lipgloss.NewStyle().Foreground(t.Positive),
		Negative: lipgloss.NewStyle().Foreground(t.Negative),
	}
}

// KeyHints renders "key action" pairs on one line.
func (s Styles) KeyHints(pairs ...[2]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = s.Key.Render(p[0]) + " " + s.Label.Render(p[1])
	}
	return strings.Join(parts, "  ")
}

// Separator is a muted horizontal rule of the given width.
func (s Styles) Separator(width int) string {
	if width < 1 {
		return ""
	}
	return s.Subtitle.Render(strings.Repeat("─", width))
}

// Shade colours each shaded character by the sign of the value it came
// from. Spaces pass through unstyled.
func (s Styles) Shade(rows []string, signs [][]int) string {
	var b strings.Builder
	for i, row := range rows {
		for j, r := range []rune(row) {
			switch {
			case r == ' ' || i >= len(signs) || j >= len(signs[i]):
				b.WriteRune(r)
			case signs[i][j] > 0:
				b.WriteString(s.Positive.Render(string(r)))
			case signs[i][j] < 0:
				b.WriteString(s.Negative.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
