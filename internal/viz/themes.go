package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for terminal output.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Positive  lipgloss.Color
	Negative  lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeDiverging = Theme{
		Name:      "diverging",
		Primary:   lipgloss.Color("#00cccc"),
		Secondary: lipgloss.Color("#666688"),
		Accent:    lipgloss.Color("#ff88ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#555566"),
		Positive:  lipgloss.Color("#ff5544"),
		Negative:  lipgloss.Color("#4488ff"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Positive:  lipgloss.Color("#88ff88"),
		Negative:  lipgloss.Color("#008800"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Positive:  lipgloss.Color("#ffffff"),
		Negative:  lipgloss.Color("#888888"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Positive:  lipgloss.Color("#ffcc00"),
		Negative:  lipgloss.Color("#00a8cc"),
		Error:     lipgloss.Color("#ff4444"),
	}

	Themes = []Theme{ThemeDiverging, ThemeRetro, ThemeMinimal, ThemeOcean}
)

// GetTheme returns a theme by name, falling back to the diverging theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDiverging
}

// ThemeNames returns the names of the built-in themes.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
