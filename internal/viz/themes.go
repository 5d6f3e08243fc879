package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	// Heat bands for sphere cells, dimmest first.
	Heat [4]lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#7b61ff"), // Violet
		Secondary: lipgloss.Color("#3b82f6"), // Blue
		Accent:    lipgloss.Color("#db2777"), // Pink
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Heat:      [4]lipgloss.Color{"#2a2466", "#4b3fb8", "#7b61ff", "#e0d8ff"},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Heat:      [4]lipgloss.Color{"#004400", "#008800", "#00cc00", "#88ff88"},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Heat:      [4]lipgloss.Color{"#444444", "#888888", "#cccccc", "#ffffff"},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Heat:      [4]lipgloss.Color{"#0a2a4a", "#0077be", "#00a8cc", "#bff4ff"},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Heat:      [4]lipgloss.Color{"#5a2b4a", "#b0475f", "#ff6b6b", "#ffe0a8"},
	}

	// Default theme
	CurrentTheme = ThemeCyberpunk

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme moves to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeCyberpunk
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// HeatStyles are the canvas colour bands of t.
func (t Theme) HeatStyles() []lipgloss.Style {
	out := make([]lipgloss.Style, len(t.Heat))
	for i, c := range t.Heat {
		out[i] = lipgloss.NewStyle().Foreground(c)
	}
	return out
}
