package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI.
type Theme struct {
	Name    string
	Cell    lipgloss.Color // live cells
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:    "retro",
		Cell:    lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Running: lipgloss.Color("#88ff88"),
		Paused:  lipgloss.Color("#ffff00"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Cell:    lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#00ffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ff8800"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Cell:    lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ffaa00"),
	}
)

var themes = []Theme{ThemeRetroGreen, ThemeCyberpunk, ThemeMinimal}

// CurrentTheme is the active color scheme.
var CurrentTheme = ThemeRetroGreen

// NextTheme cycles to the following theme and returns it.
func NextTheme() Theme {
	for i, t := range themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = themes[(i+1)%len(themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = themes[0]
	return CurrentTheme
}

// ThemeNames lists the available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
