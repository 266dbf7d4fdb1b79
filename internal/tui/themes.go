package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algo"
)

// Theme defines the color of every bar role plus the chrome around the chart.
type Theme struct {
	Name      string
	Unsorted  lipgloss.Color
	Sorted    lipgloss.Color
	Candidate lipgloss.Color
	Cursor    lipgloss.Color
	Compare   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:      "classic",
		Unsorted:  lipgloss.Color("#add8e6"), // Light blue
		Sorted:    lipgloss.Color("#ffff00"),
		Candidate: lipgloss.Color("#ff0000"),
		Cursor:    lipgloss.Color("#00ff00"),
		Compare:   lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#808080"),
		Accent:    lipgloss.Color("#00ffff"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Unsorted:  lipgloss.Color("#00ffff"),
		Sorted:    lipgloss.Color("#ff00ff"),
		Candidate: lipgloss.Color("#ff0000"),
		Cursor:    lipgloss.Color("#ffff00"),
		Compare:   lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Accent:    lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Unsorted:  lipgloss.Color("#005500"), // Dim phosphor
		Sorted:    lipgloss.Color("#00ff00"),
		Candidate: lipgloss.Color("#ffff00"),
		Cursor:    lipgloss.Color("#88ff88"),
		Compare:   lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Accent:    lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Unsorted:  lipgloss.Color("#0077be"),
		Sorted:    lipgloss.Color("#00ff88"),
		Candidate: lipgloss.Color("#ff4444"),
		Cursor:    lipgloss.Color("#ffd700"),
		Compare:   lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Accent:    lipgloss.Color("#00a8cc"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Unsorted:  lipgloss.Color("#8b6b8c"),
		Sorted:    lipgloss.Color("#feca57"),
		Candidate: lipgloss.Color("#ff4757"),
		Cursor:    lipgloss.Color("#ff9ff3"),
		Compare:   lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Accent:    lipgloss.Color("#ff6b6b"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// RoleColor maps a bar role to the theme's color for it.
func (t Theme) RoleColor(r algo.Role) lipgloss.Color {
	switch r {
	case algo.RoleSorted:
		return t.Sorted
	case algo.RoleCandidate:
		return t.Candidate
	case algo.RoleCursor:
		return t.Cursor
	case algo.RoleCompare:
		return t.Compare
	default:
		return t.Unsorted
	}
}
