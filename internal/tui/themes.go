package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines one color scheme for the page. The page ships with a dark
// and a light palette; 't' flips between them at runtime.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Label     lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Border    lipgloss.Color
	Bg        lipgloss.Color
	BgAlt     lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#FF6B6B"),
		Secondary: lipgloss.Color("#4ecdc4"),
		Accent:    lipgloss.Color("#ffe66d"),
		Text:      lipgloss.Color("#f1faee"),
		Label:     lipgloss.Color("#a8dadc"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#a8e6cf"),
		Border:    lipgloss.Color("#3d5a80"),
		Bg:        lipgloss.Color("#1a1a2e"),
		BgAlt:     lipgloss.Color("#2d3436"),
	}

	ThemeLight = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#d63031"),
		Secondary: lipgloss.Color("#00838f"),
		Accent:    lipgloss.Color("#9a7d0a"),
		Text:      lipgloss.Color("#2d3436"),
		Label:     lipgloss.Color("#355070"),
		Muted:     lipgloss.Color("#999999"),
		Success:   lipgloss.Color("#2e7d32"),
		Border:    lipgloss.Color("#90a4ae"),
		Bg:        lipgloss.Color("#f1f2f6"),
		BgAlt:     lipgloss.Color("#dfe6e9"),
	}

	// Themes lists every available palette.
	Themes = []Theme{ThemeDark, ThemeLight}
)

// GetTheme returns a theme by name, defaulting to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// Toggle returns the other palette.
func (t Theme) Toggle() Theme {
	if t.Name == ThemeDark.Name {
		return ThemeLight
	}
	return ThemeDark
}
