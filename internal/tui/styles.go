// Package tui renders the portfolio as a single scrolling page in the
// terminal: a sidebar of section anchors next to a viewport holding the
// stacked sections, with the typewriter and reveal animations driving the
// hero banner and section entrances.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles is the full style set derived from the active theme. It is rebuilt
// whenever the theme flips.
type Styles struct {
	Sidebar            lipgloss.Style
	SidebarTitle       lipgloss.Style
	SidebarItem        lipgloss.Style
	SidebarItemActive  lipgloss.Style
	SidebarItemCurrent lipgloss.Style
	SidebarHelp        lipgloss.Style

	SectionTitle lipgloss.Style
	Subtitle     lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Muted        lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Accent       lipgloss.Style

	HeroName lipgloss.Style
	HeroRole lipgloss.Style
	Cursor   lipgloss.Style

	Box      lipgloss.Style
	Card     lipgloss.Style
	TagChip  lipgloss.Style
	BarFill  lipgloss.Style
	BarEmpty lipgloss.Style

	Content lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(t.Border).
			Padding(1, 1),

		SidebarTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1).
			MarginBottom(1),

		SidebarItem: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),

		SidebarItemActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Background(t.BgAlt).
			Padding(0, 1),

		SidebarItemCurrent: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			Padding(0, 1),

		SidebarHelp: lipgloss.NewStyle().
			Foreground(t.Muted).
			MarginTop(1).
			Padding(0, 1),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Secondary),

		Label: lipgloss.NewStyle().
			Foreground(t.Label).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(t.Text),

		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),

		Help: lipgloss.NewStyle().
			Foreground(t.Muted),

		Error: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		HeroName: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),

		HeroRole: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(t.Accent),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2).
			Margin(0, 1, 0, 0),

		TagChip: lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.BgAlt).
			Padding(0, 1).
			Margin(0, 1, 0, 0),

		BarFill: lipgloss.NewStyle().
			Foreground(t.Secondary),

		BarEmpty: lipgloss.NewStyle().
			Foreground(t.Muted),

		Content: lipgloss.NewStyle().
			Padding(0, 2),
	}
}
