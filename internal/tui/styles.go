package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the dashboard styles so the persisted theme preference can
// swap the whole palette at once.
type Theme struct {
	Title     lipgloss.Style
	FilterBar lipgloss.Style
	Staged    lipgloss.Style
	Footer    lipgloss.Style
	Error     lipgloss.Style
	TableBase lipgloss.Style
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		FilterBar: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Staged:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		TableBase: lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
	}
}

// LightTheme adapts the palette for light terminals.
func LightTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("53")),
		FilterBar: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Staged:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
		TableBase: lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("250")),
	}
}

// ThemeByName resolves a theme preference; unknown names fall back to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
