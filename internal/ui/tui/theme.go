package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
}

func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111111")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#111111")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#1f6f3f")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b00020")),
		Prompt: lipgloss.NewStyle().Bold(true),
	}
}

func DarkTheme() Theme {
	return Theme{
		Name:     "dark",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f2f2f2")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#f2f2f2")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#7ee2a8")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff6b81")),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f2f2f2")),
	}
}

func themeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
