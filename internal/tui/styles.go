package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().Faint(true)
	sectionStyle     = lipgloss.NewStyle().MarginTop(1)
	footerStyle      = lipgloss.NewStyle().MarginTop(1).Faint(true)
)
