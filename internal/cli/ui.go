package cli

import "github.com/charmbracelet/lipgloss"

var (
	styleHead   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleAbbrev = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
