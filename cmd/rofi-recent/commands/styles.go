package commands

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const timeLayout = "2006-01-02 15:04"
