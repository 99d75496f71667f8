package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Spinner represents a loading spinner
type Spinner struct {
	frames []string
	frame  int
}

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{
		frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	}
}

// Next advances the spinner to the next frame
func (s *Spinner) Next() {
	s.frame = (s.frame + 1) % len(s.frames)
}

// View returns the current spinner frame
func (s *Spinner) View() string {
	return s.frames[s.frame]
}

// LoadingIndicator pairs a spinner with a message
type LoadingIndicator struct {
	spinner *Spinner
	message string
}

// NewLoadingIndicator creates a new loading indicator
func NewLoadingIndicator(message string) *LoadingIndicator {
	return &LoadingIndicator{
		spinner: NewSpinner(),
		message: message,
	}
}

// SetMessage updates the loading message
func (l *LoadingIndicator) SetMessage(message string) {
	l.message = message
}

// Tick advances the spinner animation
func (l *LoadingIndicator) Tick() {
	l.spinner.Next()
}

// View renders the loading indicator
func (l *LoadingIndicator) View() string {
	spinnerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212"))

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	return fmt.Sprintf("%s %s",
		spinnerStyle.Render(l.spinner.View()),
		messageStyle.Render(l.message))
}

// LoadingOverlay creates a centered loading overlay
func LoadingOverlay(width, height int, indicator *LoadingIndicator) string {
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[q to quit]")

	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(fmt.Sprintf("%s\n\n%s", indicator.View(), hint))
}
