package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/strrl/rofi-recent/pkg/models"
)

// Loader builds the program groups shown by the TUI
type Loader func(ctx context.Context) (models.ProgramGroups, error)

// Message types for async operations
type (
	// GroupsLoadedMsg carries the result of one load request. Results whose
	// RequestID no longer matches the model's are dropped.
	GroupsLoadedMsg struct {
		RequestID string
		Groups    models.ProgramGroups
		Error     error
	}

	// TickMsg is sent periodically for spinner animation
	TickMsg time.Time
)

func newRequestID() string {
	return uuid.NewString()
}

// loadGroupsCmd runs the loader off the UI goroutine
func loadGroupsCmd(ctx context.Context, requestID string, load Loader) tea.Cmd {
	return func() tea.Msg {
		groups, err := load(ctx)
		return GroupsLoadedMsg{
			RequestID: requestID,
			Groups:    groups,
			Error:     err,
		}
	}
}

// tickCmd creates a ticker for spinner animation
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
