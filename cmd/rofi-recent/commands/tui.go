package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strrl/rofi-recent/internal/recent"
	"github.com/strrl/rofi-recent/internal/tui"
	"github.com/strrl/rofi-recent/pkg/models"
)

// NewTUICommand creates the tui command
func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse recent files interactively in the terminal",
		Long: `Browse the same listing rofi shows in an interactive terminal UI.
Selecting a file opens it in its program.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	entry, err := tui.ShowTUI(ctx, func(ctx context.Context) (models.ProgramGroups, error) {
		return a.buildGroups(ctx)
	})
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	if entry == nil {
		return nil
	}

	a.logger.Debug("launching", "program", entry.Program, "path", entry.Path)
	if err := recent.Launch(entry.Program, entry.Path); err != nil {
		return &ExitError{Code: ExitLaunch, Err: err}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Opened %s with %s\n", entry.Path, entry.Program)
	return nil
}
