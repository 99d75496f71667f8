package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/strrl/rofi-recent/internal/recent"
)

// NewDebugCommand creates the debug-file command
func NewDebugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-file <path>",
		Short: "Debug a specific file to see its raw registrations",
		Args:  cobra.ExactArgs(1),
		RunE:  runDebugFile,
	}
}

func runDebugFile(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}
	records, err := a.loadRecords(cmd.Context())
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Debugging file: %s\n", path)
	fmt.Fprintln(out, "==========================================")

	items := recent.Timeline(records, path)
	if len(items) == 0 {
		fmt.Fprintln(out, "No registrations found for this file")
		return nil
	}

	exclude := recent.ParseExclusions(a.cfg.Exclude)
	fmt.Fprintf(out, "Found %d registrations:\n", len(items))
	for i, item := range items {
		fmt.Fprintf(out, "\n--- Registration %d ---\n", i+1)
		fmt.Fprintf(out, "Application: %s\n", item.App.Name)
		fmt.Fprintf(out, "Command:     %s\n", item.App.Exec)
		switch {
		case item.ProgramErr != nil:
			fmt.Fprintf(out, "Program:     %s\n", dimStyle.Render("skipped: "+item.ProgramErr.Error()))
		case exclude.Contains(item.Program):
			fmt.Fprintf(out, "Program:     %s %s\n", item.Program, dimStyle.Render("(excluded)"))
		default:
			fmt.Fprintf(out, "Program:     %s\n", item.Program)
		}
		fmt.Fprintf(out, "Type:        %s\n", item.ContentType)
		fmt.Fprintf(out, "Recorded:    %s\n", item.Recorded.Local().Format(timeLayout))
		if !item.App.Modified.IsZero() {
			fmt.Fprintf(out, "App used:    %s (%d times)\n", item.App.Modified.Local().Format(timeLayout), item.App.Count)
		}
	}
	return nil
}
