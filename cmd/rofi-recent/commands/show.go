package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strrl/rofi-recent/pkg/models"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [program]",
		Short: "Show programs or their recent files without rofi",
		Long: `Show the listing in a human-readable format.
Without arguments: lists all programs
With a program: lists that program's recent files`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}
	groups, err := a.buildGroups(cmd.Context())
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}

	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(out, "No recent files found")
		return nil
	}

	if len(args) == 0 {
		showPrograms(cmd, groups)
		return nil
	}
	return showFiles(cmd, groups, args[0])
}

func showPrograms(cmd *cobra.Command, groups models.ProgramGroups) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Programs:"))
	fmt.Fprintln(out, "=========")
	for i, program := range groups.Programs() {
		entries := groups[program]
		fmt.Fprintf(out, "%d. %s\n", i+1, program)
		fmt.Fprintf(out, "   Files: %d\n", len(entries))
		if len(entries) > 0 {
			fmt.Fprintf(out, "   Last Activity: %s\n", entries[0].LastModified.Local().Format(timeLayout))
		}
		fmt.Fprintln(out)
	}
}

func showFiles(cmd *cobra.Command, groups models.ProgramGroups, program string) error {
	entries, ok := groups[program]
	if !ok {
		return fmt.Errorf("program '%s' not found", program)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Recent files for '%s':", program)))
	fmt.Fprintln(out, "===================================")
	for i, entry := range entries {
		name := entry.DisplayName
		if entry.PathAttached {
			name += dimStyle.Render(" (name shared with another entry)")
		}
		fmt.Fprintf(out, "%d. %s\n", i+1, name)
		fmt.Fprintf(out, "   Path: %s\n", pathStyle.Render(entry.Path))
		fmt.Fprintf(out, "   Type: %s\n", entry.ContentType)
		fmt.Fprintf(out, "   Last Activity: %s\n", entry.LastModified.Local().Format(timeLayout))

		apps := make([]string, 0, len(entry.SearchTerms))
		for _, term := range entry.SearchTerms {
			apps = append(apps, term.AppName)
		}
		fmt.Fprintf(out, "   Opened by: %s\n", strings.Join(apps, ", "))
		fmt.Fprintln(out)
	}
	return nil
}
