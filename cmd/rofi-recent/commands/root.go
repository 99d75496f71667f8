package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/strrl/rofi-recent/internal/recent"
	"github.com/strrl/rofi-recent/internal/rofi"
)

var (
	// Version is set via -ldflags
	Version = "dev"

	verbose bool
	cfgFile string
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rofi-recent [selection]",
		Short: "List and reopen recently used files, grouped by program",
		Long: `rofi-recent is a rofi script mode that lists recently used files per program.

Without arguments it prints the listing in rofi's script-mode protocol.
With a selection (as rofi passes it back) it opens the chosen file in its program.

  rofi -modi recent:rofi-recent -show recent`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntP("limit", "l", recent.DefaultLimit, "max number of recent files to list per program (0 = unlimited)")
	flags.StringP("exclude", "e", "", "programs to exclude, word-for-word from the listing, space separated")
	flags.BoolP("show-all-paths", "s", false, "show paths for all files")
	flags.String("registry", "", "path to recently-used.xbel (default is $XDG_DATA_HOME/recently-used.xbel)")
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/rofi-recent/config.toml)")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging on stderr")

	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewDebugCommand())
	rootCmd.AddCommand(NewTUICommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitSetup)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}

	if len(args) == 0 {
		return runList(cmd, a)
	}
	return runLaunch(cmd, a, args)
}

// runList prints the rofi listing
func runList(cmd *cobra.Command, a *app) error {
	groups, err := a.buildGroups(cmd.Context())
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}
	return rofi.Write(cmd.OutOrStdout(), groups)
}

// runLaunch opens the file a rofi selection refers to
func runLaunch(cmd *cobra.Command, a *app, args []string) error {
	fail := func(err error) error {
		// rofi only shows stdout; keep the menu open with the error in it
		if inRofi() {
			_ = rofi.WriteMessage(cmd.OutOrStdout(), fmt.Sprintf("error: %v", err))
		}
		return &ExitError{Code: ExitLaunch, Err: err}
	}

	sel, err := rofi.ParseSelection(args)
	if err != nil {
		return fail(err)
	}

	groups, err := a.buildGroups(cmd.Context())
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}

	entry, err := recent.ResolveSelection(groups, sel.Program, sel.Info, sel.Text)
	if err != nil {
		return fail(err)
	}

	a.logger.Debug("launching", "program", entry.Program, "path", entry.Path)
	if err := recent.Launch(entry.Program, entry.Path); err != nil {
		return fail(err)
	}
	return nil
}

func inRofi() bool {
	return os.Getenv(rofi.RetvEnv) != ""
}
