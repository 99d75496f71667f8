package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strrl/rofi-recent/internal/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	})

	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return &ExitError{Code: ExitSetup, Err: err}
	}
	out, err := a.cfg.TOML()
	if err != nil {
		return err
	}
	if a.configPath != "" {
		fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("# loaded from "+a.configPath))
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cfgFile)
		return nil
	}
	path, err := config.DefaultFilePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
