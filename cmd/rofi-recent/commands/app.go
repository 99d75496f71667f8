package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/strrl/rofi-recent/internal/config"
	"github.com/strrl/rofi-recent/internal/recent"
	"github.com/strrl/rofi-recent/internal/xbel"
	"github.com/strrl/rofi-recent/pkg/models"
)

// app bundles what every command needs for one invocation
type app struct {
	cfg          *config.Config
	configPath   string
	registryPath string
	homeDir      string
	logger       *log.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, configPath, err := config.Load(config.LoadOptions{
		ConfigFilePath: cfgFile,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	registryPath := cfg.Registry
	if registryPath == "" {
		registryPath, err = xbel.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	// without a home directory paths are shown unabbreviated
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Debug("home directory unavailable", "err", err)
	}

	logger.Debug("configuration loaded", "config", configPath, "registry", registryPath, "limit", cfg.Limit)

	return &app{
		cfg:          cfg,
		configPath:   configPath,
		registryPath: registryPath,
		homeDir:      homeDir,
		logger:       logger,
	}, nil
}

func (a *app) options() recent.Options {
	return recent.Options{
		Limit:        a.cfg.Limit,
		Exclude:      recent.ParseExclusions(a.cfg.Exclude),
		ShowAllPaths: a.cfg.ShowAllPaths,
		HomeDir:      a.homeDir,
	}
}

func (a *app) loadRecords(ctx context.Context) ([]models.UsageRecord, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	records, err := xbel.Load(ctx, a.registryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read recently used files: %w", err)
	}
	return records, nil
}

func (a *app) buildGroups(ctx context.Context) (models.ProgramGroups, error) {
	records, err := a.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return recent.Build(records, a.options(), a.logger), nil
}
