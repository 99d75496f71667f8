// Package config loads rofi-recent settings from defaults, a TOML file, the
// environment and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name
	AppName = "rofi-recent"
	// ConfigFileName is the config file name without extension
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension
	ConfigFileExt = "toml"
	// EnvPrefix prefixes environment overrides, e.g. ROFI_RECENT_LIMIT
	EnvPrefix = "ROFI_RECENT"
)

// ErrInvalidConfig is returned when a value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the effective settings
type Config struct {
	Limit        int    `mapstructure:"limit" toml:"limit"`
	Exclude      string `mapstructure:"exclude" toml:"exclude"`
	ShowAllPaths bool   `mapstructure:"show_all_paths" toml:"show_all_paths"`
	Registry     string `mapstructure:"registry" toml:"registry"`
	LogLevel     string `mapstructure:"log_level" toml:"log_level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Limit:    5,
		LogLevel: "warn",
	}
}

// flagKeys maps flag names to config keys
var flagKeys = map[string]string{
	"limit":          "limit",
	"exclude":        "exclude",
	"show-all-paths": "show_all_paths",
	"registry":       "registry",
}

// ConfigDir returns $XDG_CONFIG_HOME/rofi-recent, defaulting to ~/.config
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// DefaultFilePath returns where the config file is looked for
func DefaultFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// LoadOptions tells Load where to look
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set and must exist
	ConfigFilePath string
	// Flags, when set, override everything else for flags the user changed
	Flags *pflag.FlagSet
}

// Load resolves the configuration. It returns the path of the file that was
// read, or "" when only defaults, environment and flags applied.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("limit", defaults.Limit)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("show_all_paths", defaults.ShowAllPaths)
	v.SetDefault("registry", defaults.Registry)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		path, err := DefaultFilePath()
		if err != nil {
			return nil, "", err
		}
		if _, err := os.Stat(path); err == nil {
			resolvedPath = path
		}
	}

	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", resolvedPath, err)
		}
	}

	if opts.Flags != nil {
		for flagName, key := range flagKeys {
			if f := opts.Flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidConfig, c.Limit)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// TOML renders the configuration as a config file
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return string(data), nil
}
