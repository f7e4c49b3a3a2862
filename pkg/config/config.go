package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete nfsim configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority, applied by the caller)
//  2. Environment variables (NFSIM_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Shell controls the interactive terminal front end
	Shell ShellConfig `mapstructure:"shell"`

	// Seed declares users and namespace entries created at startup
	Seed SeedConfig `mapstructure:"seed"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized
	// to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// ShellConfig controls the terminal front end.
type ShellConfig struct {
	// Banner prints the welcome banner on startup
	Banner bool `mapstructure:"banner"`

	// ClearOnStart clears the screen before the banner
	ClearOnStart bool `mapstructure:"clear_on_start"`
}

// SeedConfig declares state created once at startup, before the first
// prompt. Seeding failures are fatal at startup; they can never surface
// mid-session.
type SeedConfig struct {
	// Users to register at startup, each with optional initial entries
	Users []SeedUser `mapstructure:"users" validate:"dive"`
}

// SeedUser is one user registered at startup.
type SeedUser struct {
	// Username is the session identifier
	Username string `mapstructure:"username" validate:"required"`

	// Lastname is the display name used in prompts
	Lastname string `mapstructure:"lastname" validate:"required"`

	// Entries are created in the user's root directory. Each entry is a
	// type-discriminated map ("file" or "directory"); see seed.go for the
	// decoded forms.
	Entries []map[string]any `mapstructure:"entries"`
}

// Load loads configuration from file, environment, and defaults.
//
// Parameters:
//   - configPath: Path to config file (empty string uses default location)
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: Configuration loading or validation error
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures environment variable and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the NFSIM_ prefix with underscores
	// Example: NFSIM_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("NFSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults live in viper itself. For the booleans, a decoded struct
	// cannot tell an absent key from an explicit false; for all of them,
	// AutomaticEnv only surfaces NFSIM_* overrides for keys viper already
	// knows, so every key needs a registered default.
	v.SetDefault("logging.level", "INFO")
	v.SetDefault("shell.banner", true)
	v.SetDefault("shell.clear_on_start", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/nfsim/config.yaml
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists. A missing file
// is acceptable; defaults take over.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to the
// current directory if the home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "nfsim")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "nfsim")
}
