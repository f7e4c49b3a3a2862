package config

import "strings"

// ApplyDefaults sets default values for any unspecified configuration
// fields.
//
// Default Strategy:
//   - Zero values are replaced with defaults
//   - Explicit values are preserved
//   - Every key is also seeded as a viper default before unmarshaling
//     (see setupViper): booleans because a decoded struct cannot tell an
//     absent key from an explicit false, and all keys so AutomaticEnv
//     surfaces NFSIM_* overrides. This pass re-applies for Configs built
//     without viper and normalizes case.
//   - An absent config file yields a fully defaulted configuration
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)
}
