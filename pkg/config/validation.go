package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom rules.
//
// Struct tags cover field-level constraints; validateCustomRules handles
// cross-field rules that cannot be expressed in tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(cfg)
}

// validateCustomRules performs custom validation beyond struct tags.
func validateCustomRules(cfg *Config) error {
	// Seed usernames must be unique: the registry would reject the
	// duplicate at startup anyway, but failing here names the config issue
	names := make(map[string]bool)
	for i, user := range cfg.Seed.Users {
		if names[user.Username] {
			return fmt.Errorf("seed.users[%d]: duplicate username %q", i, user.Username)
		}
		names[user.Username] = true
	}

	// Seed entries are validated structurally here; full decoding happens
	// in DecodeSeedEntries at startup
	for i, user := range cfg.Seed.Users {
		for j, raw := range user.Entries {
			kind, ok := raw["type"].(string)
			if !ok || kind == "" {
				return fmt.Errorf("seed.users[%d].entries[%d]: missing entry type", i, j)
			}
			if kind != "file" && kind != "directory" {
				return fmt.Errorf("seed.users[%d].entries[%d]: unknown entry type %q", i, j, kind)
			}
		}
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
