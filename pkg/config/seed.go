package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Seed entries are heterogeneous: a YAML list mixing files and directories,
// discriminated by a "type" key. Each variant is decoded into its own
// struct with mapstructure, the same pattern the config uses everywhere a
// section's shape depends on a type selector.

// SeedEntry is one decoded seed entry.
//
// Exactly one of the two interpretations applies, chosen by Kind:
// directories carry only a name, files a name plus optional content.
type SeedEntry struct {
	// Kind is "file" or "directory"
	Kind string

	// Name of the entry created in the user's root directory
	Name string

	// Content is the initial payload; files only
	Content string
}

// seedFileConfig is the mapstructure shape of a "file" entry.
type seedFileConfig struct {
	Name    string `mapstructure:"name"`
	Content string `mapstructure:"content"`
}

// seedDirectoryConfig is the mapstructure shape of a "directory" entry.
type seedDirectoryConfig struct {
	Name string `mapstructure:"name"`
}

// DecodeSeedEntries decodes a user's raw seed entries into their typed
// forms. Validation has already confirmed every entry carries a known
// "type"; this decodes the per-type fields and enforces that names are
// present.
func DecodeSeedEntries(raw []map[string]any) ([]SeedEntry, error) {
	entries := make([]SeedEntry, 0, len(raw))

	for i, item := range raw {
		kind, _ := item["type"].(string)

		switch kind {
		case "file":
			var fileCfg seedFileConfig
			if err := mapstructure.Decode(item, &fileCfg); err != nil {
				return nil, fmt.Errorf("entries[%d]: failed to decode file entry: %w", i, err)
			}
			if fileCfg.Name == "" {
				return nil, fmt.Errorf("entries[%d]: file entry requires a name", i)
			}
			entries = append(entries, SeedEntry{
				Kind:    "file",
				Name:    fileCfg.Name,
				Content: fileCfg.Content,
			})

		case "directory":
			var dirCfg seedDirectoryConfig
			if err := mapstructure.Decode(item, &dirCfg); err != nil {
				return nil, fmt.Errorf("entries[%d]: failed to decode directory entry: %w", i, err)
			}
			if dirCfg.Name == "" {
				return nil, fmt.Errorf("entries[%d]: directory entry requires a name", i)
			}
			entries = append(entries, SeedEntry{
				Kind: "directory",
				Name: dirCfg.Name,
			})

		default:
			return nil, fmt.Errorf("entries[%d]: unknown entry type %q", i, kind)
		}
	}

	return entries, nil
}
