package cli

import (
	"fmt"

	"github.com/nfsim/nfsim/internal/logger"
	"github.com/nfsim/nfsim/pkg/config"
	"github.com/nfsim/nfsim/pkg/registry"
)

// seedRegistry registers the configured users and creates their initial
// entries. It runs before the first prompt; any failure is fatal so a bad
// seed never surfaces as a runtime surprise.
//
// Entries land in each user's root directory with the user as owner,
// leaving login state untouched.
func seedRegistry(reg *registry.Registry, cfg *config.Config) error {
	for _, user := range cfg.Seed.Users {
		if err := reg.Register(user.Username, user.Lastname); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user.Username, err)
		}

		entries, err := config.DecodeSeedEntries(user.Entries)
		if err != nil {
			return fmt.Errorf("failed to decode seed entries for %q: %w", user.Username, err)
		}

		session, err := reg.Lookup(user.Username)
		if err != nil {
			return fmt.Errorf("failed to look up seeded user %q: %w", user.Username, err)
		}

		for _, entry := range entries {
			switch entry.Kind {
			case "directory":
				err = session.FS().CreateDirectory(entry.Name, user.Username)
			case "file":
				err = session.FS().CreateFile(entry.Name, user.Username, entry.Content)
			}
			if err != nil {
				return fmt.Errorf("failed to seed entry %q for %q: %w", entry.Name, user.Username, err)
			}
		}

		logger.Info("seeded user %q with %d entries", user.Username, len(entries))
	}
	return nil
}
