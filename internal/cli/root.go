// Package cli wires configuration, logging, seeding and the shell into the
// nfsim root command.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfsim/nfsim/internal/logger"
	"github.com/nfsim/nfsim/internal/shell"
	"github.com/nfsim/nfsim/pkg/config"
	"github.com/nfsim/nfsim/pkg/registry"
)

var (
	configPath string
	logLevel   string
	noBanner   bool
)

var rootCmd = &cobra.Command{
	Use:   "nfsim",
	Short: "Multi-user network file system simulator",
	Long: `nfsim simulates a multi-user network file system entirely in memory.

Each user gets an isolated namespace with its own root and working
directory; an interactive terminal routes commands (ls, cd, mkdir, touch,
write, read, rm, mv, cp, ...) to the active user's namespace.

Nothing is persisted: all state lives and dies with the process.`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: $XDG_CONFIG_HOME/nfsim/config.yaml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR); overrides config")
	rootCmd.Flags().BoolVar(&noBanner, "no-banner", false, "Suppress the welcome banner")
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags beat file and environment
	if logLevel != "" {
		cfg.Logging.Level = strings.ToUpper(logLevel)
	}
	if noBanner {
		cfg.Shell.Banner = false
	}

	// Log lines go to stderr so they never interleave with command output
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.Logging.Level)
	logger.Debug("configuration loaded (log level %s, %d seed users)",
		cfg.Logging.Level, len(cfg.Seed.Users))

	reg := registry.New()
	if err := seedRegistry(reg, cfg); err != nil {
		return err
	}

	sh := shell.New(reg, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
		Banner:       cfg.Shell.Banner,
		ClearOnStart: cfg.Shell.ClearOnStart,
	})
	sh.Run()
	return nil
}
