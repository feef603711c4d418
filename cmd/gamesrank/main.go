// Command gamesrank runs catalog maintenance against the configured stores
// without starting the HTTP server.
package main

import (
	"fmt"
	"os"

	"gamesrank/backend/internal/config"
	"gamesrank/backend/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel string
	logger   *zap.Logger
)

// rootCmd is the base command; subcommands open the stores themselves.
var rootCmd = &cobra.Command{
	Use:   "gamesrank",
	Short: "Gamesrank catalog and account maintenance",
	Long: `Maintenance tasks for the Gamesrank backend.

Available subcommands:
  import       - Replace the game catalog with a CSV or XLSX file
  sync         - Upsert the catalog from the external game-listing API
  create-admin - Create an administrator account`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()

		level := config.AppConfig.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		var err error
		logger, err = logging.New(level)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: LOG_LEVEL)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
