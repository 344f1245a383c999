package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/spaces-server/internal/config"
	"github.com/carson-networks/spaces-server/internal/logging"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           "spaces-server",
	Short:         "Personal finance spaces API",
	Long:          "Serves spaces, transactions, budgets and recurring schedules over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Optional TOML config file; environment variables override it")
}

// setup loads the configuration and a logger at the configured level.
func setup() (*config.Config, *logrus.Logger, error) {
	logger := logging.SetupLogging()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := logging.SetLevel(logger, cfg.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, logger, nil
}
