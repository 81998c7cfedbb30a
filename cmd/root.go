// Package cmd implements the savecalc CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/savecalc/internal/config"
	"github.com/theirongolddev/savecalc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagTheme    string
	flagCurrency string
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "savecalc",
	Short: "Savings scenario calculator",
	Long: "Compare five fixed savings rates (80, 50, 30, 20 and 10% of income)\n" +
		"against a savings target over a number of months.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Theme family (flexoki, catppuccin, tokyo-night, terminal)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency label shown before amounts")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig applies command-line overrides on top of the config file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Appearance.Theme = flagTheme
	}
	if flags.Changed("currency") {
		cfg.General.Currency = flagCurrency
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Interactive commands never log
// to the terminal they draw on.
func newLogger(cfg config.Config, interactive bool) (*zap.Logger, error) {
	if cfg.Logging.File != "" || interactive {
		return logging.NewFile(cfg.Logging.Level, cfg.Logging.File)
	}
	return logging.New(cfg.Logging.Level)
}
