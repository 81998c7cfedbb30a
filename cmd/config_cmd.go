package cmd

import (
	"fmt"

	"github.com/theirongolddev/savecalc/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	currency := cfg.General.Currency
	if currency == "" {
		currency = "(none)"
	}
	fmt.Fprintf(out, "    Currency: %s\n", currency)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out, "    Mode:  dark at start, ctrl+t toggles for the session")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Fprintf(out, "    File:  %s\n", cfg.Logging.File)
	} else {
		fmt.Fprintln(out, "    File:  not set (TUI does not log)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `savecalc setup` to reconfigure.")
	return nil
}
