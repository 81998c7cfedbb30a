package cmd

import (
	"fmt"

	"github.com/theirongolddev/savecalc/internal/config"
	"github.com/theirongolddev/savecalc/internal/session"
	"github.com/theirongolddev/savecalc/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	sess := session.New(session.Dark, log)
	app := tui.NewApp(sess, tui.Options{
		Currency:  cfg.General.Currency,
		Theme:     cfg.Appearance.Theme,
		NeedSetup: !config.Exists(),
		Log:       log,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	log.Info("tui started", zap.String("theme", cfg.Appearance.Theme))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
