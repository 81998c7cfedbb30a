package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/savecalc/internal/config"
	"github.com/theirongolddev/savecalc/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Theme    string
	Currency string
	LogLevel string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	return &SetupValues{
		Theme:    cfg.Appearance.Theme,
		Currency: cfg.General.Currency,
		LogLevel: cfg.Logging.Level,
	}
}

// NewSetupForm builds the first-run form. Answers are written into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, f := range theme.Families() {
		themeOpts = append(themeOpts, huh.NewOption(f.Name, f.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to savecalc").
				Description("Pick a few defaults. Run `savecalc setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Description("Each theme has a dark and a light palette; ctrl+t switches between them.").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Currency label").
				Description("Shown in front of amounts, e.g. RM, USD, €. Leave blank for none.").
				CharLimit(8).
				Value(&vals.Currency).
				Validate(validateCurrency),
			huh.NewSelect[string]().
				Title("Log level").
				Description("Only used when a log file is configured.").
				Options(
					huh.NewOption("info", "info"),
					huh.NewOption("debug", "debug"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("error", "error"),
				).
				Value(&vals.LogLevel),
		),
	).WithTheme(huh.ThemeCharm())
}

func validateCurrency(s string) error {
	if strings.ContainsAny(strings.TrimSpace(s), " \t") {
		return errors.New("currency label cannot contain spaces")
	}
	return nil
}

// SaveSetup merges the answers into the stored config and writes it.
func SaveSetup(vals *SetupValues) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	cfg.Appearance.Theme = vals.Theme
	cfg.General.Currency = strings.TrimSpace(vals.Currency)
	cfg.Logging.Level = vals.LogLevel

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid setup answers: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
