// Package config loads and saves the savecalc TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/theirongolddev/savecalc/internal/tui/theme"

	"github.com/BurntSushi/toml"
)

// Config holds all savecalc configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
}

// AppearanceConfig holds theme settings. The dark/light display mode is not
// configurable; it lives only in the running session.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls the zap logger. An empty File keeps the TUI silent.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// Theme families and levels accepted by Validate.
var (
	knownThemes = theme.Names()
	knownLevels = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "RM",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "savecalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "savecalc")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied last.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	cfg.Normalize()
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SAVECALC_CURRENCY"); v != "" {
		cfg.General.Currency = v
	}
	if v := os.Getenv("SAVECALC_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
}

// Normalize lower-cases the enumerated settings so they match the names
// used by the theme and logging packages. Call it after applying overrides.
func (c *Config) Normalize() {
	c.Appearance.Theme = strings.ToLower(strings.TrimSpace(c.Appearance.Theme))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Validate checks enumerated settings. Names must already be normalized.
func (c Config) Validate() error {
	if !slices.Contains(knownThemes, c.Appearance.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Appearance.Theme, strings.Join(knownThemes, ", "))
	}
	if !slices.Contains(knownLevels, c.Logging.Level) {
		return fmt.Errorf("unknown log level %q (want one of %s)", c.Logging.Level, strings.Join(knownLevels, ", "))
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
