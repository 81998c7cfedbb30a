// Package theme defines color themes for the savecalc TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceBright lipgloss.Color // Focused input, selected row
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (titles, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	Green         lipgloss.Color
	Red           lipgloss.Color
	Yellow        lipgloss.Color
	OnBadge       lipgloss.Color // Text drawn on green/red badges
}

// Family pairs a dark and a light palette under one name.
type Family struct {
	Name  string
	Dark  Theme
	Light Theme
}

// Variant returns the dark or light palette.
func (f Family) Variant(dark bool) Theme {
	if dark {
		return f.Dark
	}
	return f.Light
}

// Flexoki is the default family - warm, paper-inspired.
var Flexoki = Family{
	Name: "flexoki",
	Dark: Theme{
		Name:          "flexoki-dark",
		Background:    lipgloss.Color("#100F0F"),
		Surface:       lipgloss.Color("#1C1B1A"),
		SurfaceBright: lipgloss.Color("#343331"),
		Border:        lipgloss.Color("#403E3C"),
		BorderAccent:  lipgloss.Color("#8B7EC8"),
		TextDim:       lipgloss.Color("#575653"),
		TextMuted:     lipgloss.Color("#878580"),
		TextPrimary:   lipgloss.Color("#FFFCF0"),
		Accent:        lipgloss.Color("#8B7EC8"),
		AccentBright:  lipgloss.Color("#A699D0"),
		Green:         lipgloss.Color("#879A39"),
		Red:           lipgloss.Color("#D14D41"),
		Yellow:        lipgloss.Color("#D0A215"),
		OnBadge:       lipgloss.Color("#FFFCF0"),
	},
	Light: Theme{
		Name:          "flexoki-light",
		Background:    lipgloss.Color("#FFFCF0"),
		Surface:       lipgloss.Color("#F2F0E5"),
		SurfaceBright: lipgloss.Color("#E6E4D9"),
		Border:        lipgloss.Color("#CECDC3"),
		BorderAccent:  lipgloss.Color("#5E409D"),
		TextDim:       lipgloss.Color("#B7B5AC"),
		TextMuted:     lipgloss.Color("#6F6E69"),
		TextPrimary:   lipgloss.Color("#100F0F"),
		Accent:        lipgloss.Color("#5E409D"),
		AccentBright:  lipgloss.Color("#735EB5"),
		Green:         lipgloss.Color("#66800B"),
		Red:           lipgloss.Color("#AF3029"),
		Yellow:        lipgloss.Color("#AD8301"),
		OnBadge:       lipgloss.Color("#FFFCF0"),
	},
}

// Catppuccin pairs Mocha (dark) with Latte (light).
var Catppuccin = Family{
	Name: "catppuccin",
	Dark: Theme{
		Name:          "catppuccin-mocha",
		Background:    lipgloss.Color("#1E1E2E"),
		Surface:       lipgloss.Color("#313244"),
		SurfaceBright: lipgloss.Color("#585B70"),
		Border:        lipgloss.Color("#585B70"),
		BorderAccent:  lipgloss.Color("#CBA6F7"),
		TextDim:       lipgloss.Color("#6C7086"),
		TextMuted:     lipgloss.Color("#A6ADC8"),
		TextPrimary:   lipgloss.Color("#CDD6F4"),
		Accent:        lipgloss.Color("#CBA6F7"),
		AccentBright:  lipgloss.Color("#DDC4FA"),
		Green:         lipgloss.Color("#A6E3A1"),
		Red:           lipgloss.Color("#F38BA8"),
		Yellow:        lipgloss.Color("#F9E2AF"),
		OnBadge:       lipgloss.Color("#1E1E2E"),
	},
	Light: Theme{
		Name:          "catppuccin-latte",
		Background:    lipgloss.Color("#EFF1F5"),
		Surface:       lipgloss.Color("#E6E9EF"),
		SurfaceBright: lipgloss.Color("#CCD0DA"),
		Border:        lipgloss.Color("#BCC0CC"),
		BorderAccent:  lipgloss.Color("#8839EF"),
		TextDim:       lipgloss.Color("#9CA0B0"),
		TextMuted:     lipgloss.Color("#6C6F85"),
		TextPrimary:   lipgloss.Color("#4C4F69"),
		Accent:        lipgloss.Color("#8839EF"),
		AccentBright:  lipgloss.Color("#7287FD"),
		Green:         lipgloss.Color("#40A02B"),
		Red:           lipgloss.Color("#D20F39"),
		Yellow:        lipgloss.Color("#DF8E1D"),
		OnBadge:       lipgloss.Color("#EFF1F5"),
	},
}

// TokyoNight pairs Night (dark) with Day (light).
var TokyoNight = Family{
	Name: "tokyo-night",
	Dark: Theme{
		Name:          "tokyo-night",
		Background:    lipgloss.Color("#1A1B26"),
		Surface:       lipgloss.Color("#24283B"),
		SurfaceBright: lipgloss.Color("#414868"),
		Border:        lipgloss.Color("#565F89"),
		BorderAccent:  lipgloss.Color("#BB9AF7"),
		TextDim:       lipgloss.Color("#565F89"),
		TextMuted:     lipgloss.Color("#A9B1D6"),
		TextPrimary:   lipgloss.Color("#C0CAF5"),
		Accent:        lipgloss.Color("#BB9AF7"),
		AccentBright:  lipgloss.Color("#D4BCFA"),
		Green:         lipgloss.Color("#9ECE6A"),
		Red:           lipgloss.Color("#F7768E"),
		Yellow:        lipgloss.Color("#E0AF68"),
		OnBadge:       lipgloss.Color("#1A1B26"),
	},
	Light: Theme{
		Name:          "tokyo-day",
		Background:    lipgloss.Color("#E1E2E7"),
		Surface:       lipgloss.Color("#D5D6DB"),
		SurfaceBright: lipgloss.Color("#C4C8DA"),
		Border:        lipgloss.Color("#A8AECB"),
		BorderAccent:  lipgloss.Color("#9854F1"),
		TextDim:       lipgloss.Color("#A8AECB"),
		TextMuted:     lipgloss.Color("#6172B0"),
		TextPrimary:   lipgloss.Color("#3760BF"),
		Accent:        lipgloss.Color("#9854F1"),
		AccentBright:  lipgloss.Color("#7847BD"),
		Green:         lipgloss.Color("#587539"),
		Red:           lipgloss.Color("#F52A65"),
		Yellow:        lipgloss.Color("#8C6C3E"),
		OnBadge:       lipgloss.Color("#E1E2E7"),
	},
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Family{
	Name: "terminal",
	Dark: Theme{
		Name:          "terminal-dark",
		Background:    lipgloss.Color("0"),
		Surface:       lipgloss.Color("0"),
		SurfaceBright: lipgloss.Color("8"),
		Border:        lipgloss.Color("8"),
		BorderAccent:  lipgloss.Color("5"),
		TextDim:       lipgloss.Color("8"),
		TextMuted:     lipgloss.Color("7"),
		TextPrimary:   lipgloss.Color("15"),
		Accent:        lipgloss.Color("5"),
		AccentBright:  lipgloss.Color("13"),
		Green:         lipgloss.Color("2"),
		Red:           lipgloss.Color("1"),
		Yellow:        lipgloss.Color("3"),
		OnBadge:       lipgloss.Color("15"),
	},
	Light: Theme{
		Name:          "terminal-light",
		Background:    lipgloss.Color("15"),
		Surface:       lipgloss.Color("15"),
		SurfaceBright: lipgloss.Color("7"),
		Border:        lipgloss.Color("7"),
		BorderAccent:  lipgloss.Color("5"),
		TextDim:       lipgloss.Color("7"),
		TextMuted:     lipgloss.Color("8"),
		TextPrimary:   lipgloss.Color("0"),
		Accent:        lipgloss.Color("5"),
		AccentBright:  lipgloss.Color("13"),
		Green:         lipgloss.Color("2"),
		Red:           lipgloss.Color("1"),
		Yellow:        lipgloss.Color("3"),
		OnBadge:       lipgloss.Color("15"),
	},
}

// All available theme families.
var All = []Family{Flexoki, Catppuccin, TokyoNight, Terminal}

// Active is the currently selected palette.
var Active = Flexoki.Dark

var activeFamily = Flexoki

// ByName returns a family by name, defaulting to Flexoki.
func ByName(name string) Family {
	for _, f := range All {
		if f.Name == name {
			return f
		}
	}
	return Flexoki
}

// Families returns the available families in display order.
func Families() []Family {
	return append([]Family(nil), All...)
}

// Names lists the family names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, f := range All {
		names[i] = f.Name
	}
	return names
}

// SetActive selects a family and its dark or light palette.
func SetActive(name string, dark bool) {
	activeFamily = ByName(name)
	Active = activeFamily.Variant(dark)
}

// SetDark switches the active family between its dark and light palette.
func SetDark(dark bool) {
	Active = activeFamily.Variant(dark)
}

// ActiveFamily returns the family of the active palette.
func ActiveFamily() Family {
	return activeFamily
}
