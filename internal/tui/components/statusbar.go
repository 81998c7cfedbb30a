package components

import (
	"strings"

	"github.com/theirongolddev/savecalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// mode and an optional message on the right.
func RenderStatusBar(width int, mode, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [enter]calculate  [^t]mode  [^r]reset  [f1]help  [^c]quit"
	right := mode + " "
	if message != "" {
		right = message + "  " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop the hints before the mode/message on narrow terminals.
		left = ""
		padding = max(width-lipgloss.Width(right), 0)
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
