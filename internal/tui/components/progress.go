package components

import (
	"fmt"

	"github.com/theirongolddev/savecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// TargetBar renders progress toward the savings target. fraction is clamped
// to [0, 1]; pct is the uncapped percentage printed after the bar.
func TargetBar(fraction, pct float64, reached bool, width int) string {
	t := theme.Active

	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	color := t.Red
	if reached {
		color = t.Green
	}

	pctStr := fmt.Sprintf("%.1f%%", pct)
	barW := width - lipgloss.Width(pctStr) - 1
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(fraction) +
		spaceStyle.Render(" ") +
		pctStyle.Render(pctStr)
}
