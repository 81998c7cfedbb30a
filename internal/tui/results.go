package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/savecalc/internal/cli"
	"github.com/theirongolddev/savecalc/internal/scenario"
	"github.com/theirongolddev/savecalc/internal/tui/components"
	"github.com/theirongolddev/savecalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// cardsPerRow picks 3, 2 or 1 scenario cards per row for the content width.
func cardsPerRow(cw int) int {
	switch {
	case cw >= wideWidth:
		return 3
	case cw >= compactWidth:
		return 2
	default:
		return 1
	}
}

// renderResults renders the input summary and one card per scenario.
func (a App) renderResults(rs scenario.ResultSet, cw int) string {
	var b strings.Builder

	reached := 0
	for _, s := range rs.Scenarios {
		if s.ReachesTarget {
			reached++
		}
	}

	b.WriteString(components.MetricCardRow([]components.Metric{
		{
			Label: "Target",
			Value: cli.FormatMoney(a.currency, decimal.NewFromFloat(rs.Inputs.Target)),
			Note:  fmt.Sprintf("reached by %d of %d rates", reached, len(rs.Scenarios)),
		},
		{Label: "Duration", Value: cli.FormatMonths(rs.Inputs.Duration)},
		{
			Label: "Monthly Income",
			Value: cli.FormatMoney(a.currency, decimal.NewFromFloat(rs.Inputs.Income)),
			Note:  "before savings",
		},
	}, cw))
	b.WriteString("\n")

	perRow := cardsPerRow(cw)
	widths := components.LayoutRow(cw, perRow)

	for start := 0; start < len(rs.Scenarios); start += perRow {
		end := min(start+perRow, len(rs.Scenarios))
		row := make([]string, 0, perRow)
		for i, s := range rs.Scenarios[start:end] {
			row = append(row, a.renderScenarioCard(s, rs.Inputs.Duration, widths[i]))
		}
		b.WriteString(components.CardRow(row))
		if end < len(rs.Scenarios) {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderScenarioCard renders one scenario. duration comes from the computed
// result set, not the live form text.
func (a App) renderScenarioCard(s scenario.Record, duration, outerWidth int) string {
	t := theme.Active
	iw := components.CardInnerWidth(outerWidth)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)

	money := func(d decimal.Decimal) string { return cli.FormatMoney(a.currency, d) }

	var b strings.Builder
	b.WriteString(spread(titleStyle.Render(fmt.Sprintf("%d%% Savings", s.Percent)), components.Badge(s.ReachesTarget), iw))
	b.WriteString("\n\n")
	b.WriteString(kv("Monthly Savings", money(s.MonthlySavings), iw))
	b.WriteString("\n")
	b.WriteString(kv("Total after "+cli.FormatMonths(duration), money(s.TotalSavings), iw))
	b.WriteString("\n")
	b.WriteString(accentStyle.Render(cli.FormatPercent(s.PercentOfTarget) + " of target"))
	b.WriteString("\n")
	b.WriteString(components.TargetBar(s.ProgressFraction(), s.PercentOfTarget.InexactFloat64(), s.ReachesTarget, iw))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", iw)))
	b.WriteString("\n")
	b.WriteString(kv("Monthly Budget", money(s.MonthlyBudget), iw))
	b.WriteString("\n")
	b.WriteString(kv("Weekly Budget", money(s.WeeklyBudget), iw))
	b.WriteString("\n")
	b.WriteString(kv("Daily Budget", money(s.DailyBudget), iw))

	border := t.Red
	if s.ReachesTarget {
		border = t.Green
	}
	return components.AccentCard("", b.String(), outerWidth, border)
}

// kv renders a muted label and a bold value on opposite ends of a line.
func kv(label, value string, w int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	return spread(labelStyle.Render(label+":"), valueStyle.Render(value), w)
}

// spread places left and right at the edges of a w-wide line. When both do
// not fit, right drops to the next line.
func spread(left, right string, w int) string {
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + "\n" + right
	}
	fill := lipgloss.NewStyle().Background(theme.Active.Surface).Render(strings.Repeat(" ", gap))
	return left + fill + right
}
