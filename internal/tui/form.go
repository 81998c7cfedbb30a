package tui

import (
	"strings"

	"github.com/theirongolddev/savecalc/internal/scenario"
	"github.com/theirongolddev/savecalc/internal/tui/components"
	"github.com/theirongolddev/savecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// newFieldInput builds the text input for one form field. Inputs start empty
// and accept any text; parsing waits for an explicit calculate.
func newFieldInput(f scenario.Field) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0 // unlimited
	ti.Width = 20

	switch f {
	case scenario.FieldTarget:
		ti.Placeholder = "e.g. 10000"
	case scenario.FieldDuration:
		ti.Placeholder = "e.g. 12"
	case scenario.FieldIncome:
		ti.Placeholder = "e.g. 2000"
	}
	return ti
}

// fieldLabel appends the currency label to money fields.
func fieldLabel(f scenario.Field, currency string) string {
	if currency == "" || f == scenario.FieldDuration {
		return f.Label()
	}
	return f.Label() + " (" + currency + ")"
}

// styleInputs re-applies theme colors; called after any theme change.
func (a *App) styleInputs() {
	t := theme.Active
	for i := range a.inputs {
		a.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
		a.inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.SurfaceBright)
		a.inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(t.AccentBright)
		a.inputs[i].Cursor.TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
	}
}

// setFocus moves keyboard focus to input i, wrapping around.
func (a *App) setFocus(i int) tea.Cmd {
	n := len(a.inputs)
	a.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range a.inputs {
		if j == a.focus {
			cmd = a.inputs[j].Focus()
		} else {
			a.inputs[j].Blur()
		}
	}
	return cmd
}

// updateFocusedInput forwards a key to the focused input and mirrors the
// resulting text into the session form.
func (a App) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := a.inputs[a.focus].Value()

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)

	if v := a.inputs[a.focus].Value(); v != before {
		if err := a.sess.Form.SetField(scenario.Fields[a.focus], v); err != nil {
			a.log.Warn("dropping field edit", zap.Error(err))
		}
	}
	return a, cmd
}

// clearInputs empties every input without touching the session.
func (a *App) clearInputs() {
	for i := range a.inputs {
		a.inputs[i].Reset()
	}
}

// renderForm lays the three inputs out as labeled cards on one row.
func (a App) renderForm(cw int) string {
	t := theme.Active

	widths := components.LayoutRow(cw, len(a.inputs))
	cards := make([]string, len(a.inputs))

	for i, f := range scenario.Fields {
		inner := components.CardInnerWidth(widths[i])

		in := a.inputs[i]
		in.Width = max(inner-1, 1)

		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		border := t.Border
		if i == a.focus {
			labelStyle = labelStyle.Foreground(t.AccentBright).Bold(true)
			border = t.BorderAccent
		}

		fieldStyle := lipgloss.NewStyle().Background(t.SurfaceBright).Width(inner)
		body := labelStyle.Render(fieldLabel(f, a.currency)) + "\n" + fieldStyle.Render(in.View())
		cards[i] = components.AccentCard("", body, widths[i], border)
	}

	return components.CardRow(cards)
}

// renderNotice renders the validation failure line, or "" when there is none.
func (a App) renderNotice(cw int) string {
	if a.notice == "" {
		return ""
	}
	t := theme.Active
	style := lipgloss.NewStyle().
		Foreground(t.Red).
		Background(t.Background).
		Bold(true).
		Width(cw)
	return style.Render(" " + strings.TrimSpace(a.notice))
}
