// Package tui provides the interactive Bubble Tea savings calculator.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/savecalc/internal/scenario"
	"github.com/theirongolddev/savecalc/internal/session"
	"github.com/theirongolddev/savecalc/internal/tui/components"
	"github.com/theirongolddev/savecalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// noticeInvalid is shown when a calculation is rejected.
const noticeInvalid = "Please fill all fields correctly."

const (
	minTerminalWidth = 60
	compactWidth     = 100 // two cards per row from here
	wideWidth        = 150 // three cards per row from here
	maxContentWidth  = 180

	minHalfPageScroll = 1 // minimum lines for half-page scroll
	minContentHeight  = 5 // minimum content area height

	headerLines = 1
	statusLines = 1
)

// Options configures a new App.
type Options struct {
	Currency  string
	Theme     string
	NeedSetup bool
	Log       *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	sess     *session.Session
	log      *zap.Logger
	currency string

	inputs []textinput.Model
	focus  int

	notice string // last rejection, cleared by esc or a good calculation

	// UI state
	width    int
	height   int
	scroll   int
	showHelp bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

// NewApp creates the TUI model around sess. The session is owned by the
// program from here on.
func NewApp(sess *session.Session, opts Options) App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	theme.SetActive(opts.Theme, bool(sess.Mode.Get()))

	a := App{
		sess:      sess,
		log:       log,
		currency:  opts.Currency,
		inputs:    make([]textinput.Model, len(scenario.Fields)),
		needSetup: opts.NeedSetup,
	}
	for i, f := range scenario.Fields {
		a.inputs[i] = newFieldInput(f)
		a.inputs[i].SetValue(sess.Form.Get(f))
	}
	a.styleInputs()
	a.setFocus(0)

	if a.needSetup {
		a.setupVals = &SetupValues{Theme: opts.Theme, Currency: opts.Currency, LogLevel: "info"}
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		textinput.Blink,
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.scroll = a.clampScroll(a.scroll)
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scroll = max(a.scroll-1, 0)
		case tea.MouseButtonWheelDown:
			a.scroll = a.clampScroll(a.scroll + 1)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Dismiss help with any key
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "f1":
			a.showHelp = true
			return a, nil

		case "esc":
			a.notice = ""
			return a, nil

		case "tab", "down":
			cmd := a.setFocus(a.focus + 1)
			return a, cmd

		case "shift+tab", "up":
			cmd := a.setFocus(a.focus - 1)
			return a, cmd

		case "enter":
			return a.calculate(), nil

		case "ctrl+t":
			return a.toggleMode(), nil

		case "ctrl+r":
			a = a.reset()
			cmd := a.setFocus(0)
			return a, cmd

		case "pgdown", "ctrl+d":
			a.scroll = a.clampScroll(a.scroll + a.halfPage())
			return a, nil

		case "pgup", "ctrl+u":
			a.scroll = max(a.scroll-a.halfPage(), 0)
			return a, nil
		}

		return a.updateFocusedInput(msg)
	}

	// Forward everything else (cursor blink, form internals)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

// calculate runs the scenario engine on the current form. A rejection keeps
// whatever cards were already on screen.
func (a App) calculate() App {
	_, err := a.sess.Calculate()
	if err == nil {
		a.notice = ""
		a.scroll = 0
		return a
	}

	var pe *scenario.ParseError
	if errors.As(err, &pe) {
		labels := make([]string, len(pe.Fields))
		for i, f := range pe.Fields {
			labels[i] = f.Label()
		}
		a.notice = fmt.Sprintf("%s Check: %s.", noticeInvalid, strings.Join(labels, ", "))
		return a
	}
	a.notice = noticeInvalid
	return a
}

// toggleMode flips dark/light; form and results are untouched.
func (a App) toggleMode() App {
	m := a.sess.ToggleMode()
	theme.SetDark(bool(m))
	a.styleInputs()
	return a
}

// reset clears the form, results and any notice.
func (a App) reset() App {
	a.sess.Reset()
	a.clearInputs()
	a.notice = ""
	a.scroll = 0
	return a
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		cfg, err := SaveSetup(a.setupVals)
		if err != nil {
			a.log.Warn("saving setup", zap.Error(err))
		}
		a.currency = cfg.General.Currency
		theme.SetActive(cfg.Appearance.Theme, bool(a.sess.Mode.Get()))
		a.styleInputs()
		a.needSetup = false
		a.setupForm = nil
		cmd = a.setFocus(a.focus)
		return a, cmd
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		cmd = a.setFocus(a.focus)
		return a, cmd
	}

	return a, cmd
}

// clampScroll bounds offset so the last screenful of content stays visible.
func (a App) clampScroll(offset int) int {
	if a.width == 0 {
		return 0
	}
	lines := lipgloss.Height(a.renderContent(a.contentWidth()))
	return min(max(offset, 0), max(lines-a.contentHeight(), 0))
}

func (a App) contentHeight() int {
	return max(a.height-headerLines-statusLines, minContentHeight)
}

func (a App) halfPage() int {
	return max(a.height/2, minHalfPageScroll)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  savecalc needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: title bar
	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)
	headerStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)
	header := headerStyle.Render(titleStyle.Render(" Savings Calculator"))

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.modeLabel(), a.statusMessage())

	// 3. Content zone height
	contentH := a.contentHeight()

	// 4. Form, notice, results
	content := a.renderContent(cw)

	// 5. Scroll, then truncate + pad to exactly contentH lines
	content = scrollLines(content, a.scroll, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderContent stacks the form, any notice, and the results or a hint.
func (a App) renderContent(cw int) string {
	parts := []string{a.renderForm(cw)}
	if n := a.renderNotice(cw); n != "" {
		parts = append(parts, n)
	}
	if rs, ok := a.sess.Results.Get(); ok {
		parts = append(parts, a.renderResults(rs, cw))
	} else {
		parts = append(parts, components.ContentCard("Getting started",
			"Fill in the three fields and press enter to see five savings scenarios.", cw))
	}
	return strings.Join(parts, "\n")
}

// modeLabel names the active theme family and display mode for the status bar.
func (a App) modeLabel() string {
	return theme.ActiveFamily().Name + " · " + a.sess.Mode.Get().String()
}

func (a App) statusMessage() string {
	if a.sess.Stale() {
		return "inputs changed, enter to recalculate"
	}
	return ""
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"Tab ↓", "Next field"},
		{"S-Tab ↑", "Previous field"},
		{"Enter", "Calculate scenarios"},
		{"Esc", "Dismiss notice"},
		{"^t", "Toggle dark / light"},
		{"^r", "Clear form and results"},
		{"PgUp PgDn", "Scroll results"},
		{"F1", "Toggle help"},
		{"^c", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// scrollLines drops the first offset lines, clamped so the last screenful
// stays visible.
func scrollLines(s string, offset, visible int) string {
	lines := strings.Split(s, "\n")
	maxOffset := max(len(lines)-visible, 0)
	offset = min(max(offset, 0), maxOffset)
	return strings.Join(lines[offset:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
