// Package session holds the per-run UI state: the form text, the last
// successful result, and the display mode.
//
// A Session is owned by a single goroutine (the Bubble Tea update loop or a
// CLI command); none of the holders lock.
package session

import (
	"fmt"

	"github.com/theirongolddev/savecalc/internal/scenario"
)

// Form is the input state holder. Any text is accepted; parsing happens only
// when a calculation is requested.
type Form struct {
	values   scenario.FormInputs
	onChange []func(scenario.Field, string)
}

// SetField replaces the raw text of exactly one field.
func (f *Form) SetField(field scenario.Field, value string) error {
	switch field {
	case scenario.FieldTarget:
		f.values.TargetSavings = value
	case scenario.FieldDuration:
		f.values.DurationMonths = value
	case scenario.FieldIncome:
		f.values.MonthlyIncome = value
	default:
		return fmt.Errorf("%w: %d", scenario.ErrUnknownField, int(field))
	}
	for _, fn := range f.onChange {
		fn(field, value)
	}
	return nil
}

// Get returns the raw text of one field.
func (f *Form) Get(field scenario.Field) string {
	return f.values.Value(field)
}

// All returns a snapshot of every field.
func (f *Form) All() scenario.FormInputs {
	return f.values
}

// Reset empties all three fields.
func (f *Form) Reset() {
	for _, field := range scenario.Fields {
		_ = f.SetField(field, "")
	}
}

// OnChange registers fn to run after every successful SetField.
func (f *Form) OnChange(fn func(scenario.Field, string)) {
	f.onChange = append(f.onChange, fn)
}

// Results is the result state holder.
type Results struct {
	current *scenario.ResultSet
}

// Set replaces the held result set.
func (r *Results) Set(rs scenario.ResultSet) {
	r.current = &rs
}

// Get returns the held result set; ok is false before the first successful
// calculation.
func (r *Results) Get() (rs scenario.ResultSet, ok bool) {
	if r.current == nil {
		return scenario.ResultSet{}, false
	}
	return *r.current, true
}

// Clear drops the held result set.
func (r *Results) Clear() {
	r.current = nil
}

// DisplayMode selects the light or dark palette.
type DisplayMode bool

const (
	Light DisplayMode = false
	Dark  DisplayMode = true
)

func (m DisplayMode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Mode holds the current display mode.
type Mode struct {
	value DisplayMode
}

// Get returns the current mode.
func (m *Mode) Get() DisplayMode { return m.value }

// Toggle flips between dark and light and returns the new mode.
func (m *Mode) Toggle() DisplayMode {
	m.value = !m.value
	return m.value
}
