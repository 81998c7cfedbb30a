package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theirongolddev/savecalc/internal/scenario"
)

func fill(t *testing.T, s *Session, target, duration, income string) {
	t.Helper()
	require.NoError(t, s.Form.SetField(scenario.FieldTarget, target))
	require.NoError(t, s.Form.SetField(scenario.FieldDuration, duration))
	require.NoError(t, s.Form.SetField(scenario.FieldIncome, income))
}

func TestForm_SetFieldTouchesOnlyOneField(t *testing.T) {
	var f Form
	require.NoError(t, f.SetField(scenario.FieldTarget, "100"))
	require.NoError(t, f.SetField(scenario.FieldIncome, "abc"))

	assert.Equal(t, scenario.FormInputs{TargetSavings: "100", MonthlyIncome: "abc"}, f.All())

	require.NoError(t, f.SetField(scenario.FieldTarget, ""))
	assert.Equal(t, "", f.Get(scenario.FieldTarget))
	assert.Equal(t, "abc", f.Get(scenario.FieldIncome))
}

func TestForm_UnknownField(t *testing.T) {
	var f Form
	err := f.SetField(scenario.Field(9), "1")
	assert.ErrorIs(t, err, scenario.ErrUnknownField)
	assert.Equal(t, scenario.FormInputs{}, f.All())
}

func TestForm_OnChange(t *testing.T) {
	var f Form
	var seen []scenario.Field
	f.OnChange(func(field scenario.Field, _ string) { seen = append(seen, field) })

	require.NoError(t, f.SetField(scenario.FieldDuration, "1"))
	require.NoError(t, f.SetField(scenario.FieldDuration, "12"))
	_ = f.SetField(scenario.Field(-1), "x")

	assert.Equal(t, []scenario.Field{scenario.FieldDuration, scenario.FieldDuration}, seen)
}

func TestResults_EmptyBeforeFirstSet(t *testing.T) {
	var r Results
	_, ok := r.Get()
	assert.False(t, ok)

	rs, err := scenario.Scenarios(scenario.ParsedInputs{Target: 1, Duration: 1, Income: 1})
	require.NoError(t, err)
	r.Set(rs)
	_, ok = r.Get()
	assert.True(t, ok)

	r.Clear()
	_, ok = r.Get()
	assert.False(t, ok)
}

func TestSession_CalculateStoresResult(t *testing.T) {
	s := New(Dark, nil)
	fill(t, s, "10000", "12", "2000")

	rs, err := s.Calculate()
	require.NoError(t, err)

	held, ok := s.Results.Get()
	require.True(t, ok)
	assert.Equal(t, rs, held)
	assert.Len(t, held.Scenarios, 5)
}

func TestSession_FailedCalculateKeepsPreviousResult(t *testing.T) {
	s := New(Dark, nil)
	fill(t, s, "10000", "12", "2000")
	first, err := s.Calculate()
	require.NoError(t, err)

	require.NoError(t, s.Form.SetField(scenario.FieldTarget, "abc"))
	_, err = s.Calculate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, scenario.ErrInvalidInput))

	held, ok := s.Results.Get()
	require.True(t, ok)
	assert.Equal(t, first, held)
}

func TestSession_FailedCalculateWithoutPriorResult(t *testing.T) {
	s := New(Dark, nil)
	_, err := s.Calculate()
	require.Error(t, err)

	_, ok := s.Results.Get()
	assert.False(t, ok)
}

func TestSession_ToggleTwiceRestoresMode(t *testing.T) {
	s := New(Light, nil)
	fill(t, s, "10000", "12", "2000")
	_, err := s.Calculate()
	require.NoError(t, err)
	before, _ := s.Results.Get()

	assert.Equal(t, Dark, s.ToggleMode())
	assert.Equal(t, Light, s.ToggleMode())
	assert.Equal(t, Light, s.Mode.Get())

	after, _ := s.Results.Get()
	assert.Equal(t, before, after)
}

func TestSession_Reset(t *testing.T) {
	s := New(Dark, nil)
	fill(t, s, "1", "1", "1")
	_, err := s.Calculate()
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, scenario.FormInputs{}, s.Form.All())
	_, ok := s.Results.Get()
	assert.False(t, ok)
	assert.Equal(t, Dark, s.Mode.Get())
}

func TestSession_LogsRejectedInput(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(Dark, zap.New(core))
	fill(t, s, "x", "12", "2000")

	_, err := s.Calculate()
	require.Error(t, err)

	entries := logs.FilterMessage("calculation rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].ContextMap()["targetSavings"])
}

func TestSession_StaleAfterEdit(t *testing.T) {
	s := New(Dark, nil)
	fill(t, s, "10000", "12", "2000")
	assert.False(t, s.Stale(), "no result held yet")

	_, err := s.Calculate()
	require.NoError(t, err)
	assert.False(t, s.Stale())

	require.NoError(t, s.Form.SetField(scenario.FieldIncome, "2500"))
	assert.True(t, s.Stale())

	// A rejected calculation keeps the old cards, which are still stale.
	require.NoError(t, s.Form.SetField(scenario.FieldTarget, "abc"))
	_, err = s.Calculate()
	require.Error(t, err)
	assert.True(t, s.Stale())

	require.NoError(t, s.Form.SetField(scenario.FieldTarget, "10000"))
	_, err = s.Calculate()
	require.NoError(t, err)
	assert.False(t, s.Stale())

	s.Reset()
	assert.False(t, s.Stale())
}

func TestSession_LogsFieldEdits(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(Dark, zap.New(core))
	require.NoError(t, s.Form.SetField(scenario.FieldDuration, "12"))

	entries := logs.FilterMessage("field edited").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "durationMonths", entries[0].ContextMap()["field"])
}

func TestSession_OverflowRejectedKeepsResult(t *testing.T) {
	s := New(Dark, nil)
	fill(t, s, "10000", "12", "2000")
	first, err := s.Calculate()
	require.NoError(t, err)

	require.NoError(t, s.Form.SetField(scenario.FieldIncome, "1e307"))
	require.NotPanics(t, func() { _, err = s.Calculate() })
	assert.ErrorIs(t, err, scenario.ErrInvalidInput)

	held, ok := s.Results.Get()
	require.True(t, ok)
	assert.Equal(t, first, held)
}
