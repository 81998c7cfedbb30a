// Package scenario computes fixed-rate savings scenarios from raw form input.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field identifies one of the three form inputs.
type Field int

const (
	FieldTarget Field = iota
	FieldDuration
	FieldIncome
	fieldCount // sentinel
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldTarget, FieldDuration, FieldIncome}

var fieldKeys = [fieldCount]string{"targetSavings", "durationMonths", "monthlyIncome"}

var fieldLabels = [fieldCount]string{"Target Amount", "Duration (months)", "Monthly Income"}

// Key returns the stable machine name of the field.
func (f Field) Key() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldKeys[f]
}

// Label returns the human-readable field name.
func (f Field) Label() string {
	if !f.Valid() {
		return f.Key()
	}
	return fieldLabels[f]
}

func (f Field) String() string { return f.Key() }

// Valid reports whether f names one of the form fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// ErrUnknownField is returned when a field name or index is not recognized.
var ErrUnknownField = errors.New("unknown field")

// ParseField looks a field up by key ("targetSavings") or label, case-insensitively.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for _, f := range Fields {
		if strings.EqualFold(name, fieldKeys[f]) || strings.EqualFold(name, fieldLabels[f]) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FormInputs holds the raw text of the three fields exactly as typed.
type FormInputs struct {
	TargetSavings  string
	DurationMonths string
	MonthlyIncome  string
}

// Value returns the raw text of field f.
func (in FormInputs) Value(f Field) string {
	switch f {
	case FieldTarget:
		return in.TargetSavings
	case FieldDuration:
		return in.DurationMonths
	case FieldIncome:
		return in.MonthlyIncome
	}
	return ""
}

// ParsedInputs are the numeric values the engine works with.
type ParsedInputs struct {
	Target   float64
	Duration int
	Income   float64
}

// ErrInvalidInput is matched by every ParseError.
var ErrInvalidInput = errors.New("invalid input")

// ParseError reports the fields that could not be read as numbers. When
// OutOfRange is set the fields parsed but the amounts derived from them do
// not fit in a float64.
type ParseError struct {
	Fields     []Field
	OutOfRange bool
}

func (e *ParseError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Label()
	}
	msg := fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
	if e.OutOfRange {
		msg += " (value out of range)"
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidInput) hold for any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Parse converts the raw form text into numbers. Surrounding whitespace is
// ignored; the rest of each string must be a complete finite number, and the
// duration must be a whole number. Every field is checked so the returned
// *ParseError names all offending fields.
func Parse(in FormInputs) (ParsedInputs, error) {
	var (
		out ParsedInputs
		bad []Field
		err error
	)

	if out.Target, err = parseAmount(in.TargetSavings); err != nil {
		bad = append(bad, FieldTarget)
	}
	if out.Duration, err = strconv.Atoi(strings.TrimSpace(in.DurationMonths)); err != nil {
		bad = append(bad, FieldDuration)
	}
	if out.Income, err = parseAmount(in.MonthlyIncome); err != nil {
		bad = append(bad, FieldIncome)
	}

	if len(bad) > 0 {
		return ParsedInputs{}, &ParseError{Fields: bad}
	}
	return out, nil
}

var errNotFinite = errors.New("not a finite number")

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
