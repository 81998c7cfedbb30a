package scenario

import (
	"math"

	"github.com/shopspring/decimal"
)

// rates is the fixed savings policy, highest rate first.
var rates = [...]int{80, 50, 30, 20, 10}

const (
	weeksPerMonth = 4
	daysPerMonth  = 30

	moneyPlaces   = 2
	percentPlaces = 1
)

// Rates returns the savings rates used for every computation, in display order.
func Rates() []int {
	out := make([]int, len(rates))
	copy(out, rates[:])
	return out
}

// Record is one savings scenario. Monetary fields are rounded to cents and
// PercentOfTarget to one decimal place, half away from zero.
type Record struct {
	Percent         int
	MonthlySavings  decimal.Decimal
	TotalSavings    decimal.Decimal
	PercentOfTarget decimal.Decimal
	MonthlyBudget   decimal.Decimal
	WeeklyBudget    decimal.Decimal
	DailyBudget     decimal.Decimal
	ReachesTarget   bool
}

// ProgressFraction returns PercentOfTarget as a 0..1 fraction for progress bars.
func (r Record) ProgressFraction() float64 {
	f := r.PercentOfTarget.InexactFloat64() / 100
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// ResultSet is the output of one computation: the inputs it was computed from
// and one Record per rate, in Rates() order.
type ResultSet struct {
	Inputs    ParsedInputs
	Scenarios []Record
}

// Compute parses the raw inputs and builds the full scenario set. On a parse
// failure no scenarios are produced and the error is a *ParseError.
func Compute(in FormInputs) (ResultSet, error) {
	parsed, err := Parse(in)
	if err != nil {
		return ResultSet{}, err
	}
	return Scenarios(parsed)
}

// Scenarios runs the arithmetic for already-parsed inputs. Inputs whose
// derived amounts overflow float64 are rejected with an out-of-range
// *ParseError naming the field that drove the overflow; no partial set is
// returned.
func Scenarios(in ParsedInputs) (ResultSet, error) {
	out := ResultSet{
		Inputs:    in,
		Scenarios: make([]Record, 0, len(rates)),
	}
	for _, p := range rates {
		r, err := computeRecord(in, p)
		if err != nil {
			return ResultSet{}, err
		}
		out.Scenarios = append(out.Scenarios, r)
	}
	return out, nil
}

func computeRecord(in ParsedInputs, percent int) (Record, error) {
	monthlySavings := in.Income * float64(percent) / 100
	totalSavings := monthlySavings * float64(in.Duration)
	monthlyBudget := in.Income - monthlySavings

	// Compared before rounding so the flag never disagrees with the raw totals.
	reaches := totalSavings >= in.Target
	pct := percentOfTarget(totalSavings, in.Target, reaches)

	switch {
	case !finite(monthlySavings) || !finite(monthlyBudget):
		return Record{}, &ParseError{Fields: []Field{FieldIncome}, OutOfRange: true}
	case !finite(totalSavings):
		return Record{}, &ParseError{Fields: []Field{FieldDuration, FieldIncome}, OutOfRange: true}
	case !finite(pct):
		return Record{}, &ParseError{Fields: []Field{FieldTarget}, OutOfRange: true}
	}

	return Record{
		Percent:         percent,
		MonthlySavings:  round(monthlySavings, moneyPlaces),
		TotalSavings:    round(totalSavings, moneyPlaces),
		PercentOfTarget: round(pct, percentPlaces),
		MonthlyBudget:   round(monthlyBudget, moneyPlaces),
		WeeklyBudget:    round(monthlyBudget/weeksPerMonth, moneyPlaces),
		DailyBudget:     round(monthlyBudget/daysPerMonth, moneyPlaces),
		ReachesTarget:   reaches,
	}, nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// percentOfTarget avoids dividing by a zero target: such a target is either
// already met (100%) or not (0%).
func percentOfTarget(total, target float64, reaches bool) float64 {
	if target == 0 {
		if reaches {
			return 100
		}
		return 0
	}
	return total / target * 100
}

// round must only see finite values; decimal.NewFromFloat panics on Inf/NaN.
func round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}
