package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func form(target, duration, income string) FormInputs {
	return FormInputs{TargetSavings: target, DurationMonths: duration, MonthlyIncome: income}
}

func TestCompute_RateOrder(t *testing.T) {
	rs, err := Compute(form("10000", "12", "2000"))
	require.NoError(t, err)
	require.Len(t, rs.Scenarios, 5)

	got := make([]int, len(rs.Scenarios))
	for i, r := range rs.Scenarios {
		got[i] = r.Percent
	}
	assert.Equal(t, []int{80, 50, 30, 20, 10}, got)
	assert.Equal(t, ParsedInputs{Target: 10000, Duration: 12, Income: 2000}, rs.Inputs)
}

func TestCompute_EightyPercentScenario(t *testing.T) {
	rs, err := Compute(form("10000", "12", "2000"))
	require.NoError(t, err)

	r := rs.Scenarios[0]
	assert.Equal(t, 80, r.Percent)
	assert.Equal(t, "1600.00", r.MonthlySavings.StringFixed(2))
	assert.Equal(t, "19200.00", r.TotalSavings.StringFixed(2))
	assert.Equal(t, "192.0", r.PercentOfTarget.StringFixed(1))
	assert.True(t, r.ReachesTarget)
	assert.Equal(t, "400.00", r.MonthlyBudget.StringFixed(2))
	assert.Equal(t, "100.00", r.WeeklyBudget.StringFixed(2))
	assert.Equal(t, "13.33", r.DailyBudget.StringFixed(2))
}

func TestCompute_TenPercentScenario(t *testing.T) {
	rs, err := Compute(form("10000", "12", "2000"))
	require.NoError(t, err)

	r := rs.Scenarios[4]
	assert.Equal(t, 10, r.Percent)
	assert.Equal(t, "200.00", r.MonthlySavings.StringFixed(2))
	assert.Equal(t, "2400.00", r.TotalSavings.StringFixed(2))
	assert.Equal(t, "24.0", r.PercentOfTarget.StringFixed(1))
	assert.False(t, r.ReachesTarget)
	assert.Equal(t, "1800.00", r.MonthlyBudget.StringFixed(2))
}

func TestCompute_NonNumericTarget(t *testing.T) {
	rs, err := Compute(form("abc", "12", "2000"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []Field{FieldTarget}, pe.Fields)
	assert.Empty(t, rs.Scenarios)
}

func TestCompute_ZeroDuration(t *testing.T) {
	rs, err := Compute(form("5000", "0", "3000"))
	require.NoError(t, err)

	for _, r := range rs.Scenarios {
		assert.Equal(t, "0.00", r.TotalSavings.StringFixed(2), "rate %d", r.Percent)
		assert.False(t, r.ReachesTarget, "rate %d", r.Percent)
		assert.Equal(t, "0.0", r.PercentOfTarget.StringFixed(1), "rate %d", r.Percent)
	}
}

func TestCompute_ZeroTarget(t *testing.T) {
	rs, err := Compute(form("0", "12", "2000"))
	require.NoError(t, err)
	for _, r := range rs.Scenarios {
		assert.True(t, r.ReachesTarget)
		assert.Equal(t, "100.0", r.PercentOfTarget.StringFixed(1))
	}

	// Negative income never reaches even a zero target.
	rs, err = Compute(form("0", "12", "-100"))
	require.NoError(t, err)
	for _, r := range rs.Scenarios {
		assert.False(t, r.ReachesTarget)
		assert.Equal(t, "0.0", r.PercentOfTarget.StringFixed(1))
	}
}

func TestCompute_ReachesTargetUsesUnroundedTotal(t *testing.T) {
	// 10% of 0.1 over one month is 0.01; a target of 0.0099 is reached even
	// though both print as 0.01.
	rs, err := Compute(form("0.0099", "1", "0.1"))
	require.NoError(t, err)
	assert.True(t, rs.Scenarios[4].ReachesTarget)

	// 0.006 displays as 0.01 but is below a 0.0099 target.
	rs, err = Compute(form("0.0099", "1", "0.06"))
	require.NoError(t, err)
	r := rs.Scenarios[4]
	assert.Equal(t, "0.01", r.TotalSavings.StringFixed(2))
	assert.False(t, r.ReachesTarget)
}

func TestCompute_Properties(t *testing.T) {
	cases := []FormInputs{
		form("10000", "12", "2000"),
		form("2500.50", "7", "1234.56"),
		form("1", "1", "0.01"),
		form("999999", "360", "8765.43"),
		form("-500", "3", "100"),
		form("12000", "24", "0"),
	}

	for _, in := range cases {
		p, err := Parse(in)
		require.NoError(t, err)
		rs, err := Scenarios(p)
		require.NoError(t, err)

		for _, r := range rs.Scenarios {
			monthly := p.Income * float64(r.Percent) / 100
			total := monthly * float64(p.Duration)

			assert.InDelta(t, monthly, r.MonthlySavings.InexactFloat64(), 0.01)
			assert.InDelta(t, total, r.TotalSavings.InexactFloat64(), 0.01)
			assert.Equal(t, total >= p.Target, r.ReachesTarget)

			budget := r.MonthlyBudget.InexactFloat64()
			assert.InDelta(t, p.Income, budget+r.MonthlySavings.InexactFloat64(), 0.01)
			assert.InDelta(t, budget/4, r.WeeklyBudget.InexactFloat64(), 0.01)
			assert.InDelta(t, budget/30, r.DailyBudget.InexactFloat64(), 0.01)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := form("7777.77", "19", "3333.33")
	a, err := Compute(in)
	require.NoError(t, err)
	b, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name string
		in   FormInputs
		want []Field
	}{
		{"all empty", form("", "", ""), []Field{FieldTarget, FieldDuration, FieldIncome}},
		{"blank income", form("100", "12", "   "), []Field{FieldIncome}},
		{"fractional duration", form("100", "12.5", "10"), []Field{FieldDuration}},
		{"trailing garbage", form("12abc", "12", "10"), []Field{FieldTarget}},
		{"nan", form("NaN", "12", "10"), []Field{FieldTarget}},
		{"infinite", form("100", "12", "Inf"), []Field{FieldIncome}},
		{"overflow", form("1e400", "12", "10"), []Field{FieldTarget}},
		{"duration and income", form("100", "x", "y"), []Field{FieldDuration, FieldIncome}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "err = %v", err)
			assert.Equal(t, tt.want, pe.Fields)
		})
	}
}

func TestParse_Accepts(t *testing.T) {
	p, err := Parse(form(" 1e3 ", "\t6\n", "+250.5"))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, p.Target)
	assert.Equal(t, 6, p.Duration)
	assert.Equal(t, 250.5, p.Income)
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Fields: []Field{FieldTarget, FieldIncome}}
	assert.Equal(t, "invalid input: Target Amount, Monthly Income", err.Error())
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "2.68", round(2.675, 2).StringFixed(2))
	assert.Equal(t, "-2.68", round(-2.675, 2).StringFixed(2))
	assert.Equal(t, "0.3", round(0.25, 1).StringFixed(1))
	assert.Equal(t, "-0.3", round(-0.25, 1).StringFixed(1))
}

func TestRates_ReturnsCopy(t *testing.T) {
	r := Rates()
	r[0] = 1
	assert.Equal(t, []int{80, 50, 30, 20, 10}, Rates())
}

func TestRecord_ProgressFraction(t *testing.T) {
	rs, err := Scenarios(ParsedInputs{Target: 10000, Duration: 12, Income: 2000})
	require.NoError(t, err)
	assert.Equal(t, 1.0, rs.Scenarios[0].ProgressFraction())
	assert.InDelta(t, 0.24, rs.Scenarios[4].ProgressFraction(), 1e-9)

	neg, err := Scenarios(ParsedInputs{Target: 100, Duration: 1, Income: -50})
	require.NoError(t, err)
	assert.Equal(t, 0.0, neg.Scenarios[0].ProgressFraction())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("durationMonths")
	require.NoError(t, err)
	assert.Equal(t, FieldDuration, f)

	f, err = ParseField("monthly income")
	require.NoError(t, err)
	assert.Equal(t, FieldIncome, f)

	_, err = ParseField("salary")
	assert.ErrorIs(t, err, ErrUnknownField)

	assert.False(t, Field(7).Valid())
}

func TestCompute_OverflowIsRejected(t *testing.T) {
	tests := []struct {
		name string
		in   FormInputs
		want []Field
	}{
		{"huge income", form("1", "12", "1e307"), []Field{FieldIncome}},
		{"negative huge income", form("1", "12", "-1e307"), []Field{FieldIncome}},
		{"subnormal target", form("1e-320", "12", "2000"), []Field{FieldTarget}},
		{"huge total", form("1", "9223372036854775807", "1e300"), []Field{FieldDuration, FieldIncome}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				rs  ResultSet
				err error
			)
			require.NotPanics(t, func() { rs, err = Compute(tt.in) })
			require.ErrorIs(t, err, ErrInvalidInput)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.want, pe.Fields)
			assert.True(t, pe.OutOfRange)
			assert.Contains(t, err.Error(), "out of range")
			assert.Empty(t, rs.Scenarios)
		})
	}
}

func TestCompute_LargeFiniteInputsStillCompute(t *testing.T) {
	rs, err := Compute(form("1e300", "12", "1e290"))
	require.NoError(t, err)
	require.Len(t, rs.Scenarios, 5)
	assert.False(t, rs.Scenarios[0].ReachesTarget)
}
