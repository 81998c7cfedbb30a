package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/savecalc/internal/scenario"
)

// Output formats accepted by Encode.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// exportRecord mirrors scenario.Record with decimals rendered at their
// display precision so "1600.00" keeps its trailing zeros.
type exportRecord struct {
	Percent            int    `json:"percent" yaml:"percent"`
	MonthlySavings     string `json:"monthlySavings" yaml:"monthlySavings"`
	TotalSavings       string `json:"totalSavings" yaml:"totalSavings"`
	PercentageOfTarget string `json:"percentageOfTarget" yaml:"percentageOfTarget"`
	MonthlyBudget      string `json:"monthlyBudget" yaml:"monthlyBudget"`
	WeeklyBudget       string `json:"weeklyBudget" yaml:"weeklyBudget"`
	DailyBudget        string `json:"dailyBudget" yaml:"dailyBudget"`
	ReachesTarget      bool   `json:"reachesTarget" yaml:"reachesTarget"`
}

type exportInputs struct {
	Target   float64 `json:"target" yaml:"target"`
	Duration int     `json:"durationMonths" yaml:"durationMonths"`
	Income   float64 `json:"monthlyIncome" yaml:"monthlyIncome"`
}

type exportSet struct {
	Currency  string         `json:"currency,omitempty" yaml:"currency,omitempty"`
	Inputs    exportInputs   `json:"inputs" yaml:"inputs"`
	Scenarios []exportRecord `json:"scenarios" yaml:"scenarios"`
}

func toExport(rs scenario.ResultSet, currency string) exportSet {
	out := exportSet{
		Currency: currency,
		Inputs: exportInputs{
			Target:   rs.Inputs.Target,
			Duration: rs.Inputs.Duration,
			Income:   rs.Inputs.Income,
		},
		Scenarios: make([]exportRecord, 0, len(rs.Scenarios)),
	}
	for _, s := range rs.Scenarios {
		out.Scenarios = append(out.Scenarios, exportRecord{
			Percent:            s.Percent,
			MonthlySavings:     s.MonthlySavings.StringFixed(2),
			TotalSavings:       s.TotalSavings.StringFixed(2),
			PercentageOfTarget: s.PercentOfTarget.StringFixed(1),
			MonthlyBudget:      s.MonthlyBudget.StringFixed(2),
			WeeklyBudget:       s.WeeklyBudget.StringFixed(2),
			DailyBudget:        s.DailyBudget.StringFixed(2),
			ReachesTarget:      s.ReachesTarget,
		})
	}
	return out
}

// Encode writes rs to w in the given machine-readable format.
func Encode(w io.Writer, format string, rs scenario.ResultSet, currency string) error {
	data := toExport(rs, currency)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
	return nil
}
