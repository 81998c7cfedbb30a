// Package report renders a scenario result set as a printable PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/savecalc/internal/cli"
	"github.com/theirongolddev/savecalc/internal/scenario"
)

const (
	pageWidth    = 297.0 // A4 landscape
	marginLeft   = 12.0
	marginRight  = 12.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Rate", 18, "C"},
	{"Monthly Savings", 36, "R"},
	{"Total Savings", 38, "R"},
	{"% of Target", 26, "R"},
	{"Monthly Budget", 36, "R"},
	{"Weekly Budget", 34, "R"},
	{"Daily Budget", 32, "R"},
	{"Status", 53, "C"},
}

// Options controls the report header.
type Options struct {
	Currency    string
	GeneratedAt time.Time
}

// WritePDF renders rs as a one-page PDF to w.
func WritePDF(w io.Writer, rs scenario.ResultSet, opts Options) error {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle("Savings Scenarios", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(contentWidth, 12, "Savings Scenarios", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", opts.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeInputs(pdf, rs.Inputs, opts.Currency)
	pdf.Ln(4)
	writeTable(pdf, rs)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func writeInputs(pdf *fpdf.Fpdf, in scenario.ParsedInputs, currency string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 240)
	pdf.CellFormat(contentWidth, 8, "Inputs", "1", 1, "C", true, 0, "")

	// Core fonts are cp1252; translate so labels like "€" survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "", 11)
	lines := []string{
		fmt.Sprintf("Target amount: %s", cli.FormatMoney(currency, decimal.NewFromFloat(in.Target))),
		fmt.Sprintf("Duration: %s", cli.FormatMonths(in.Duration)),
		fmt.Sprintf("Monthly income: %s", cli.FormatMoney(currency, decimal.NewFromFloat(in.Income))),
	}
	for i, l := range lines {
		border := "LR"
		if i == len(lines)-1 {
			border = "LRB"
		}
		pdf.CellFormat(contentWidth, 7, tr(l), border, 1, "C", false, 0, "")
	}
}

func writeTable(pdf *fpdf.Fpdf, rs scenario.ResultSet) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(58, 169, 159)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range columns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, s := range rs.Scenarios {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)

		status := "Below Target"
		if s.ReachesTarget {
			status = "Reaches Target"
		}
		cells := []string{
			fmt.Sprintf("%d%%", s.Percent),
			cli.FormatAmount(s.MonthlySavings),
			cli.FormatAmount(s.TotalSavings),
			cli.FormatPercent(s.PercentOfTarget),
			cli.FormatAmount(s.MonthlyBudget),
			cli.FormatAmount(s.WeeklyBudget),
			cli.FormatAmount(s.DailyBudget),
			status,
		}
		for j, c := range columns {
			if j == len(columns)-1 {
				if s.ReachesTarget {
					pdf.SetTextColor(40, 120, 40)
				} else {
					pdf.SetTextColor(190, 50, 40)
				}
			}
			pdf.CellFormat(c.width, 7, cells[j], "1", 0, c.align, fill, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(-1)
	}
}
