// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with two decimals, comma separators and a
// currency label.
// e.g., ("RM", 19200) -> "RM 19,200.00", ("RM", -5.5) -> "-RM 5.50"
func FormatMoney(currency string, d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	out := groupDigits(intPart) + "." + frac
	if currency != "" {
		out = currency + " " + out
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatAmount is FormatMoney without a currency label.
func FormatAmount(d decimal.Decimal) string {
	return FormatMoney("", d)
}

// FormatPercent formats a percentage already expressed out of 100 with one
// decimal. e.g., 192 -> "192.0%"
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// FormatMonths renders a grouped month count with the right plural.
// e.g., 1 -> "1 month", 1200 -> "1,200 months"
func FormatMonths(n int) string {
	if n == 1 || n == -1 {
		return FormatNumber(int64(n)) + " month"
	}
	return FormatNumber(int64(n)) + " months"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + groupDigits(rest)
	}
	return groupDigits(s)
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
