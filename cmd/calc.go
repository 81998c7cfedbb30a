package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/savecalc/internal/cli"
	"github.com/theirongolddev/savecalc/internal/report"
	"github.com/theirongolddev/savecalc/internal/scenario"
	"github.com/theirongolddev/savecalc/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagTarget string
	flagMonths string
	flagIncome string
	flagFormat string
	flagPDF    string
)

var calcCmd = &cobra.Command{
	Use:   "calc [field=value ...]",
	Short: "Compute the five savings scenarios once and print them",
	Example: "  savecalc calc --target 10000 --months 12 --income 2000\n" +
		"  savecalc calc --target 10000 --months 12 --income 2000 --format json\n" +
		"  savecalc calc --target 10000 --months 12 --income 2000 --pdf plan.pdf\n" +
		"  savecalc calc targetSavings=10000 durationMonths=12 monthlyIncome=2000",
	Long: "Compute the five savings scenarios once and print them.\n\n" +
		"Fields can also be given as field=value arguments, named by key\n" +
		"(targetSavings, durationMonths, monthlyIncome) or label. Arguments\n" +
		"override the matching flag.",
	Args: cobra.ArbitraryArgs,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVarP(&flagTarget, "target", "t", "", "Savings target amount")
	calcCmd.Flags().StringVarP(&flagMonths, "months", "m", "", "Duration in whole months")
	calcCmd.Flags().StringVarP(&flagIncome, "income", "i", "", "Monthly income")
	calcCmd.Flags().StringVarP(&flagFormat, "format", "f", cli.FormatTable, "Output format (table, json, yaml)")
	calcCmd.Flags().StringVar(&flagPDF, "pdf", "", "Also write a PDF report to this file")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(flagFormat)
	switch format {
	case cli.FormatTable, cli.FormatJSON, cli.FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", flagFormat)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Flags feed the same form holder the TUI types into.
	sess := session.New(session.Dark, log)
	for f, v := range map[scenario.Field]string{
		scenario.FieldTarget:   flagTarget,
		scenario.FieldDuration: flagMonths,
		scenario.FieldIncome:   flagIncome,
	} {
		if err := sess.Form.SetField(f, v); err != nil {
			return err
		}
	}
	for _, arg := range args {
		if err := setFieldArg(sess.Form, arg); err != nil {
			return err
		}
	}

	rs, err := sess.Calculate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == cli.FormatTable {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTitle("Savings Scenarios"))
		fmt.Fprintln(out)
		fmt.Fprint(out, cli.RenderTable(cli.ScenarioTable(rs, cfg.General.Currency)))
	} else if err := cli.Encode(out, format, rs, cfg.General.Currency); err != nil {
		return err
	}

	if flagPDF != "" {
		if err := writePDF(flagPDF, rs, cfg.General.Currency); err != nil {
			return err
		}
		log.Info("pdf report written", zap.String("path", flagPDF))
	}
	return nil
}

// setFieldArg applies one field=value argument to the form.
func setFieldArg(form *session.Form, arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("argument %q: want field=value", arg)
	}
	f, err := scenario.ParseField(name)
	if err != nil {
		return fmt.Errorf("argument %q: %w", arg, err)
	}
	return form.SetField(f, value)
}

func writePDF(path string, rs scenario.ResultSet, currency string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating pdf: %w", err)
	}
	if err := report.WritePDF(f, rs, report.Options{Currency: currency, GeneratedAt: time.Now()}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing pdf: %w", err)
	}
	return nil
}
