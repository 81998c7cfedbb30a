package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/theirongolddev/savecalc/internal/scenario"
)

// runRoot executes the root command with args against an empty config dir.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SAVECALC_CURRENCY", "")
	t.Setenv("SAVECALC_THEME", "")

	// Flag values and their Changed bits survive between Execute calls.
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetErr(nil); rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalcJSON(t *testing.T) {
	out, err := runRoot(t, "calc", "--target", "10000", "--months", "12", "--income", "2000", "--format", "json", "--log-level", "error")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}

	var got struct {
		Currency  string `json:"currency"`
		Scenarios []struct {
			Percent       int    `json:"percent"`
			TotalSavings  string `json:"totalSavings"`
			ReachesTarget bool   `json:"reachesTarget"`
		} `json:"scenarios"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Currency != "RM" || len(got.Scenarios) != 5 {
		t.Fatalf("got %+v", got)
	}
	if got.Scenarios[0].TotalSavings != "19200.00" || !got.Scenarios[0].ReachesTarget {
		t.Errorf("80%% scenario = %+v", got.Scenarios[0])
	}
}

func TestCalcTable(t *testing.T) {
	out, err := runRoot(t, "calc", "-t", "10000", "-m", "12", "-i", "2000", "--currency", "USD", "--log-level", "error")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	for _, want := range []string{"Savings Scenarios", "Monthly (USD)", "After 12 months", "19,200.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestCalcRejectsBadInput(t *testing.T) {
	_, err := runRoot(t, "calc", "--target", "abc", "--months", "12", "--income", "2000", "--log-level", "error")
	if !errors.Is(err, scenario.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "Target Amount") {
		t.Errorf("error does not name the field: %v", err)
	}
}

func TestCalcRejectsUnknownFormat(t *testing.T) {
	_, err := runRoot(t, "calc", "--target", "1", "--months", "1", "--income", "1", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v", err)
	}
}

func TestCalcWritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	if _, err := runRoot(t, "calc", "--target", "10000", "--months", "12", "--income", "2000", "--format", "yaml", "--pdf", path, "--log-level", "error"); err != nil {
		t.Fatalf("calc: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a PDF: %q", data[:min(len(data), 16)])
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := runRoot(t, "config", "--theme", "catppuccin")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "Theme: catppuccin") || !strings.Contains(out, "using defaults") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := runRoot(t, "config", "--theme", "solarized"); err == nil {
		t.Error("unknown theme accepted")
	}
}

func TestCalcFieldArguments(t *testing.T) {
	out, err := runRoot(t, "calc", "targetSavings=10000", "Duration (months)=12", "MONTHLYINCOME=2000",
		"--format", "json", "--log-level", "error")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if !strings.Contains(out, `"totalSavings": "19200.00"`) {
		t.Errorf("unexpected output:\n%s", out)
	}

	// Arguments override flags.
	out, err = runRoot(t, "calc", "--target", "abc", "-m", "12", "-i", "2000", "targetSavings=10000",
		"--format", "json", "--log-level", "error")
	if err != nil {
		t.Fatalf("calc with override: %v", err)
	}
	if !strings.Contains(out, `"target": 10000`) {
		t.Errorf("argument did not override flag:\n%s", out)
	}
}

func TestCalcRejectsBadFieldArguments(t *testing.T) {
	_, err := runRoot(t, "calc", "savings=1", "--log-level", "error")
	if !errors.Is(err, scenario.ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}

	_, err = runRoot(t, "calc", "targetSavings", "--log-level", "error")
	if err == nil || !strings.Contains(err.Error(), "want field=value") {
		t.Errorf("err = %v", err)
	}
}

func TestCalcRejectsOverflow(t *testing.T) {
	_, err := runRoot(t, "calc", "-t", "1", "-m", "12", "-i", "1e307", "--log-level", "error")
	if !errors.Is(err, scenario.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error does not mention range: %v", err)
	}
}

func TestFlagsAreNormalized(t *testing.T) {
	out, err := runRoot(t, "config", "--theme", "Catppuccin", "--log-level", "ERROR")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "Theme: catppuccin") {
		t.Errorf("theme not lower-cased:\n%s", out)
	}
	if !strings.Contains(out, "Level: error") {
		t.Errorf("level not lower-cased:\n%s", out)
	}
}
