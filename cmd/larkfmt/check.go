package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"larkfmt/internal/diag"
	"larkfmt/internal/diagfmt"
	"larkfmt/internal/driver"
	"larkfmt/internal/observ"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Check that grammars format to a fixed point",
	Long: `Check formats each input twice and reports those whose second pass differs
from the first. Directories are searched for *.lark files; stdin is read when
no path is given.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|short|json)")
	checkCmd.Flags().Int("jobs", 0, "files checked in parallel (0 = GOMAXPROCS)")
}

type checkFileJSON struct {
	Path        string                   `json:"path"`
	Stable      bool                     `json:"stable"`
	Line        int                      `json:"line,omitempty"`
	Want        string                   `json:"want,omitempty"`
	Got         string                   `json:"got,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
}

type checkReportJSON struct {
	Stable bool            `json:"stable"`
	Files  []checkFileJSON `json:"files"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch outputFormat {
	case "text", "short", "json":
	default:
		return fmt.Errorf("check: unsupported output format %q", outputFormat)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	opts.Jobs = jobs

	if len(args) == 0 {
		args = []string{"-"}
	}
	results, err := driver.CheckPaths(cmd.Context(), args, cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	stable := true
	for _, res := range results {
		timer.Merge(res.Timer)
		stable = stable && res.Stable()
	}

	switch outputFormat {
	case "json":
		if err := renderCheckJSON(cmd, results, stable); err != nil {
			return err
		}
	case "short":
		renderCheckShort(cmd, results)
	default:
		renderCheckText(cmd, results)
	}
	printTimings(cmd, timer)

	if !stable {
		return errReported
	}
	return nil
}

// renderCheckText lists unstable inputs on stdout and diagnostics on stderr.
func renderCheckText(cmd *cobra.Command, results []*driver.Result) {
	silent := quiet(cmd)
	for _, res := range results {
		if res.Failed() {
			reportDiagnostics(cmd, res)
			continue
		}
		if res.Stable() || silent {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Path)
		reportDiagnostics(cmd, res)
	}
}

// renderCheckShort prints every diagnostic as one line on stdout.
func renderCheckShort(cmd *cobra.Command, results []*driver.Result) {
	if len(results) == 0 {
		return
	}
	all := diag.NewBag(0)
	for _, res := range results {
		all.Merge(res.Bag)
	}
	if all.Len() == 0 {
		return
	}
	base, _ := os.Getwd()
	// CheckPaths loads every input into one file set
	fmt.Fprintln(cmd.OutOrStdout(), diag.FormatShort(all.Items(), results[0].FileSet, base, true))
}

func renderCheckJSON(cmd *cobra.Command, results []*driver.Result, stable bool) error {
	report := checkReportJSON{Stable: stable, Files: make([]checkFileJSON, 0, len(results))}
	for _, res := range results {
		entry := checkFileJSON{Path: res.Path, Stable: res.Stable()}
		if res.Check != nil && !res.Check.Stable {
			entry.Line, entry.Want, entry.Got = res.Check.Line, res.Check.Want, res.Check.Got
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		if res.Bag.Len() > 0 {
			res.Bag.Sort()
			out := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{IncludePositions: true})
			entry.Diagnostics = out.Diagnostics
		}
		report.Files = append(report.Files, entry)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
