package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"larkfmt/internal/diagfmt"
	"larkfmt/internal/driver"
	"larkfmt/internal/observ"
)

func colorMode(cmd *cobra.Command) (string, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "auto", "on", "off":
		return mode, nil
	}
	return "", fmt.Errorf("invalid --color value %q (must be auto, on or off)", mode)
}

// useColor resolves --color for w; auto colors terminals only.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	mode, err := colorMode(cmd)
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return driver.Options{
		ConfigPath:     settings.GetString("config"),
		Override:       styleOverride,
		Verify:         true,
		MaxDiagnostics: maxDiagnostics,
	}, nil
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}

// reportDiagnostics renders a result's diagnostics to stderr.
func reportDiagnostics(cmd *cobra.Command, res *driver.Result) {
	if res.Bag.Len() == 0 {
		return
	}
	res.Bag.Sort()
	errOut := cmd.ErrOrStderr()
	diagfmt.Pretty(errOut, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, errOut),
		Context:   1,
		ShowNotes: true,
	})
}

// printTimings writes the timer summary to stderr when --timings is set.
func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !timings || timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
