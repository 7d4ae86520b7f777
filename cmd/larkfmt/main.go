package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"larkfmt/internal/config"
	"larkfmt/internal/version"
)

// errReported marks failures whose diagnostics were already rendered.
var errReported = errors.New("errors reported")

// state of the current invocation, cleared by execute
var (
	styleOverride func(*config.Style)
	cleanups      []func(failed bool)
)

var rootCmd = &cobra.Command{
	Use:               "larkfmt",
	Short:             "Formatter for Lark grammar files",
	Long:              `larkfmt rewrites Lark grammars into one canonical layout with aligned colons, pipes and comments`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	flags.String("config", "", "style file to use instead of discovering "+config.FileName)
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file on exit")
	flags.String("exec-trace", "", "write a runtime execution trace to this file")
	addStyleFlags(flags)
	bindFlags(flags)
}

// main runs the CLI; any command error exits with status 1.
func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs one CLI invocation and returns its exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	resetCommand(ctx, rootCmd)
	styleOverride, cleanups = nil, nil

	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i](err != nil)
	}
	cleanups = nil
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "larkfmt: %v\n", err)
	}
	return 1
}

// resetCommand puts every flag of cmd and its subcommands back to its
// default and replaces the context a previous run left behind.
func resetCommand(ctx context.Context, cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	cmd.SetContext(ctx)
	for _, sub := range cmd.Commands() {
		resetCommand(ctx, sub)
	}
}

// prepare runs after flag parsing for every subcommand.
func prepare(cmd *cobra.Command, _ []string) error {
	if _, err := colorMode(cmd); err != nil {
		return err
	}
	override, err := readStyleOverride()
	if err != nil {
		return err
	}
	styleOverride = override

	stopTracing, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTracing)

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopProfiling)
	return nil
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
