package main

import (
	"github.com/spf13/cobra"

	"larkfmt/internal/driver"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] [file.lark|-]",
	Short: "Print the formatted grammar to stdout",
	Long: `Format reads one grammar (stdin when no path or - is given) and writes the
formatted text to stdout. Files are never rewritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().Bool("no-verify", false, "skip the token comparison of input and output")
}

func runFormat(cmd *cobra.Command, args []string) error {
	noVerify, err := cmd.Flags().GetBool("no-verify")
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	opts.Verify = !noVerify

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	res := driver.FormatInput(cmd.Context(), path, cmd.InOrStdin(), opts)
	reportDiagnostics(cmd, res)
	printTimings(cmd, res.Timer)
	if res.Failed() {
		return errReported
	}
	_, err = cmd.OutOrStdout().Write(res.Output)
	return err
}
