package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"larkfmt/internal/diagfmt"
	"larkfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.lark|-]",
	Short: "Dump the token stream of a grammar",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("trivia", false, "include whitespace tokens")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	trivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	res := driver.Tokenize(cmd.Context(), path, cmd.InOrStdin(), opts)
	reportDiagnostics(cmd, res.Result)
	printTimings(cmd, res.Timer)
	if res.Failed() {
		return errReported
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens, trivia)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens, trivia)
}
