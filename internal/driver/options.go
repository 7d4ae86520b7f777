package driver

import (
	"larkfmt/internal/config"
	"larkfmt/internal/lexer"
)

// Options configures a driver run.
type Options struct {
	// ConfigPath is an explicit style file; empty means discovery from the
	// input's directory.
	ConfigPath string
	// Override is applied to the resolved style (environment and flags).
	Override func(*config.Style)
	// Verify enables content verification after formatting.
	Verify bool
	// Lexer replaces the default grammar lexer.
	Lexer lexer.Lexer
	// MaxDiagnostics bounds each result's bag (default 100).
	MaxDiagnostics int
	// Jobs bounds parallel checks; <= 0 means GOMAXPROCS.
	Jobs int
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}
