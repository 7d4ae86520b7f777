package driver

import (
	"larkfmt/internal/diag"
	"larkfmt/internal/format"
	"larkfmt/internal/observ"
	"larkfmt/internal/source"
)

// Result is the outcome of one pipeline run on one input.
type Result struct {
	Path    string // as given on the command line, source.StdinName for stdin
	FileSet *source.FileSet
	File    source.FileID
	Loaded  bool // File is valid

	Output []byte         // formatted text (format runs)
	Check  *format.Report // idempotence report (check runs)

	Bag   *diag.Bag
	Timer *observ.Timer
	Err   error
}

// Failed reports whether the run ended with an error.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Stable reports whether a check run found the input stable.
func (r *Result) Stable() bool {
	return r.Err == nil && r.Check != nil && r.Check.Stable
}
