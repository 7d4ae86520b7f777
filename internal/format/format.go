package format

import (
	"fmt"

	"larkfmt/internal/config"
	"larkfmt/internal/layout"
	"larkfmt/internal/lexer"
	"larkfmt/internal/syntax"
)

// Options configures a pipeline run. A zero Style means the default style,
// a nil Lexer the default lexer.
type Options struct {
	Style    config.Style
	Lexer    lexer.Lexer
	Verify   bool
	Observer PhaseObserver
}

// DefaultOptions returns the default style with verification on.
func DefaultOptions() Options {
	return Options{Style: config.DefaultStyle(), Verify: true}
}

func (o Options) withDefaults() Options {
	if o.Style == (config.Style{}) {
		o.Style = config.DefaultStyle()
	}
	if o.Lexer == nil {
		o.Lexer = lexer.Default()
	}
	return o
}

// Result is the outcome of a successful Format.
type Result struct {
	Output   []byte
	Warnings []Warning
}

// Format runs the pipeline over src. Lexer, reconstruction and verification
// errors are returned unchanged; no output is produced on failure.
func Format(src []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Style.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}
	obs := opts.Observer

	t := obs.begin(PhaseReconstruct)
	stmts, err := syntax.Reconstruct(opts.Lexer.Tokenize(src))
	obs.end(PhaseReconstruct, t)
	if err != nil {
		return nil, err
	}

	t = obs.begin(PhaseBuild)
	records := layout.Build(stmts)
	obs.end(PhaseBuild, t)

	t = obs.begin(PhaseAlign)
	records = layout.Align(records, opts.Style)
	obs.end(PhaseAlign, t)

	t = obs.begin(PhaseEmit)
	out, warnings := emit(records, opts.Style)
	obs.end(PhaseEmit, t)

	if opts.Verify {
		t = obs.begin(PhaseVerify)
		err = Verify(src, out, opts.Lexer)
		obs.end(PhaseVerify, t)
		if err != nil {
			return nil, err
		}
	}
	return &Result{Output: out, Warnings: warnings}, nil
}

// Source formats src with opts and returns only the text.
func Source(src []byte, opts Options) ([]byte, error) {
	res, err := Format(src, opts)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}
