package driver

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"larkfmt/internal/diag"
	"larkfmt/internal/format"
	"larkfmt/internal/lexer"
	"larkfmt/internal/observ"
	"larkfmt/internal/source"
	"larkfmt/internal/trace"
)

type mode uint8

const (
	modeFormat mode = iota
	modeCheck
)

func (m mode) String() string {
	if m == modeCheck {
		return "check"
	}
	return "format"
}

// FormatInput formats one input: a file, or stdin when IsStdin(path).
func FormatInput(ctx context.Context, path string, stdin io.Reader, opts Options) *Result {
	return runInput(ctx, path, stdin, opts, modeFormat)
}

// CheckInput runs the idempotence check on one input.
func CheckInput(ctx context.Context, path string, stdin io.Reader, opts Options) *Result {
	return runInput(ctx, path, stdin, opts, modeCheck)
}

func runInput(ctx context.Context, path string, stdin io.Reader, opts Options, m mode) *Result {
	fileSet := source.NewFileSet()
	res := newResult(path, fileSet, opts)
	id, err := LoadInput(fileSet, path, stdin)
	if err != nil {
		res.fail(err, diag.IOLoadFileError)
		return res
	}
	res.File, res.Loaded = id, true
	run(ctx, res, newStyleCache(opts), opts, m)
	return res
}

func newResult(path string, fileSet *source.FileSet, opts Options) *Result {
	if IsStdin(path) {
		path = source.StdinName
	}
	return &Result{
		Path:    path,
		FileSet: fileSet,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
		Timer:   observ.NewTimer(),
	}
}

// fail records err; positioned pipeline errors become located diagnostics,
// everything else an unlocated one with fallback as its code.
func (r *Result) fail(err error, fallback diag.Code) {
	r.Err = err
	if r.Loaded {
		if d, ok := diag.FromError(err, r.File); ok {
			r.reporter().Report(d)
			return
		}
	}
	diag.ReportError(r.reporter(), fallback, source.Span{File: source.NoFile}, err.Error()).Emit()
}

func (r *Result) reporter() diag.Reporter {
	return diag.BagReporter{Bag: r.Bag}
}

// run executes the pipeline on the loaded file of res.
func run(ctx context.Context, res *Result, styles *styleCache, opts Options, m mode) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, m.String())
	tr := trace.FromContext(ctx)
	defer func() {
		span.WithExtra("path", res.Path)
		detail := "ok"
		if res.Err != nil {
			detail = "error"
		}
		span.End(detail)
	}()

	style, used, err := styles.forInput(res.Path)
	if err != nil {
		res.fail(fmt.Errorf("style for %s: %w", res.Path, err), diag.IOConfigError)
		return
	}
	if used != "" {
		trace.Point(tr, trace.ScopeDetail, "config", used, span.ID())
	}

	file := res.FileSet.Get(res.File)
	lx := opts.Lexer
	if lx == nil {
		lx = lexer.New(lexer.Options{Filename: res.Path, File: res.File})
	}
	fopts := format.Options{
		Style:    style,
		Lexer:    lx,
		Verify:   opts.Verify,
		Observer: observer(tr, span.ID(), res.Timer),
	}

	switch m {
	case modeCheck:
		rep, err := format.CheckReport(file.Content, fopts)
		if err != nil {
			res.fail(fmt.Errorf("check %s: %w", res.Path, err), diag.FmtInfo)
			return
		}
		res.Check = rep
		if !rep.Stable {
			diag.ReportWarning(res.reporter(), diag.FmtNotIdempotent, source.Span{File: res.File}, "formatting is not stable").
				WithNote(source.Span{File: source.NoFile}, fmt.Sprintf("output line %d changes from %q to %q", rep.Line, rep.Want, rep.Got)).
				Emit()
		}
	default:
		out, err := format.Format(file.Content, fopts)
		if err != nil {
			res.fail(fmt.Errorf("format %s: %w", res.Path, err), diag.FmtInfo)
			return
		}
		res.Output = out.Output
		for _, w := range out.Warnings {
			reportWarning(res.reporter(), file, w)
		}
		trace.Point(tr, trace.ScopeDetail, "output", strconv.Itoa(len(out.Output))+" bytes", span.ID())
	}
}

// observer forwards pipeline stages to the tracer and the timer.
func observer(tr trace.Tracer, parent uint64, timer *observ.Timer) format.PhaseObserver {
	open := make(map[string]*trace.Span)
	return func(ev format.PhaseEvent) {
		switch ev.Status {
		case format.PhaseStart:
			open[ev.Name] = trace.Begin(tr, trace.ScopeStage, ev.Name, parent)
		case format.PhaseEnd:
			if sp := open[ev.Name]; sp != nil {
				sp.End("")
				delete(open, ev.Name)
			}
			timer.Add(ev.Name, ev.Elapsed, "")
		}
	}
}

// reportWarning locates a formatter warning at the input statement it came from.
func reportWarning(r diag.Reporter, file *source.File, w format.Warning) {
	off := file.Offset(source.LineCol{Line: w.Pos.Line, Col: w.Pos.Col})
	diag.ReportWarning(r, w.Code, source.Span{File: file.ID, Start: off, End: off}, w.Message()).Emit()
}
