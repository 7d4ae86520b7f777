package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"larkfmt/internal/diag"
	"larkfmt/internal/source"
)

// Pretty renders diagnostics for humans, in bag order (call bag.Sort first):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	   3 | start: a |
//	     |          ^
//
// Diagnostics whose span is not in fs are printed without location.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, p)
	}
}

type palette struct {
	err, warn, info *color.Color
	loc, gutter     *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan),
		loc:    mk(color.Bold),
		gutter: mk(color.FgBlue),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.severity(d.Severity)
	head := fmt.Sprintf("%s %s", sev.Sprint(d.Severity.String()), sev.Sprint(d.Code.ID()))
	if !located(fs, d.Primary) {
		fmt.Fprintf(w, "%s: %s\n", head, d.Message)
		return
	}
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", displayPath(f, opts.PathMode, opts.BaseDir), start.Line, start.Col)
	fmt.Fprintf(w, "%s: %s: %s\n", p.loc.Sprint(loc), head, d.Message)
	snippet(w, f, start, end, int(opts.Context), sev, p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		if !located(fs, n.Span) {
			fmt.Fprintf(w, "  note: %s\n", n.Msg)
			continue
		}
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", displayPath(nf, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg)
	}
}

func located(fs *source.FileSet, sp source.Span) bool {
	return fs != nil && int(sp.File) < fs.Len()
}

// snippet prints up to context lines above the primary line, the line itself
// and a caret underline. Columns are byte offsets; the underline is measured
// in display width.
func snippet(w io.Writer, f *source.File, start, end source.LineCol, context int, sev *color.Color, p palette) {
	first := max(1, int(start.Line)-max(context, 0))
	width := len(strconv.Itoa(int(start.Line)))
	for ln := first; ln <= int(start.Line); ln++ {
		text := f.GetLine(uint32(ln)) // #nosec G115 -- bounded by start.Line
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width+2, ln), text)
	}

	text := f.GetLine(start.Line)
	from := clamp(int(start.Col)-1, len(text))
	to := len(text)
	if end.Line == start.Line {
		to = clamp(int(end.Col)-1, len(text))
	}
	pad := indentLike(text[:from])
	n := max(1, runewidth.StringWidth(text[from:max(from, to)]))
	marks := "^" + strings.Repeat("~", n-1)
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", width+2, ""), pad, sev.Sprint(marks))
}

// indentLike returns blanks as wide as prefix, keeping its tabs.
func indentLike(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}
