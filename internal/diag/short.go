package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"larkfmt/internal/source"
)

type shortLine struct {
	sev, code string
	path      string // "" when the diagnostic has no location
	line, col uint32
	msg       string
}

// FormatShort renders diagnostics one per line as
// "severity CODE path:line:col message", ordered by path and position.
// Diagnostics without a location print "-" in place of it and come first.
// Paths are shown relative to base when they live under it. The result has
// no trailing newline.
func FormatShort(diags []Diagnostic, fs *source.FileSet, base string, includeNotes bool) string {
	lines := make([]shortLine, 0, len(diags))
	for _, d := range diags {
		l := shortLine{sev: d.Severity.Label(), code: d.Code.ID(), msg: oneLine(d.Message)}
		locate(&l, fs, base, d.Primary)
		lines = append(lines, l)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			nl := shortLine{sev: "note", code: l.code, msg: oneLine(n.Msg)}
			if locate(&nl, fs, base, n.Span) {
				lines = append(lines, nl)
			}
		}
	}

	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			strings.Compare(a.path, b.path),
			cmp.Compare(a.line, b.line),
			cmp.Compare(a.col, b.col),
			strings.Compare(a.sev, b.sev),
			strings.Compare(a.code, b.code),
			strings.Compare(a.msg, b.msg),
		)
	})

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if l.path == "" {
			fmt.Fprintf(&sb, "%s %s - %s", l.sev, l.code, l.msg)
			continue
		}
		fmt.Fprintf(&sb, "%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.line, l.col, l.msg)
	}
	return sb.String()
}

func locate(l *shortLine, fs *source.FileSet, base string, sp source.Span) bool {
	if fs == nil || int(sp.File) >= fs.Len() {
		return false
	}
	start, _ := fs.Resolve(sp)
	l.path = strings.TrimPrefix(fs.Get(sp.File).DisplayPath(base), "./")
	l.line, l.col = start.Line, start.Col
	return true
}

func oneLine(msg string) string {
	return strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\n", " ").Replace(msg))
}
