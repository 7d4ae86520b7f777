package format

import (
	"larkfmt/internal/config"
	"larkfmt/internal/diag"
	"larkfmt/internal/layout"
	"larkfmt/internal/token"
)

// Emit renders aligned records to text.
func Emit(records []layout.Record, style config.Style) []byte {
	out, _ := emit(records, style)
	return out
}

type emitter struct {
	w        *Writer
	style    config.Style
	warnings []Warning
}

func emit(records []layout.Record, style config.Style) ([]byte, []Warning) {
	e := &emitter{w: NewWriter(64 * len(records)), style: style}
	for i := range records {
		rec := &records[i]
		switch rec.Kind {
		case layout.KindBlank:
			e.w.EndLine()
		case layout.KindComment:
			e.w.WriteString(rec.Text)
			e.endLine(rec.Pos)
		case layout.KindDirective:
			e.comments(rec.Comments, 0, rec.Pos)
			for _, line := range rec.Alternatives {
				e.comments(line.Leading, 0, line.Pos)
				e.w.WriteString(line.Text)
				e.trailing(line.Comment, rec.Columns.Comment)
				e.endLine(line.Pos)
				e.wrapped(line, layout.ContinuationIndent, rec.Columns.Comment)
			}
		case layout.KindDefinition:
			e.definition(rec)
		}
	}
	return e.w.Bytes(), e.warnings
}

func (e *emitter) definition(rec *layout.Record) {
	cols := rec.Columns
	e.comments(rec.Comments, 0, rec.Pos)
	for i, line := range rec.Alternatives {
		if i == 0 {
			e.w.WriteString(rec.Header)
			e.w.PadTo(cols.Colon)
			e.w.WriteString(":")
		} else {
			e.comments(line.Leading, cols.Colon, line.Pos)
			e.w.PadTo(cols.Colon)
			e.w.WriteString("|")
		}
		if line.Text != "" {
			e.w.PadTo(cols.Body)
			e.w.WriteString(line.Text)
		}
		e.trailing(line.Comment, cols.Comment)
		e.endLine(line.Pos)
		e.wrapped(line, cols.Body, cols.Comment)
	}
}

// wrapped prints the continuation lines of a line split by inner comments.
func (e *emitter) wrapped(line layout.Line, indent, commentCol int) {
	for _, seg := range line.Wrapped {
		e.comments(seg.Leading, indent, line.Pos)
		e.w.PadTo(indent)
		e.w.WriteString(seg.Text)
		e.trailing(seg.Comment, commentCol)
		e.endLine(line.Pos)
	}
}

func (e *emitter) comments(lines []string, indent int, pos token.Pos) {
	for _, c := range lines {
		e.w.PadTo(indent)
		e.w.WriteString(c)
		e.endLine(pos)
	}
}

// trailing places a comment at col, or one space after the text when the
// line already reaches col.
func (e *emitter) trailing(comment string, col int) {
	if comment == "" {
		return
	}
	if e.w.Column() < col {
		e.w.PadTo(col)
	} else {
		e.w.Space()
	}
	e.w.WriteString(comment)
}

func (e *emitter) endLine(pos token.Pos) {
	if limit := e.style.LineWidth; limit > 0 && e.w.Column() > limit {
		e.warnings = append(e.warnings, Warning{
			Code:  diag.StyLineOverflow,
			Pos:   pos,
			Line:  e.w.Line(),
			Width: e.w.Column(),
			Limit: limit,
		})
	}
	e.w.EndLine()
}
