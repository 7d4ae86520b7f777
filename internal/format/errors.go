package format

import (
	"fmt"

	"larkfmt/internal/diag"
	"larkfmt/internal/source"
	"larkfmt/internal/token"
)

// ContentMismatchError reports that formatting would change the significant
// tokens of a grammar. Pos and Span refer to the input.
type ContentMismatchError struct {
	Pos  token.Pos
	Span source.Span
	Want string
	Got  string
}

func (e *ContentMismatchError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message())
}

func (e *ContentMismatchError) Code() diag.Code { return diag.FmtContentChange }

func (e *ContentMismatchError) Message() string {
	return fmt.Sprintf("formatting changed grammar content: expected %s, found %s", e.Want, e.Got)
}

func (e *ContentMismatchError) Offsets() (start, end uint32) { return e.Span.Start, e.Span.End }

// Warning is a non-fatal style finding.
type Warning struct {
	Code  diag.Code
	Pos   token.Pos // source position of the statement line
	Line  int       // 1-based line of the formatted output
	Width int
	Limit int
}

func (w Warning) Message() string {
	return fmt.Sprintf("formatted line %d is %d columns wide, limit is %d", w.Line, w.Width, w.Limit)
}
