package lexer

import (
	"fmt"

	"larkfmt/internal/diag"
	"larkfmt/internal/source"
	"larkfmt/internal/token"
)

// LexError reports input the lexer cannot split into tokens.
type LexError struct {
	Pos  token.Pos
	Span source.Span
	Kind diag.Code
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

func (e *LexError) Code() diag.Code { return e.Kind }

func (e *LexError) Message() string { return e.Msg }

func (e *LexError) Offsets() (start, end uint32) { return e.Span.Start, e.Span.End }

// classify picks the error kind from the byte the lexer stopped at.
func classify(c byte) (diag.Code, string) {
	switch c {
	case '"':
		return diag.LexUnterminatedString, "unterminated string literal"
	case '/':
		return diag.LexUnterminatedRegexp, "unterminated regular expression"
	}
	return diag.LexInvalidChar, fmt.Sprintf("invalid character %q", c)
}
