package syntax

import (
	"fmt"

	"larkfmt/internal/diag"
	"larkfmt/internal/source"
	"larkfmt/internal/token"
)

// UnexpectedTokenError reports a token that cannot start or continue a statement,
// or the end of input inside an unfinished statement.
type UnexpectedTokenError struct {
	Pos  token.Pos
	Span source.Span
	Got  string // token text, "EOF" at end of input
	Msg  string
	Kind diag.Code
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

func (e *UnexpectedTokenError) Code() diag.Code { return e.Kind }

func (e *UnexpectedTokenError) Message() string { return e.Msg }

func (e *UnexpectedTokenError) Offsets() (start, end uint32) { return e.Span.Start, e.Span.End }

func unexpected(tok token.Token, format string, args ...any) *UnexpectedTokenError {
	return &UnexpectedTokenError{
		Pos:  tok.Pos,
		Span: tok.Span,
		Got:  describe(tok),
		Msg:  fmt.Sprintf(format, args...),
		Kind: diag.SynUnexpectedToken,
	}
}

func unterminated(eof token.Token, format string, args ...any) *UnexpectedTokenError {
	err := unexpected(eof, format, args...)
	err.Kind = diag.SynUnterminatedStatement
	return err
}

func unbalanced(tok token.Token, format string, args ...any) *UnexpectedTokenError {
	err := unexpected(tok, format, args...)
	err.Kind = diag.SynUnbalancedDelimiter
	return err
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "EOF"
	}
	return tok.Text
}
