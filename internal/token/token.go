package token

import (
	"strings"

	"larkfmt/internal/source"
)

// Pos is a human-readable token position.
type Pos struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes from the start of the line
}

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
	Pos  Pos
}

// IsOp reports whether the token is the operator op.
func (t Token) IsOp(op string) bool {
	return t.Kind == Op && t.Text == op
}

// IsOpenBracket reports whether the token opens a group, an optional or a template argument list.
func (t Token) IsOpenBracket() bool {
	return t.Kind == Op && (t.Text == "(" || t.Text == "[" || t.Text == "{")
}

// IsCloseBracket reports whether the token closes a bracket.
func (t Token) IsCloseBracket() bool {
	return t.Kind == Op && (t.Text == ")" || t.Text == "]" || t.Text == "}")
}

// Closer returns the closing bracket matching an opening one, or "".
func Closer(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	case "{":
		return "}"
	}
	return ""
}

// IsTerminalName reports whether an Ident names a terminal: after the
// ?, ! and _ prefixes are stripped the name starts with an upper-case letter.
func (t Token) IsTerminalName() bool {
	if t.Kind != Ident {
		return false
	}
	return IsTerminalName(t.Text)
}

// IsTerminalName is the string form of Token.IsTerminalName.
func IsTerminalName(name string) bool {
	name = strings.TrimLeft(name, "?!_")
	if name == "" {
		return false
	}
	c := name[0]
	return c >= 'A' && c <= 'Z'
}
