package syntax

import (
	"larkfmt/internal/source"
	"larkfmt/internal/token"
)

// Statement is one of *Definition, *Directive, *CommentLine or *BlankRun.
type Statement interface {
	StmtSpan() source.Span
}

// Symbol is an opaque grammar symbol: a name, literal, number or operator.
type Symbol struct {
	Kind token.Kind
	Text string
}

// Comment is a single comment, // or #, without its line break.
type Comment struct {
	Text string
	Pos  token.Pos
	Span source.Span
}

// Header is the part of a definition before the colon.
type Header struct {
	Name     string
	Params   []string // template parameters, in order
	Priority string   // "" when absent
}

// InnerComment is a comment met in the middle of an alternative, inside an
// open group or before an alias. At counts the symbols in front of it, the
// '->' of an alias included.
type InnerComment struct {
	Comment
	At      int
	OwnLine bool // on a line of its own, not after symbols
}

// Alternative is one pipe-separated branch of a definition.
type Alternative struct {
	Symbols []Symbol
	Alias   []Symbol  // tokens after ->, verbatim
	Comment *Comment  // trailing comment on the alternative's last line
	Leading []Comment // comment lines before the alternative's '|'
	Inner   []InnerComment
	Pos     token.Pos
}

// Empty reports whether the alternative has neither symbols nor alias.
func (a *Alternative) Empty() bool {
	return len(a.Symbols) == 0 && len(a.Alias) == 0
}

// Definition is a rule or terminal definition.
type Definition struct {
	Header       Header
	Terminal     bool
	Alternatives []Alternative
	Comments     []Comment // attached comments directly above the header
	Pos          token.Pos
	Span         source.Span
}

func (d *Definition) StmtSpan() source.Span { return d.Span }

// TrailingComment returns the comment on the definition's last line, if any.
func (d *Definition) TrailingComment() *Comment {
	if len(d.Alternatives) == 0 {
		return nil
	}
	return d.Alternatives[len(d.Alternatives)-1].Comment
}

// Directive is a %keyword statement such as %import or %ignore.
type Directive struct {
	Keyword string
	Args    []Symbol
	Comment *Comment
	Inner   []InnerComment // At counts Args
	Pos     token.Pos
	Span    source.Span
}

func (d *Directive) StmtSpan() source.Span { return d.Span }

// CommentLine is a floating comment on a line of its own.
type CommentLine struct {
	Text string
	Pos  token.Pos
	Span source.Span
}

func (c *CommentLine) StmtSpan() source.Span { return c.Span }

// BlankRun stands for one or more blank lines.
type BlankRun struct {
	Span source.Span
}

func (b *BlankRun) StmtSpan() source.Span { return b.Span }
