package syntax

import (
	"larkfmt/internal/token"
)

// body splits the symbols of one statement into alternatives while tracking
// bracket nesting and the alias arrow.
type body struct {
	directive      bool
	alts           []Alternative
	cur            Alternative
	piped          bool // cur was opened by a top-level '|'
	pipe           token.Token
	inAlias        bool
	arrow          token.Token
	stack          []token.Token
	pendingLeading []Comment // comment lines that belong to the next alternative
	commentAt      int       // symbol count when cur.Comment was recorded
}

func newBody(pos token.Pos, directive bool) *body {
	return &body{directive: directive, cur: Alternative{Pos: pos}}
}

func (b *body) depth() int {
	return len(b.stack)
}

// open reports whether the statement cannot end at the current line.
func (b *body) open() bool {
	switch {
	case len(b.stack) > 0:
		return true
	case b.inAlias:
		return len(b.cur.Alias) == 0
	default:
		return b.dangling()
	}
}

// dangling reports whether the line ended right after a top-level '|'.
func (b *body) dangling() bool {
	return len(b.stack) == 0 && !b.inAlias && b.piped && b.cur.Empty()
}

func (b *body) feed(toks []token.Token) error {
	for _, tok := range toks {
		switch {
		case tok.Kind == token.DirectiveKw:
			return unexpected(tok, "unexpected directive %s inside a statement", tok.Text)
		case tok.IsOp(":") && !b.directive:
			return unexpected(tok, "unexpected ':' inside a definition body")
		case tok.IsOp("|") && len(b.stack) == 0:
			if err := b.closeAlternative(); err != nil {
				return err
			}
			b.cur = Alternative{Pos: tok.Pos, Leading: b.pendingLeading}
			b.pendingLeading = nil
			b.piped, b.pipe = true, tok
		case tok.IsOp("->") && len(b.stack) == 0:
			if b.inAlias {
				return unexpected(tok, "unexpected second '->' in one alternative")
			}
			b.settle()
			b.inAlias, b.arrow = true, tok
		case tok.IsOpenBracket():
			b.stack = append(b.stack, tok)
			b.add(tok)
		case tok.IsCloseBracket():
			if len(b.stack) == 0 {
				return unbalanced(tok, "unbalanced %q", tok.Text)
			}
			open := b.stack[len(b.stack)-1]
			if token.Closer(open.Text) != tok.Text {
				return unbalanced(tok, "%q does not close %q opened at %d:%d", tok.Text, open.Text, open.Pos.Line, open.Pos.Col)
			}
			b.stack = b.stack[:len(b.stack)-1]
			b.add(tok)
		default:
			b.add(tok)
		}
	}
	return nil
}

func (b *body) add(tok token.Token) {
	b.settle()
	sym := Symbol{Kind: tok.Kind, Text: tok.Text}
	if b.inAlias {
		b.cur.Alias = append(b.cur.Alias, sym)
		return
	}
	b.cur.Symbols = append(b.cur.Symbols, sym)
}

// at is the number of symbols in the current alternative, counting the
// alias arrow.
func (b *body) at() int {
	n := len(b.cur.Symbols)
	if b.inAlias {
		n += 1 + len(b.cur.Alias)
	}
	return n
}

// trailing records the comment that ends a line of the current alternative.
// It stays the alternative's trailing comment unless more symbols follow.
func (b *body) trailing(tok *token.Token) {
	if tok == nil {
		return
	}
	b.settle()
	c := toComment(*tok)
	b.cur.Comment = &c
	b.commentAt = b.at()
}

// leading records a comment line met inside the current alternative.
func (b *body) leading(c Comment) {
	b.settle()
	b.cur.Inner = append(b.cur.Inner, InnerComment{Comment: c, At: b.at(), OwnLine: true})
}

// settle turns a trailing comment that more content follows into an inner
// comment at the point where it was written.
func (b *body) settle() {
	if b.cur.Comment == nil {
		return
	}
	b.cur.Inner = append(b.cur.Inner, InnerComment{Comment: *b.cur.Comment, At: b.commentAt})
	b.cur.Comment = nil
}

func (b *body) closeAlternative() error {
	if b.inAlias && len(b.cur.Alias) == 0 {
		return unexpected(b.arrow, "missing alias name after '->'")
	}
	b.alts = append(b.alts, b.cur)
	b.inAlias = false
	return nil
}

func (b *body) unterminatedAt(eof token.Token) error {
	switch {
	case len(b.stack) > 0:
		open := b.stack[len(b.stack)-1]
		return unterminated(eof, "unclosed %q opened at %d:%d", open.Text, open.Pos.Line, open.Pos.Col)
	case b.inAlias:
		return unterminated(eof, "missing alias name after '->' at %d:%d", b.arrow.Pos.Line, b.arrow.Pos.Col)
	default:
		return unterminated(eof, "unterminated alternative: '|' at %d:%d is followed by nothing", b.pipe.Pos.Line, b.pipe.Pos.Col)
	}
}

func (b *body) finish() ([]Alternative, error) {
	if len(b.stack) > 0 {
		open := b.stack[len(b.stack)-1]
		return nil, unbalanced(open, "unclosed %q", open.Text)
	}
	if err := b.closeAlternative(); err != nil {
		return nil, err
	}
	return b.alts, nil
}
