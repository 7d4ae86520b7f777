package syntax

import (
	"iter"

	"larkfmt/internal/source"
	"larkfmt/internal/token"
)

// line is one physical source line with whitespace dropped.
type line struct {
	toks    []token.Token
	comment *token.Token
}

func (l *line) blank() bool {
	return len(l.toks) == 0 && l.comment == nil
}

func (l *line) commentOnly() bool {
	return len(l.toks) == 0 && l.comment != nil
}

func (l *line) startsWith(op string) bool {
	return len(l.toks) > 0 && l.toks[0].IsOp(op)
}

func (l *line) span() source.Span {
	var sp source.Span
	first := true
	add := func(tok token.Token) {
		if first {
			sp, first = tok.Span, false
			return
		}
		sp = sp.Cover(tok.Span)
	}
	for _, tok := range l.toks {
		add(tok)
	}
	if l.comment != nil {
		add(*l.comment)
	}
	return sp
}

// splitLines drains seq into physical lines. The EOF token is returned
// separately so errors at the end of input have a position.
func splitLines(seq iter.Seq2[token.Token, error]) ([]line, token.Token, error) {
	var (
		lines []line
		cur   line
		eof   token.Token
		dirty bool
	)
	for tok, err := range seq {
		if err != nil {
			return nil, token.Token{}, err
		}
		switch tok.Kind {
		case token.EOF:
			eof = tok
		case token.Whitespace:
			dirty = true
		case token.Newline:
			lines = append(lines, cur)
			cur, dirty = line{}, false
		case token.Comment:
			c := tok
			cur.comment = &c
			dirty = true
		default:
			cur.toks = append(cur.toks, tok)
			dirty = true
		}
	}
	if dirty {
		lines = append(lines, cur)
	}
	return lines, eof, nil
}
