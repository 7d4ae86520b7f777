package syntax

import (
	"iter"

	"larkfmt/internal/source"
	"larkfmt/internal/token"
)

// Reconstruct groups the token stream into statements. Lexer errors are
// returned unchanged; structural problems are reported as *UnexpectedTokenError.
// No partial result is returned on failure.
func Reconstruct(seq iter.Seq2[token.Token, error]) ([]Statement, error) {
	lines, eof, err := splitLines(seq)
	if err != nil {
		return nil, err
	}
	r := &reconstructor{lines: lines, eof: eof}
	if err := r.run(); err != nil {
		return nil, err
	}
	return r.out, nil
}

type reconstructor struct {
	lines   []line
	eof     token.Token
	i       int
	out     []Statement
	pending []Comment // comment lines not yet known to be attached or floating
}

func (r *reconstructor) run() error {
	for r.i < len(r.lines) {
		ln := &r.lines[r.i]
		switch {
		case ln.blank():
			r.flushPending()
			r.addBlank()
			r.i++
		case ln.commentOnly():
			r.pending = append(r.pending, toComment(*ln.comment))
			r.i++
		case ln.toks[0].Kind == token.DirectiveKw:
			r.flushPending()
			if err := r.directive(); err != nil {
				return err
			}
		default:
			if err := r.definition(); err != nil {
				return err
			}
		}
	}
	r.flushPending()
	if n := len(r.out); n > 0 {
		if _, ok := r.out[n-1].(*BlankRun); ok {
			r.out = r.out[:n-1]
		}
	}
	return nil
}

func (r *reconstructor) addBlank() {
	n := len(r.out)
	if n == 0 {
		return
	}
	if _, ok := r.out[n-1].(*BlankRun); ok {
		return
	}
	sp := r.eof.Span
	if len(r.lines) > r.i+1 && len(r.lines[r.i+1].toks) > 0 {
		sp = r.lines[r.i+1].toks[0].Span
	}
	sp.End = sp.Start
	r.out = append(r.out, &BlankRun{Span: sp})
}

// flushPending turns buffered comment lines into floating comments.
func (r *reconstructor) flushPending() {
	for _, c := range r.pending {
		r.out = append(r.out, &CommentLine{Text: c.Text, Pos: c.Pos, Span: c.Span})
	}
	r.pending = nil
}

// continuation finds the next line holding tokens, starting at from.
// It returns len(lines) when only blank and comment lines remain.
func (r *reconstructor) continuation(from int) int {
	k := from
	for k < len(r.lines) && len(r.lines[k].toks) == 0 {
		k++
	}
	return k
}

func (r *reconstructor) definition() error {
	first := &r.lines[r.i]
	colon := -1
	for idx, tok := range first.toks {
		if tok.IsOp(":") {
			colon = idx
			break
		}
	}
	headTok := first.toks[0]
	if headTok.IsOp("|") {
		return unexpected(headTok, "unexpected '|' outside a definition")
	}
	if colon == 0 {
		return unexpected(headTok, "missing rule or terminal name before ':'")
	}
	head := first.toks
	if colon > 0 {
		head = first.toks[:colon]
	}
	header, err := parseHeader(head)
	if err != nil {
		return err
	}
	if colon < 0 {
		last := head[len(head)-1]
		return unexpected(last, "expected ':' after %q", last.Text)
	}

	def := &Definition{
		Header:   header,
		Terminal: token.IsTerminalName(header.Name),
		Comments: r.pending,
		Pos:      headTok.Pos,
		Span:     first.span(),
	}
	r.pending = nil

	b := newBody(headTok.Pos, false)
	if colon+1 < len(first.toks) {
		b.cur.Pos = first.toks[colon+1].Pos
	}
	if err := b.feed(first.toks[colon+1:]); err != nil {
		return err
	}
	b.trailing(first.comment)

	end, err := r.follow(b, &def.Span)
	if err != nil {
		return err
	}
	alts, err := b.finish()
	if err != nil {
		return err
	}
	def.Alternatives = alts
	r.out = append(r.out, def)
	r.i = end
	return nil
}

func (r *reconstructor) directive() error {
	first := &r.lines[r.i]
	kw := first.toks[0]
	b := newBody(kw.Pos, true)
	if err := b.feed(first.toks[1:]); err != nil {
		return err
	}
	b.trailing(first.comment)

	dir := &Directive{Keyword: kw.Text, Pos: kw.Pos, Span: first.span()}
	end, err := r.follow(b, &dir.Span)
	if err != nil {
		return err
	}
	alts, err := b.finish()
	if err != nil {
		return err
	}
	// a directive has no alternatives; the pipe split only finds its end and
	// is undone here
	for i, alt := range alts {
		for _, c := range alt.Leading {
			dir.Inner = append(dir.Inner, InnerComment{Comment: c, At: len(dir.Args), OwnLine: true})
		}
		if i > 0 {
			dir.Args = append(dir.Args, Symbol{Kind: token.Op, Text: "|"})
		}
		for _, ic := range alt.Inner {
			ic.At += len(dir.Args)
			dir.Inner = append(dir.Inner, ic)
		}
		dir.Args = append(dir.Args, alt.Symbols...)
		if len(alt.Alias) > 0 {
			dir.Args = append(dir.Args, Symbol{Kind: token.Op, Text: "->"})
			dir.Args = append(dir.Args, alt.Alias...)
		}
		switch {
		case alt.Comment == nil:
		case i < len(alts)-1:
			dir.Inner = append(dir.Inner, InnerComment{Comment: *alt.Comment, At: len(dir.Args)})
		default:
			dir.Comment = alt.Comment
		}
	}
	r.out = append(r.out, dir)
	r.i = end
	return nil
}

// follow feeds continuation lines of the statement started at r.i into b and
// returns the index of the first line after the statement.
func (r *reconstructor) follow(b *body, span *source.Span) (int, error) {
	j := r.i + 1
	for {
		k := r.continuation(j)
		open := b.open()
		if !open && (k == len(r.lines) || !r.lines[k].startsWith("|")) {
			return j, nil
		}
		if k == len(r.lines) {
			return 0, b.unterminatedAt(r.eof)
		}
		next := &r.lines[k]
		if b.dangling() && !next.startsWith("|") {
			return 0, unexpected(next.toks[0], "expected symbols after '|' at %d:%d on the same line, found %q",
				b.pipe.Pos.Line, b.pipe.Pos.Col, next.toks[0].Text)
		}
		toNext := b.depth() == 0 && next.startsWith("|")
		for _, ln := range r.lines[j:k] {
			if ln.comment == nil {
				continue
			}
			if toNext {
				b.pendingLeading = append(b.pendingLeading, toComment(*ln.comment))
			} else {
				b.leading(toComment(*ln.comment))
			}
		}
		if err := b.feed(next.toks); err != nil {
			return 0, err
		}
		b.trailing(next.comment)
		*span = span.Cover(next.span())
		j = k + 1
	}
}

func parseHeader(toks []token.Token) (Header, error) {
	name := toks[0]
	if name.Kind != token.Ident {
		return Header{}, unexpected(name, "expected a rule or terminal name, found %q", name.Text)
	}
	h := Header{Name: name.Text}
	rest := toks[1:]
	if len(rest) > 0 && rest[0].IsOp("{") {
		open := rest[0]
		rest = rest[1:]
		for {
			if len(rest) == 0 {
				return Header{}, unbalanced(open, "unclosed '{' in template parameters")
			}
			if rest[0].Kind != token.Ident {
				return Header{}, unexpected(rest[0], "expected a template parameter name, found %q", rest[0].Text)
			}
			h.Params = append(h.Params, rest[0].Text)
			rest = rest[1:]
			if len(rest) == 0 {
				return Header{}, unbalanced(open, "unclosed '{' in template parameters")
			}
			if rest[0].IsOp("}") {
				rest = rest[1:]
				break
			}
			if !rest[0].IsOp(",") {
				return Header{}, unexpected(rest[0], "expected ',' or '}' in template parameters, found %q", rest[0].Text)
			}
			rest = rest[1:]
		}
	}
	if len(rest) > 0 && rest[0].IsOp(".") {
		if len(rest) < 2 || rest[1].Kind != token.Number {
			return Header{}, unexpected(rest[0], "expected a priority number after '.'")
		}
		h.Priority = rest[1].Text
		rest = rest[2:]
	}
	if len(rest) > 0 {
		return Header{}, unexpected(rest[0], "unexpected %q, expected ':'", rest[0].Text)
	}
	return h, nil
}

func toComment(tok token.Token) Comment {
	return Comment{Text: tok.Text, Pos: tok.Pos, Span: tok.Span}
}
