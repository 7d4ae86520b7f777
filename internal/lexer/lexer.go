package lexer

import (
	"bytes"
	"errors"
	"iter"

	"fortio.org/safecast"
	plex "github.com/alecthomas/participle/v2/lexer"

	"larkfmt/internal/source"
	"larkfmt/internal/token"
)

// Lexer produces the token stream of a grammar source.
// Each call to Tokenize returns a fresh, finite sequence; ranging over it
// again re-scans the input.
type Lexer interface {
	Tokenize(src []byte) iter.Seq2[token.Token, error]
}

var rules = []plex.SimpleRule{
	{Name: "Comment", Pattern: `(?://|#)[^\n]*`},
	{Name: "Directive", Pattern: `%[a-z]+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\\n])*"i?`},
	{Name: "Regexp", Pattern: `/(?:\\.|[^/\\\n])+/[imslux]*`},
	{Name: "Number", Pattern: `[+-]?[0-9]+`},
	{Name: "Ident", Pattern: `[?!]?_*[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Op", Pattern: `->|\.\.|[:|()\[\]{},.~*+?!]`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
}

var ruleKinds = map[string]token.Kind{
	"Comment":    token.Comment,
	"Directive":  token.DirectiveKw,
	"String":     token.String,
	"Regexp":     token.Regexp,
	"Number":     token.Number,
	"Ident":      token.Ident,
	"Op":         token.Op,
	"Newline":    token.Newline,
	"Whitespace": token.Whitespace,
}

var grammarDef = plex.MustSimple(rules)

type simpleLexer struct {
	def   *plex.StatefulDefinition
	kinds map[plex.TokenType]token.Kind
	opts  Options
}

// New returns the rule-table lexer configured with opts.
func New(opts Options) Lexer {
	kinds := make(map[plex.TokenType]token.Kind, len(ruleKinds))
	for name, typ := range grammarDef.Symbols() {
		if k, ok := ruleKinds[name]; ok {
			kinds[typ] = k
		}
	}
	return &simpleLexer{def: grammarDef, kinds: kinds, opts: opts}
}

var defaultLexer = New(Options{})

// Default returns the shared rule-table lexer. It keeps no state between runs.
func Default() Lexer {
	return defaultLexer
}

// Tokenize scans src with the default lexer.
func Tokenize(src []byte) iter.Seq2[token.Token, error] {
	return defaultLexer.Tokenize(src)
}

// Collect drains seq into a slice, stopping at the first error.
// The trailing EOF token is included.
func Collect(seq iter.Seq2[token.Token, error]) ([]token.Token, error) {
	var out []token.Token
	for tok, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	return out, nil
}

func (l *simpleLexer) Tokenize(src []byte) iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		lx, err := l.def.Lex(l.opts.Filename, bytes.NewReader(src))
		if err != nil {
			yield(token.Token{}, err)
			return
		}
		lineStart := 0
		for {
			pt, err := lx.Next()
			if err != nil {
				yield(token.Token{}, l.lexError(src, lineStart, err))
				return
			}
			tok := l.convert(pt, lineStart)
			if !yield(tok, nil) || tok.Kind == token.EOF {
				return
			}
			if tok.Kind == token.Newline {
				lineStart = pt.Pos.Offset + len(pt.Value)
			}
		}
	}
}

// convert maps a participle token; columns are counted in bytes from lineStart
// so they agree with source.FileSet.Resolve.
func (l *simpleLexer) convert(pt plex.Token, lineStart int) token.Token {
	kind := token.EOF
	if !pt.EOF() {
		kind = l.kinds[pt.Type]
	}
	start := toUint32(pt.Pos.Offset)
	return token.Token{
		Kind: kind,
		Text: pt.Value,
		Span: source.Span{File: l.opts.File, Start: start, End: start + toUint32(len(pt.Value))},
		Pos:  token.Pos{Line: toUint32(pt.Pos.Line), Col: toUint32(pt.Pos.Offset - lineStart + 1)},
	}
}

func (l *simpleLexer) lexError(src []byte, lineStart int, err error) error {
	var perr *plex.Error
	if !errors.As(err, &perr) {
		return err
	}
	off := perr.Pos.Offset
	var c byte
	if off >= 0 && off < len(src) {
		c = src[off]
	}
	code, msg := classify(c)
	start := toUint32(off)
	return &LexError{
		Pos:  token.Pos{Line: toUint32(perr.Pos.Line), Col: toUint32(off - lineStart + 1)},
		Span: source.Span{File: l.opts.File, Start: start, End: start + 1},
		Kind: code,
		Msg:  msg,
	}
}

func toUint32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return v
}
