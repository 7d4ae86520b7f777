package format

import (
	"fmt"
	"strings"

	"larkfmt/internal/lexer"
	"larkfmt/internal/token"
)

// Verify re-lexes src and out and checks that both carry the same
// significant tokens in the same order. Whitespace and line breaks are
// ignored; comments are compared without trailing blanks. A mismatch is
// reported at the input token as *ContentMismatchError.
func Verify(src, out []byte, lx lexer.Lexer) error {
	if lx == nil {
		lx = lexer.Default()
	}
	want, err := significant(lx, src)
	if err != nil {
		return err
	}
	got, err := significant(lx, out)
	if err != nil {
		// err is positioned in out, not src
		return fmt.Errorf("formatted output does not lex: %v", err)
	}
	// both streams end with EOF, so extra output tokens surface as a
	// mismatch against it
	for i := range want {
		if i >= len(got) {
			return mismatch(want[i], token.Token{Kind: token.EOF})
		}
		if !sameToken(want[i], got[i]) {
			return mismatch(want[i], got[i])
		}
	}
	return nil
}

func significant(lx lexer.Lexer, src []byte) ([]token.Token, error) {
	var out []token.Token
	for tok, err := range lx.Tokenize(src) {
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Whitespace || tok.Kind == token.Newline {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

func sameToken(a, b token.Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == token.Comment {
		return trimComment(a.Text) == trimComment(b.Text)
	}
	return a.Text == b.Text
}

func trimComment(s string) string {
	return strings.TrimRight(s, " \t\r")
}

func mismatch(want, got token.Token) *ContentMismatchError {
	return &ContentMismatchError{
		Pos:  want.Pos,
		Span: want.Span,
		Want: describe(want),
		Got:  describe(got),
	}
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", tok.Kind, trimComment(tok.Text))
}
