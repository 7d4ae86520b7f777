package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"larkfmt/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty writes one token per line. Whitespace is skipped unless
// trivia is set; the listing stops after EOF.
func FormatTokensPretty(w io.Writer, tokens []token.Token, trivia bool) error {
	n := 0
	for _, tok := range tokens {
		if tok.Kind == token.Whitespace && !trivia {
			continue
		}
		n++
		text := ""
		if tok.Text != "" {
			text = fmt.Sprintf(" %q", tok.Text)
		}
		if _, err := fmt.Fprintf(w, "%3d: %-12s%s at %d:%d\n", n, tok.Kind, text, tok.Pos.Line, tok.Pos.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, trivia bool) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.Whitespace && !trivia {
			continue
		}
		out = append(out, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Line:  tok.Pos.Line,
			Col:   tok.Pos.Col,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
