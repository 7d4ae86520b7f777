// Package token defines the lexical token kinds of Lark grammar sources.
// Invariants:
//   - Token.Text is the exact source text of the token (no unquoting, no case folding).
//   - Token.Span covers Text exactly (Start..End, byte offsets).
//   - Whitespace, Newline and Comment are ordinary tokens in the stream; nothing is
//     folded into trivia, so the reconstructor sees every byte of the input.
//   - Rule and terminal names share the Ident kind; they differ only by case
//     (see Token.IsTerminalName).
package token
