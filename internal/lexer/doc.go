// Package lexer turns Lark grammar text into a lazy stream of tokens.
//
// The formatter only depends on the Lexer interface. The default
// implementation is a table of regular expressions run by participle's
// simple lexer; rules are tried in order and the first match wins, so
// comments are recognised before regular expressions and directive keywords
// before operators.
//
// Every byte of the input ends up in exactly one token: whitespace, line
// breaks and comments are emitted as tokens of their own. On malformed input
// the stream yields a single *LexError and stops.
package lexer
