// Package syntax rebuilds logical grammar statements from a token stream.
//
// It is deliberately shallow: a definition is a header plus a list of
// alternatives, each alternative an opaque run of symbols. Nothing is
// resolved or validated beyond what is needed to find statement boundaries
// (bracket balance, top-level pipes, the alias arrow).
//
// Statements partition the input: every significant token and every comment
// belongs to exactly one statement, in source order.
package syntax
