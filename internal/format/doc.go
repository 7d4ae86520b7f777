// Package format runs the formatting pipeline and emits the canonical text.
//
// Pipeline: lexer → syntax.Reconstruct → layout.Build → layout.Align → Emit.
// Format runs it once; Check runs it twice and compares; Verify re-lexes input
// and output and compares their significant tokens so a formatter bug can
// never silently change a grammar.
//
// Output invariants: no trailing whitespace, one blank line per blank run,
// a single final newline, empty output for input without statements.
package format
