// Package diag defines the diagnostic model shared by the formatting pipeline.
//
// # Purpose
//
//   - Provide deterministic data structures that describe findings of the
//     lexer, the statement reconstructor, the style checks and the formatter's
//     own self-verification.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or rendering.
//
// # Scope
//
// Package diag does not perform formatting of diagnostics for humans beyond
// the short one-line form; rendering with source excerpts lives in
// internal/diagfmt, orchestration in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – numeric identifier grouped in families (LEX1xxx, SYN2xxx,
//     STY3xxx, FMT4xxx, IO5xxx) with a stable string form.
//   - Message – short human oriented text.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages.
//
// Pipeline errors are plain Go errors. Those that carry a position implement
// Error, and FromError turns them into a Diagnostic once the driver knows
// which file they belong to.
package diag
