// Package driver runs the formatting pipeline on files and standard input.
//
// It owns everything around the pure pipeline in internal/format: loading
// inputs into a source.FileSet, resolving the style for each input, turning
// pipeline errors and warnings into diagnostics, tracing and timing stages,
// and checking many files in parallel.
package driver
