// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> statements -> layout -> output). They guard against
// panics and hangs on arbitrary input and check that formatting converges.
//
// The package holds no production code; seeds come from the formatter's
// golden testdata.
package fuzztests
