// Package layout turns statements into line records and computes the columns
// they are aligned on.
//
// Build renders every symbol sequence to text once (see Join for the spacing
// policy) and measures it. Align groups adjacent definitions into blocks and
// assigns each block a colon column, a body column and a trailing-comment
// column. Neither step can fail and both are pure: inputs are never mutated.
package layout
