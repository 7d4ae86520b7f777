package layout

import (
	"larkfmt/internal/token"
)

// Kind classifies a Record.
type Kind uint8

const (
	KindDefinition Kind = iota
	KindDirective
	KindComment
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindDefinition:
		return "definition"
	case KindDirective:
		return "directive"
	case KindComment:
		return "comment"
	case KindBlank:
		return "blank"
	}
	return "unknown"
}

// Line is an alternative of a definition, or the whole of a directive. It
// prints as one physical line unless comments inside it split it; the parts
// after such a comment are in Wrapped.
type Line struct {
	Text    string   // rendered symbols; "" for an empty alternative
	Width   int      // display width of Text
	Comment string   // trailing comment, "" when absent
	Leading []string // comment lines printed above this line
	Wrapped []Segment
	Pos     token.Pos
}

// Segment is a continuation line of a split Line.
type Segment struct {
	Leading []string // comment lines printed above the segment
	Text    string
	Width   int
	Comment string
}

// ContinuationIndent is the indentation of a directive's continuation lines.
// Definitions continue at their body column.
const ContinuationIndent = 4

// Columns are 0-based display columns assigned by Align.
type Columns struct {
	Colon   int // column of ':' on the first line and of '|' on the others
	Body    int // column of the first symbol
	Comment int // column of trailing comments
}

// Record is a statement prepared for emission.
type Record struct {
	Kind         Kind
	Header       string   // definitions only, e.g. "_sep{x, s}.2"
	HeaderWidth  int
	Comments     []string // comment lines printed above the record
	Alternatives []Line
	Text         string // floating comment text
	Pos          token.Pos
	Columns      Columns
}
