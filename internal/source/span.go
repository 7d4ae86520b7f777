package source

import "fmt"

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Empty reports whether the span covers no bytes. Blank-line markers and
// end-of-input positions are empty spans.
func (s Span) Empty() bool { return s.Start == s.End }

func (s Span) String() string {
	return fmt.Sprintf("%d:[%d,%d)", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans of different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}

// Contains reports whether inner lies within s in the same file.
func (s Span) Contains(inner Span) bool {
	return inner.File == s.File && inner.Start >= s.Start && inner.End <= s.End
}
