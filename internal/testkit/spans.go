// Package testkit holds structural checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"larkfmt/internal/source"
	"larkfmt/internal/syntax"
)

// CheckStatementSpans runs the span invariants of a reconstructed file:
// 1) every span points into sf and ends within its content
// 2) blank runs are empty; every other statement is not
// 3) non-blank statements appear in source order without overlapping
// 4) attached comments sit between the previous statement and their definition
// 5) trailing comments lie inside their statement
// 6) inner comments lie inside their statement, in source order, each at a
// symbol boundary of its alternative
func CheckStatementSpans(stmts []syntax.Statement, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	inFile := func(what string, sp source.Span) error {
		if sp.File != sf.ID {
			return fmt.Errorf("%s span points to different file id: got=%d want=%d", what, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("%s span %v is outside content of %d bytes", what, sp, lenContent)
		}
		return nil
	}

	var prevEnd uint32
	for i, stmt := range stmts {
		sp := stmt.StmtSpan()
		what := fmt.Sprintf("statement %d (%T)", i, stmt)
		if err := inFile(what, sp); err != nil {
			return err
		}
		if _, blank := stmt.(*syntax.BlankRun); blank {
			if !sp.Empty() {
				return fmt.Errorf("%s: blank run span %v is not empty", what, sp)
			}
			continue
		}
		if sp.Empty() {
			return fmt.Errorf("%s: empty span", what)
		}

		// 4) attached comments
		lower := prevEnd
		if def, ok := stmt.(*syntax.Definition); ok {
			for _, c := range def.Comments {
				if err := inFile(what+" comment", c.Span); err != nil {
					return err
				}
				if c.Span.Start < lower || c.Span.End > sp.Start {
					return fmt.Errorf("%s: attached comment %v is not between %d and %v", what, c.Span, lower, sp)
				}
				lower = c.Span.End
			}
			// 5) trailing comments
			for _, alt := range def.Alternatives {
				if alt.Comment != nil && !sp.Contains(alt.Comment.Span) {
					return fmt.Errorf("%s: trailing comment %v outside %v", what, alt.Comment.Span, sp)
				}
				// 6) inner comments
				symbols := len(alt.Symbols)
				if len(alt.Alias) > 0 {
					symbols += 1 + len(alt.Alias)
				}
				if err := checkInner(what, sp, alt.Inner, symbols); err != nil {
					return err
				}
			}
		}
		if dir, ok := stmt.(*syntax.Directive); ok {
			if dir.Comment != nil && !sp.Contains(dir.Comment.Span) {
				return fmt.Errorf("%s: trailing comment %v outside %v", what, dir.Comment.Span, sp)
			}
			if err := checkInner(what, sp, dir.Inner, len(dir.Args)); err != nil {
				return err
			}
		}

		// 3) order
		if sp.Start < lower {
			return fmt.Errorf("%s: span %v overlaps the previous statement ending at %d", what, sp, lower)
		}
		prevEnd = sp.End
	}
	return nil
}

func checkInner(what string, sp source.Span, inner []syntax.InnerComment, symbols int) error {
	for i, ic := range inner {
		if !sp.Contains(ic.Span) {
			return fmt.Errorf("%s: inner comment %v outside %v", what, ic.Span, sp)
		}
		if ic.At < 0 || ic.At > symbols {
			return fmt.Errorf("%s: inner comment %q at symbol %d of %d", what, ic.Text, ic.At, symbols)
		}
		if i == 0 {
			continue
		}
		if prev := inner[i-1]; ic.Span.Start < prev.Span.End || ic.At < prev.At {
			return fmt.Errorf("%s: inner comment %q is out of order", what, ic.Text)
		}
	}
	return nil
}
