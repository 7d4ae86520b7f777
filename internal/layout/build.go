package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"larkfmt/internal/syntax"
	"larkfmt/internal/token"
)

// Build converts statements to records, one per statement, in order.
func Build(stmts []syntax.Statement) []Record {
	out := make([]Record, 0, len(stmts))
	for _, st := range stmts {
		switch s := st.(type) {
		case *syntax.Definition:
			out = append(out, buildDefinition(s))
		case *syntax.Directive:
			out = append(out, buildDirective(s))
		case *syntax.CommentLine:
			out = append(out, Record{Kind: KindComment, Text: commentText(s.Text), Pos: s.Pos})
		case *syntax.BlankRun:
			out = append(out, Record{Kind: KindBlank})
		}
	}
	return out
}

func buildDefinition(def *syntax.Definition) Record {
	header := RenderHeader(def.Header)
	rec := Record{
		Kind:         KindDefinition,
		Header:       header,
		HeaderWidth:  TextWidth(header),
		Comments:     commentTexts(def.Comments),
		Alternatives: make([]Line, 0, len(def.Alternatives)),
		Pos:          def.Pos,
	}
	for i := range def.Alternatives {
		alt := &def.Alternatives[i]
		syms := alt.Symbols
		if len(alt.Alias) > 0 {
			syms = append(append(append([]syntax.Symbol(nil), syms...), syntax.Symbol{Kind: token.Op, Text: "->"}), alt.Alias...)
		}
		line := newLine(syms, alt.Inner, alt.Comment, alt.Leading, alt.Pos)
		if i == 0 {
			// leading comments of the first alternative print above the header
			rec.Comments = append(rec.Comments, line.Leading...)
			line.Leading = nil
		}
		rec.Alternatives = append(rec.Alternatives, line)
	}
	return rec
}

func buildDirective(dir *syntax.Directive) Record {
	syms := make([]syntax.Symbol, 0, len(dir.Args)+1)
	syms = append(syms, syntax.Symbol{Kind: token.DirectiveKw, Text: dir.Keyword})
	syms = append(syms, dir.Args...)
	// inner comments count Args; the keyword comes first here
	inner := make([]syntax.InnerComment, len(dir.Inner))
	for i, ic := range dir.Inner {
		ic.At++
		inner[i] = ic
	}
	return Record{
		Kind:         KindDirective,
		Alternatives: []Line{newLine(syms, inner, dir.Comment, nil, dir.Pos)},
		Pos:          dir.Pos,
	}
}

// newLine renders syms, starting a new segment at every inner comment. A
// trailing inner comment ends the segment it follows; a comment on its own
// line goes above the segment that comes after it.
func newLine(syms []syntax.Symbol, inner []syntax.InnerComment, last *syntax.Comment, leading []syntax.Comment, pos token.Pos) Line {
	segs := []Segment{{}}
	start := 0
	split := func(at int) {
		cur := &segs[len(segs)-1]
		cur.Text = Join(syms[start:at])
		cur.Width = TextWidth(cur.Text)
		segs = append(segs, Segment{})
		start = at
	}
	for _, ic := range inner {
		at := min(max(ic.At, start), len(syms))
		text := commentText(ic.Text)
		if !ic.OwnLine {
			segs[len(segs)-1].Comment = text
			split(at)
			continue
		}
		if len(segs) == 1 || at > start {
			split(at)
		}
		cur := &segs[len(segs)-1]
		cur.Leading = append(cur.Leading, text)
	}
	end := &segs[len(segs)-1]
	end.Text = Join(syms[start:])
	end.Width = TextWidth(end.Text)
	if last != nil {
		end.Comment = commentText(last.Text)
	}

	first := segs[0]
	line := Line{
		Text:    first.Text,
		Width:   first.Width,
		Comment: first.Comment,
		Leading: commentTexts(leading),
		Pos:     pos,
	}
	if len(segs) > 1 {
		line.Wrapped = segs[1:]
	}
	return line
}

// TextWidth is the display width of s. Tabs count as one column, like any
// other single-width character; go-runewidth gives them none.
func TextWidth(s string) int {
	return runewidth.StringWidth(s) + strings.Count(s, "\t")
}

func commentTexts(cs []syntax.Comment) []string {
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = commentText(c.Text)
	}
	return out
}

// commentText drops trailing blanks; the comment body is otherwise kept verbatim.
func commentText(s string) string {
	return strings.TrimRight(s, " \t\r")
}
