package layout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"larkfmt/internal/config"
	"larkfmt/internal/layout"
	"larkfmt/internal/lexer"
	"larkfmt/internal/syntax"
	"larkfmt/internal/token"
)

func build(t *testing.T, src string) []layout.Record {
	t.Helper()
	stmts, err := syntax.Reconstruct(lexer.Tokenize([]byte(src)))
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	return layout.Build(stmts)
}

func TestJoin(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`x :  a  ( b|c )* d ?`, `a (b | c)* d?`},
		{`x: "a" .. "z"`, `"a".."z"`},
		{`x: _sep { item , "," }`, `_sep{item, ","}`},
		{`x: [ a ] b+ -> named`, `[a] b+ -> named`},
		{`x: "a"~3 .. 5`, `"a" ~ 3..5`},
		{`x: /re/i  "s"i`, `/re/i "s"i`},
		{`x: (a) + (b)?`, `(a)+ (b)?`},
	}
	for _, tt := range tests {
		recs := build(t, tt.src)
		if got := recs[0].Alternatives[0].Text; got != tt.want {
			t.Errorf("%q rendered as %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestJoinDirectives(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"%import common . WS", "%import common.WS"},
		{"%import .grammar ( rule , other )", "%import .grammar (rule, other)"},
		{"%import common.NUMBER->NUM", "%import common.NUMBER -> NUM"},
		{"%ignore   /[ \\t]+/", "%ignore /[ \\t]+/"},
		{"%override start :  a | b", "%override start: a | b"},
	}
	for _, tt := range tests {
		recs := build(t, tt.src)
		if recs[0].Kind != layout.KindDirective {
			t.Fatalf("%q built a %v record", tt.src, recs[0].Kind)
		}
		if got := recs[0].Alternatives[0].Text; got != tt.want {
			t.Errorf("%q rendered as %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := syntax.Header{Name: "_sep", Params: []string{"x", "s"}, Priority: "2"}
	if got := layout.RenderHeader(h); got != "_sep{x, s}.2" {
		t.Fatalf("RenderHeader = %q", got)
	}
	if got := layout.RenderHeader(syntax.Header{Name: "start"}); got != "start" {
		t.Fatalf("RenderHeader = %q", got)
	}
}

func TestBuildRecords(t *testing.T) {
	src := "// about\nstart: a  // one\n  // lead\n  | b\n\n# floating\n%ignore WS // ws\n"
	got := build(t, src)
	want := []layout.Record{
		{
			Kind:        layout.KindDefinition,
			Header:      "start",
			HeaderWidth: 5,
			Comments:    []string{"// about"},
			Alternatives: []layout.Line{
				{Text: "a", Width: 1, Comment: "// one"},
				{Text: "b", Width: 1, Leading: []string{"// lead"}},
			},
		},
		{Kind: layout.KindBlank},
		{Kind: layout.KindComment, Text: "# floating"},
		{
			Kind:         layout.KindDirective,
			Alternatives: []layout.Line{{Text: "%ignore WS", Width: 10, Comment: "// ws"}},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreTypes(token.Pos{}), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSplitsAtInnerComments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want layout.Line
	}{
		{
			name: "trailing comment inside a group",
			src:  "start: (a // one\n  b) // two\n",
			want: layout.Line{
				Text: "(a", Width: 2, Comment: "// one",
				Wrapped: []layout.Segment{{Text: "b)", Width: 2, Comment: "// two"}},
			},
		},
		{
			name: "comment lines inside a group",
			src:  "start: (a\n  // one\n  // two\n  | b)\n",
			want: layout.Line{
				Text: "(a", Width: 2,
				Wrapped: []layout.Segment{{Leading: []string{"// one", "// two"}, Text: "| b)", Width: 4}},
			},
		},
		{
			name: "trailing comment then comment line",
			src:  "start: (a // one\n  // two\n  b)\n",
			want: layout.Line{
				Text: "(a", Width: 2, Comment: "// one",
				Wrapped: []layout.Segment{{Leading: []string{"// two"}, Text: "b)", Width: 2}},
			},
		},
		{
			name: "comment before an alias",
			src:  "start: a -> // one\n  named\n",
			want: layout.Line{
				Text: "a ->", Width: 4, Comment: "// one",
				Wrapped: []layout.Segment{{Text: "named", Width: 5}},
			},
		},
		{
			name: "directive",
			src:  "%import common (WS, // one\n    NUMBER)\n",
			want: layout.Line{
				Text: "%import common (WS,", Width: 19, Comment: "// one",
				Wrapped: []layout.Segment{{Text: "NUMBER)", Width: 7}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := build(t, tt.src)[0]
			if len(rec.Comments) != 0 {
				t.Errorf("comments moved above the statement: %q", rec.Comments)
			}
			if diff := cmp.Diff(tt.want, rec.Alternatives[0], cmpopts.IgnoreTypes(token.Pos{}), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("line mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTextWidthCountsTabs(t *testing.T) {
	if got := layout.TextWidth("\"\t\""); got != 3 {
		t.Errorf("TextWidth with a tab = %d, want 3", got)
	}
	recs := build(t, "a: \"\t\"\n")
	if got := recs[0].Alternatives[0].Width; got != 3 {
		t.Errorf("Width = %d, want 3", got)
	}
}

func TestBuildMeasuresDisplayWidth(t *testing.T) {
	recs := build(t, `start: "値段"`)
	if recs[0].HeaderWidth != 5 {
		t.Errorf("HeaderWidth = %d, want 5", recs[0].HeaderWidth)
	}
	if recs[0].Alternatives[0].Width != 6 {
		t.Errorf("Width = %d, want 6", recs[0].Alternatives[0].Width)
	}
}

func TestBlocks(t *testing.T) {
	recs := build(t, "a: x\nb: y\n\nc: z\n%ignore WS\nd: w\n// f\n\ne: v\n")
	got := layout.Blocks(recs)
	want := []layout.Block{{Start: 0, End: 2}, {Start: 3, End: 4}, {Start: 5, End: 6}, {Start: 8, End: 9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blocks (-want +got):\n%s", diff)
	}
}

func TestAlignWithinBlock(t *testing.T) {
	recs := build(t, "a: x // 1\nbb: yyyy\nccc: z | w // 3\n")
	aligned := layout.Align(recs, config.DefaultStyle())

	want := layout.Columns{Colon: 3, Body: 5, Comment: 11}
	for i, rec := range aligned {
		if rec.Columns != want {
			t.Errorf("record %d columns = %+v, want %+v", i, rec.Columns, want)
		}
	}
	if recs[0].Columns != (layout.Columns{}) {
		t.Errorf("Align mutated its input")
	}
}

func TestAlignStyleKnobs(t *testing.T) {
	recs := build(t, "a: xxxxxxxxxx // c\nbb: y\n")
	style := config.Style{ColonPad: 1, BodyGap: 2, CommentGap: 4, MaxCommentColumn: 12}
	aligned := layout.Align(recs, style)
	want := layout.Columns{Colon: 3, Body: 6, Comment: 12}
	if aligned[0].Columns != want {
		t.Fatalf("columns = %+v, want %+v", aligned[0].Columns, want)
	}
}

func TestAlignEmptyAlternativeUsesPipeColumn(t *testing.T) {
	recs := build(t, "start:\n  | a\n")
	aligned := layout.Align(recs, config.DefaultStyle())
	cols := aligned[0].Columns
	if got := layout.LineEnd(aligned[0].Alternatives[0], cols); got != cols.Colon+1 {
		t.Fatalf("LineEnd of empty line = %d, want %d", got, cols.Colon+1)
	}
}

func TestAlignDirectiveIsNotAligned(t *testing.T) {
	recs := build(t, "longer_name: x\n%ignore WS // ws\n")
	aligned := layout.Align(recs, config.DefaultStyle())
	if got := aligned[1].Columns; got != (layout.Columns{Comment: 12}) {
		t.Fatalf("directive columns = %+v", got)
	}
}
