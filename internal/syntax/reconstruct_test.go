package syntax_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"larkfmt/internal/diag"
	"larkfmt/internal/lexer"
	"larkfmt/internal/source"
	"larkfmt/internal/syntax"
	"larkfmt/internal/token"
)

var ignorePositions = cmp.Options{
	cmpopts.IgnoreTypes(source.Span{}, token.Pos{}),
	cmpopts.EquateEmpty(),
}

func reconstruct(t *testing.T, src string) []syntax.Statement {
	t.Helper()
	stmts, err := syntax.Reconstruct(lexer.Tokenize([]byte(src)))
	if err != nil {
		t.Fatalf("Reconstruct(%q): %v", src, err)
	}
	return stmts
}

func ident(s string) syntax.Symbol { return syntax.Symbol{Kind: token.Ident, Text: s} }
func str(s string) syntax.Symbol   { return syntax.Symbol{Kind: token.String, Text: s} }
func op(s string) syntax.Symbol    { return syntax.Symbol{Kind: token.Op, Text: s} }
func num(s string) syntax.Symbol   { return syntax.Symbol{Kind: token.Number, Text: s} }

func comment(s string) *syntax.Comment { return &syntax.Comment{Text: s} }

func alt(syms ...syntax.Symbol) syntax.Alternative {
	return syntax.Alternative{Symbols: syms}
}

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []syntax.Statement
	}{
		{
			name: "continuation with trailing comment",
			src:  "start: a\n  | b   // c\n",
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "start"},
					Alternatives: []syntax.Alternative{
						alt(ident("a")),
						{Symbols: []syntax.Symbol{ident("b")}, Comment: comment("// c")},
					},
				},
			},
		},
		{
			name: "attached and floating comments",
			src:  "// attached\nrule: x\n\n// floating\n\nother: y\n",
			want: []syntax.Statement{
				&syntax.Definition{
					Header:       syntax.Header{Name: "rule"},
					Alternatives: []syntax.Alternative{alt(ident("x"))},
					Comments:     []syntax.Comment{{Text: "// attached"}},
				},
				&syntax.BlankRun{},
				&syntax.CommentLine{Text: "// floating"},
				&syntax.BlankRun{},
				&syntax.Definition{
					Header:       syntax.Header{Name: "other"},
					Alternatives: []syntax.Alternative{alt(ident("y"))},
				},
			},
		},
		{
			name: "blank runs collapse and edges are dropped",
			src:  "\n\n\na: x\n\n\n\nb: y\n\n",
			want: []syntax.Statement{
				&syntax.Definition{Header: syntax.Header{Name: "a"}, Alternatives: []syntax.Alternative{alt(ident("x"))}},
				&syntax.BlankRun{},
				&syntax.Definition{Header: syntax.Header{Name: "b"}, Alternatives: []syntax.Alternative{alt(ident("y"))}},
			},
		},
		{
			name: "comment line before a pipe leads the next alternative",
			src:  "expr: a   // first\n    // about b\n    | b\n",
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "expr"},
					Alternatives: []syntax.Alternative{
						{Symbols: []syntax.Symbol{ident("a")}, Comment: comment("// first")},
						{Symbols: []syntax.Symbol{ident("b")}, Leading: []syntax.Comment{{Text: "// about b"}}},
					},
				},
			},
		},
		{
			name: "empty first and middle alternatives",
			src:  "start:\n  | a\n  |\n  | b",
			want: []syntax.Statement{
				&syntax.Definition{
					Header:       syntax.Header{Name: "start"},
					Alternatives: []syntax.Alternative{{}, alt(ident("a")), {}, alt(ident("b"))},
				},
			},
		},
		{
			name: "template header with priority",
			src:  "_sep{x, sep}.-1: x (sep x)*",
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "_sep", Params: []string{"x", "sep"}, Priority: "-1"},
					Alternatives: []syntax.Alternative{
						alt(ident("x"), op("("), ident("sep"), ident("x"), op(")"), op("*")),
					},
				},
			},
		},
		{
			name: "terminal with alias-free range and repeat",
			src:  `DIGITS.2: "0".."9" ~ 1..3`,
			want: []syntax.Statement{
				&syntax.Definition{
					Header:   syntax.Header{Name: "DIGITS", Priority: "2"},
					Terminal: true,
					Alternatives: []syntax.Alternative{
						alt(str(`"0"`), op(".."), str(`"9"`), op("~"), num("1"), op(".."), num("3")),
					},
				},
			},
		},
		{
			name: "alias and inner pipes",
			src:  `sum: a ("+" | "-") b -> add`,
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "sum"},
					Alternatives: []syntax.Alternative{{
						Symbols: []syntax.Symbol{ident("a"), op("("), str(`"+"`), op("|"), str(`"-"`), op(")"), ident("b")},
						Alias:   []syntax.Symbol{ident("add")},
					}},
				},
			},
		},
		{
			name: "multi-line parenthesised alternative",
			src:  "list: \"[\" (item\n    (\",\" item)*)? \"]\"",
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "list"},
					Alternatives: []syntax.Alternative{
						alt(str(`"["`), op("("), ident("item"), op("("), str(`","`), ident("item"), op(")"), op("*"), op(")"), op("?"), str(`"]"`)),
					},
				},
			},
		},
		{
			name: "multi-line directive",
			src:  "%import common (\n    WS, // spaces\n    NUMBER\n)\n",
			want: []syntax.Statement{
				&syntax.Directive{
					Keyword: "%import",
					Args:    []syntax.Symbol{ident("common"), op("("), ident("WS"), op(","), ident("NUMBER"), op(")")},
					Inner:   []syntax.InnerComment{{Comment: syntax.Comment{Text: "// spaces"}, At: 4}},
				},
			},
		},
		{
			name: "directive with alias and comment above",
			src:  "# numbers\n%import common.NUMBER -> NUM\n%ignore WS",
			want: []syntax.Statement{
				&syntax.CommentLine{Text: "# numbers"},
				&syntax.Directive{
					Keyword: "%import",
					Args:    []syntax.Symbol{ident("common"), op("."), ident("NUMBER"), op("->"), ident("NUM")},
				},
				&syntax.Directive{Keyword: "%ignore", Args: []syntax.Symbol{ident("WS")}},
			},
		},
		{
			name: "two trailing comments in one alternative keep their order",
			src:  "start: (a // one\n  // two\n  b) // three\n",
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "start"},
					Alternatives: []syntax.Alternative{{
						Symbols: []syntax.Symbol{op("("), ident("a"), ident("b"), op(")")},
						Inner: []syntax.InnerComment{
							{Comment: syntax.Comment{Text: "// one"}, At: 2},
							{Comment: syntax.Comment{Text: "// two"}, At: 2, OwnLine: true},
						},
						Comment: comment("// three"),
					}},
				},
			},
		},
		{
			name: "comment inside a group that spans alternatives",
			src:  "compound: if_stmt\n  | (while_stmt // loops\n  | for_stmt)\n",
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "compound"},
					Alternatives: []syntax.Alternative{
						alt(ident("if_stmt")),
						{
							Symbols: []syntax.Symbol{op("("), ident("while_stmt"), op("|"), ident("for_stmt"), op(")")},
							Inner:   []syntax.InnerComment{{Comment: syntax.Comment{Text: "// loops"}, At: 2}},
						},
					},
				},
			},
		},
		{
			name: "comment before an alias name",
			src:  "a: x -> // why\n  named\n",
			want: []syntax.Statement{
				&syntax.Definition{
					Header: syntax.Header{Name: "a"},
					Alternatives: []syntax.Alternative{{
						Symbols: []syntax.Symbol{ident("x")},
						Alias:   []syntax.Symbol{ident("named")},
						Inner:   []syntax.InnerComment{{Comment: syntax.Comment{Text: "// why"}, At: 2}},
					}},
				},
			},
		},
		{
			name: "empty input",
			src:  "\n\n",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconstruct(t, tt.src)
			if diff := cmp.Diff(tt.want, got, ignorePositions); diff != "" {
				t.Fatalf("statements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrailingComment(t *testing.T) {
	stmts := reconstruct(t, "a: x // one\n | y // two\n")
	def := stmts[0].(*syntax.Definition)
	if c := def.TrailingComment(); c == nil || c.Text != "// two" {
		t.Fatalf("TrailingComment = %+v", c)
	}
}

func TestReconstructPositions(t *testing.T) {
	stmts := reconstruct(t, "\n// c\nrule: a\n   | b\n")
	def := stmts[0].(*syntax.Definition)
	if def.Pos != (token.Pos{Line: 3, Col: 1}) {
		t.Errorf("definition at %+v", def.Pos)
	}
	if got := def.Alternatives[1].Pos; got != (token.Pos{Line: 4, Col: 4}) {
		t.Errorf("second alternative at %+v", got)
	}
	if def.Comments[0].Pos.Line != 2 {
		t.Errorf("attached comment at %+v", def.Comments[0].Pos)
	}
}

func TestReconstructErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		got  string
		line uint32
	}{
		{"dangling pipe at EOF", "start: a |", diag.SynUnterminatedStatement, "EOF", 1},
		{"dangling pipe before comment and EOF", "start: a |\n// trailing\n", diag.SynUnterminatedStatement, "EOF", 3},
		{"unclosed group", "start: (a | b\n", diag.SynUnterminatedStatement, "EOF", 2},
		{"missing alias", "start: a ->", diag.SynUnterminatedStatement, "EOF", 1},
		{"stray closer", "start: a )", diag.SynUnbalancedDelimiter, ")", 1},
		{"mismatched closer", "start: (a]", diag.SynUnbalancedDelimiter, "]", 1},
		{"colon in body", "start: a : b", diag.SynUnexpectedToken, ":", 1},
		{"next definition after dangling pipe", "start: a |\nb: c", diag.SynUnexpectedToken, "b", 2},
		{"symbols on the line after a dangling pipe", "a: x\n | y |\n z", diag.SynUnexpectedToken, "z", 3},
		{"missing name", ": a", diag.SynUnexpectedToken, ":", 1},
		{"literal instead of name", `"x": a`, diag.SynUnexpectedToken, `"x"`, 1},
		{"line without colon", "start: a\nb c", diag.SynUnexpectedToken, "c", 2},
		{"bare name", "start", diag.SynUnexpectedToken, "start", 1},
		{"directive in body", "a: x %ignore y", diag.SynUnexpectedToken, "%ignore", 1},
		{"orphan pipe", "| a", diag.SynUnexpectedToken, "|", 1},
		{"double alias", "a: x -> y -> z", diag.SynUnexpectedToken, "->", 1},
		{"bad priority", "a.b: x", diag.SynUnexpectedToken, ".", 1},
		{"unclosed template", "a{x: y", diag.SynUnbalancedDelimiter, "{", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := syntax.Reconstruct(lexer.Tokenize([]byte(tt.src)))
			if stmts != nil {
				t.Fatalf("partial result returned: %v", stmts)
			}
			var ute *syntax.UnexpectedTokenError
			if !errors.As(err, &ute) {
				t.Fatalf("expected *UnexpectedTokenError, got %v", err)
			}
			if ute.Code() != tt.code {
				t.Errorf("code = %s, want %s (%v)", ute.Code().ID(), tt.code.ID(), err)
			}
			if ute.Got != tt.got {
				t.Errorf("got token %q, want %q", ute.Got, tt.got)
			}
			if ute.Pos.Line != tt.line {
				t.Errorf("line = %d, want %d", ute.Pos.Line, tt.line)
			}
		})
	}
}

func TestReconstructPropagatesLexErrors(t *testing.T) {
	_, err := syntax.Reconstruct(lexer.Tokenize([]byte("start: \"abc\n")))
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *lexer.LexError, got %v", err)
	}
}

func TestStatementsPartitionTokens(t *testing.T) {
	src := "// lead\nstart: a b // x\n  | c -> d\n  | (e // in\n  // own\n  | f)\n\n%import common (WS, // ws\n  NUMBER) // end\n"
	stmts := reconstruct(t, src)
	toks, err := lexer.Collect(lexer.Tokenize([]byte(src)))
	if err != nil {
		t.Fatal(err)
	}
	var want []string
	for _, tok := range toks {
		if tok.Kind.IsTrivia() && tok.Kind != token.Comment || tok.Kind == token.EOF {
			continue
		}
		want = append(want, tok.Text)
	}

	var got []string
	// symbols interleaved with the inner comments that point between them
	withInner := func(syms []syntax.Symbol, inner []syntax.InnerComment) {
		k := 0
		for i, sym := range syms {
			for ; k < len(inner) && inner[k].At == i; k++ {
				got = append(got, inner[k].Text)
			}
			got = append(got, sym.Text)
		}
		for ; k < len(inner); k++ {
			got = append(got, inner[k].Text)
		}
	}
	for _, st := range stmts {
		switch s := st.(type) {
		case *syntax.Definition:
			for _, c := range s.Comments {
				got = append(got, c.Text)
			}
			got = append(got, s.Header.Name, ":")
			for i, a := range s.Alternatives {
				for _, c := range a.Leading {
					got = append(got, c.Text)
				}
				if i > 0 {
					got = append(got, "|")
				}
				syms := a.Symbols
				if len(a.Alias) > 0 {
					syms = append(append(append([]syntax.Symbol(nil), syms...), op("->")), a.Alias...)
				}
				withInner(syms, a.Inner)
				if a.Comment != nil {
					got = append(got, a.Comment.Text)
				}
			}
		case *syntax.Directive:
			got = append(got, s.Keyword)
			withInner(s.Args, s.Inner)
			if s.Comment != nil {
				got = append(got, s.Comment.Text)
			}
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("statements do not partition the tokens (-want +got):\n%s", diff)
	}
}
