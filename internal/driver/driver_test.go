package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"larkfmt/internal/config"
	"larkfmt/internal/diag"
	"larkfmt/internal/source"
	"larkfmt/internal/syntax"
	"larkfmt/internal/trace"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFormatInputStdin(t *testing.T) {
	res := FormatInput(context.Background(), "-", strings.NewReader("a :x\n"), Options{Verify: true})
	if res.Failed() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Path != source.StdinName {
		t.Fatalf("path = %q", res.Path)
	}
	if string(res.Output) != "a: x\n" {
		t.Fatalf("output = %q", res.Output)
	}
}

func TestFormatInputMissingFile(t *testing.T) {
	res := FormatInput(context.Background(), filepath.Join(t.TempDir(), "nope.lark"), nil, Options{})
	if !res.Failed() || res.Loaded {
		t.Fatalf("want a load failure, got %+v", res)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError || items[0].Primary.File != source.NoFile {
		t.Fatalf("diagnostics = %+v", items)
	}
}

func TestFormatInputSyntaxError(t *testing.T) {
	res := FormatInput(context.Background(), "-", strings.NewReader("start: a |"), Options{})
	var se *syntax.UnexpectedTokenError
	if !errors.As(res.Err, &se) {
		t.Fatalf("want *syntax.UnexpectedTokenError in chain, got %v", res.Err)
	}
	if res.Output != nil {
		t.Fatal("no output expected on error")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnterminatedStatement || items[0].Primary.File != res.File {
		t.Fatalf("diagnostics = %+v", items)
	}
}

func TestFormatInputStyleDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), "[style]\ncolon_pad = 2\n")
	writeFile(t, filepath.Join(dir, "sub", "g.lark"), "a: x\n")

	res := FormatInput(context.Background(), filepath.Join(dir, "sub", "g.lark"), nil, Options{})
	if res.Failed() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if string(res.Output) != "a  : x\n" {
		t.Fatalf("output = %q", res.Output)
	}

	override := Options{Override: func(s *config.Style) { s.ColonPad, s.BodyGap = 0, 3 }}
	res = FormatInput(context.Background(), filepath.Join(dir, "sub", "g.lark"), nil, override)
	if string(res.Output) != "a:   x\n" {
		t.Fatalf("override output = %q", res.Output)
	}
}

func TestFormatInputBadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), "[style]\nbody_gap = 0\n")
	writeFile(t, filepath.Join(dir, "g.lark"), "a: x\n")

	res := FormatInput(context.Background(), filepath.Join(dir, "g.lark"), nil, Options{})
	if !res.Failed() {
		t.Fatal("expected a config error")
	}
	if items := res.Bag.Items(); len(items) != 1 || items[0].Code != diag.IOConfigError {
		t.Fatalf("diagnostics = %+v", items)
	}
}

func TestFormatInputLineWidthWarning(t *testing.T) {
	opts := Options{Override: func(s *config.Style) { s.LineWidth = 8 }}
	res := FormatInput(context.Background(), "-", strings.NewReader("a: x\nstart: aaaa bbbb\n"), opts)
	if res.Failed() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.StyLineOverflow || items[0].Severity != diag.SevWarning {
		t.Fatalf("diagnostics = %+v", items)
	}
	start, _ := res.FileSet.Resolve(items[0].Primary)
	if start.Line != 2 {
		t.Fatalf("warning at line %d, want 2", start.Line)
	}
}

func TestFormatInputTimingsAndTrace(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	res := FormatInput(ctx, "-", strings.NewReader("a: x\n"), Options{Verify: true})
	if res.Failed() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	var names []string
	for _, p := range res.Timer.Report().Phases {
		names = append(names, p.Name)
	}
	want := []string{"reconstruct", "build", "align", "emit", "verify"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("phases (-want +got):\n%s", diff)
	}
	for _, s := range []string{"→ format", "← reconstruct", "← format"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("trace misses %q:\n%s", s, buf.String())
		}
	}
}

func TestCollectGrammarFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.lark", "a.lark", "sub/c.lark", "notes.txt", ".hidden/d.lark"} {
		writeFile(t, filepath.Join(dir, name), "a: x\n")
	}
	extra := filepath.Join(dir, "notes.txt")

	got, err := CollectGrammarFiles(context.Background(), []string{dir, extra, dir, "-"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.lark"),
		filepath.Join(dir, "b.lark"),
		filepath.Join(dir, "sub", "c.lark"),
		extra,
		"-",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}

	if _, err := CollectGrammarFiles(context.Background(), []string{filepath.Join(dir, "missing")}); err == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func TestCheckPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.lark"), "a: x\n")
	writeFile(t, filepath.Join(dir, "b.lark"), "start: a |\n")
	writeFile(t, filepath.Join(dir, "c.lark"), "c :  y   // note\n")

	results, err := CheckPaths(context.Background(), []string{dir}, nil, Options{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("want 3 results, got %d", len(results))
	}
	for i, name := range []string{"a.lark", "b.lark", "c.lark"} {
		if filepath.Base(results[i].Path) != name {
			t.Fatalf("result %d is %s, want %s", i, results[i].Path, name)
		}
	}
	if !results[0].Stable() || !results[2].Stable() {
		t.Fatal("a.lark and c.lark should be stable")
	}
	if !results[1].Failed() || results[1].Stable() {
		t.Fatal("b.lark should fail")
	}
	if results[0].FileSet != results[2].FileSet {
		t.Fatal("inputs should share one file set")
	}
}

func TestCheckPathsCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.lark"), "a: x\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CheckPaths(ctx, []string{dir}, nil, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestTokenize(t *testing.T) {
	res := Tokenize(context.Background(), "-", strings.NewReader("a: b"), Options{})
	if res.Failed() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Tokens) != 5 {
		t.Fatalf("want 5 tokens, got %d", len(res.Tokens))
	}

	res = Tokenize(context.Background(), "-", strings.NewReader("a: b @"), Options{})
	if !res.Failed() || len(res.Tokens) != 5 {
		t.Fatalf("want a lexer error after 5 tokens, got %d tokens, err %v", len(res.Tokens), res.Err)
	}
	if items := res.Bag.Items(); len(items) != 1 || items[0].Code != diag.LexInvalidChar {
		t.Fatalf("diagnostics = %+v", items)
	}
}
