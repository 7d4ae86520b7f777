package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("grammar.lark", []byte("start: a"), 0)
	id2 := fs.Add("grammar.lark", []byte("start: b"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids %d, %d", id1, id2)
	}

	latest, ok := fs.GetLatest("grammar.lark")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "start: a" {
		t.Errorf("first version lost: %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d", fs.Len())
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.lark")
	raw := []byte{0xEF, 0xBB, 0xBF}
	raw = append(raw, []byte("start: a\r\n     | b\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got := string(f.Content); got != "start: a\n     | b\n" {
		t.Fatalf("content = %q", got)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b", f.Flags)
	}
}

func TestLoadReaderIsVirtual(t *testing.T) {
	fs := NewFileSet()
	id, err := fs.LoadReader(StdinName, strings.NewReader("a\r\nb"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	f := fs.Get(id)
	if f.Path != StdinName {
		t.Errorf("path = %q", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("stdin input must be virtual")
	}
	if string(f.Content) != "a\nb" {
		t.Errorf("content = %q", f.Content)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.lark", []byte("α\nab\n\nc"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}}, // inside the two-byte rune
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("t.lark", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
	if f.LineCount() != 3 {
		t.Errorf("LineCount = %d", f.LineCount())
	}
}

func TestDisplayPath(t *testing.T) {
	base := t.TempDir()
	fs := NewFileSet()
	inside := fs.Get(fs.Add(filepath.Join(base, "sub", "g.lark"), nil, 0))
	if got := inside.DisplayPath(base); got != "sub/g.lark" {
		t.Errorf("inside = %q", got)
	}
	outside := fs.Get(fs.Add(filepath.Join(filepath.Dir(base), "other.lark"), nil, 0))
	if got := outside.DisplayPath(base); got != outside.Path {
		t.Errorf("outside = %q", got)
	}
	stdin := fs.Get(fs.AddVirtual(StdinName, nil))
	if got := stdin.DisplayPath(base); got != StdinName {
		t.Errorf("stdin = %q", got)
	}
}

func TestOffsetInvertsResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.lark", []byte("a: b\n  | c\n"))
	f := fs.Get(id)
	for off := uint32(0); off <= uint32(len(f.Content)); off++ {
		lc, _ := fs.Resolve(Span{File: id, Start: off, End: off})
		if got := f.Offset(lc); got != off {
			t.Fatalf("Offset(%+v) = %d, want %d", lc, got, off)
		}
	}
}
