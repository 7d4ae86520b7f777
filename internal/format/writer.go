package format

import (
	"bytes"

	"larkfmt/internal/layout"
)

// Writer accumulates formatted output and tracks the display column of the
// current line so text can be padded to alignment columns.
type Writer struct {
	buf  []byte
	col  int
	line int // 1-based number of the current line
}

// NewWriter creates a writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint), line: 1}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Column is the display width written on the current line so far.
func (w *Writer) Column() int {
	return w.col
}

// Line is the 1-based number of the line being written.
func (w *Writer) Line() int {
	return w.line
}

// WriteString writes s, which must not contain a line break.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.buf = append(w.buf, s...)
	w.col += layout.TextWidth(s)
}

// PadTo writes spaces until the current column reaches col.
func (w *Writer) PadTo(col int) {
	for w.col < col {
		w.buf = append(w.buf, ' ')
		w.col++
	}
}

// Space writes a single space unless the line is empty or already ends with one.
func (w *Writer) Space() {
	if w.col == 0 {
		return
	}
	if last := w.buf[len(w.buf)-1]; last == ' ' || last == '\t' {
		return
	}
	w.buf = append(w.buf, ' ')
	w.col++
}

// EndLine drops trailing blanks from the current line and terminates it.
func (w *Writer) EndLine() {
	trimmed := bytes.TrimRight(w.buf, " \t")
	w.buf = append(trimmed, '\n')
	w.col = 0
	w.line++
}
