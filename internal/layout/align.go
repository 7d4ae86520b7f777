package layout

import (
	"slices"

	"larkfmt/internal/config"
)

// Block is a maximal run of adjacent definition records, [Start, End).
type Block struct {
	Start, End int
}

// Blocks partitions records into alignment blocks. Blank runs, directives and
// floating comments end a block.
func Blocks(records []Record) []Block {
	var out []Block
	start := -1
	for i := range records {
		if records[i].Kind == KindDefinition {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, Block{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, Block{Start: start, End: len(records)})
	}
	return out
}

// Align returns a copy of records with Columns filled in.
func Align(records []Record, style config.Style) []Record {
	out := slices.Clone(records)
	for _, b := range Blocks(out) {
		cols := blockColumns(out[b.Start:b.End], style)
		for i := b.Start; i < b.End; i++ {
			out[i].Columns = cols
		}
	}
	for i := range out {
		if out[i].Kind != KindDirective {
			continue
		}
		width := 0
		for _, line := range out[i].Alternatives {
			width = max(width, line.Width)
			for _, seg := range line.Wrapped {
				width = max(width, ContinuationIndent+seg.Width)
			}
		}
		out[i].Columns = Columns{Comment: capComment(width+style.CommentGap, style)}
	}
	return out
}

func blockColumns(block []Record, style config.Style) Columns {
	headerWidth := 0
	for i := range block {
		headerWidth = max(headerWidth, block[i].HeaderWidth)
	}
	cols := Columns{Colon: headerWidth + style.ColonPad}
	cols.Body = cols.Colon + 1 + style.BodyGap

	widest := 0
	for i := range block {
		for _, line := range block[i].Alternatives {
			widest = max(widest, LineEnd(line, cols))
			for _, seg := range line.Wrapped {
				widest = max(widest, cols.Body+seg.Width)
			}
		}
	}
	cols.Comment = capComment(widest+style.CommentGap, style)
	return cols
}

// LineEnd is the display column just past the last character of line
// once it is placed on cols.
func LineEnd(line Line, cols Columns) int {
	if line.Text == "" {
		return cols.Colon + 1
	}
	return cols.Body + line.Width
}

func capComment(col int, style config.Style) int {
	if style.MaxCommentColumn > 0 && col > style.MaxCommentColumn {
		return style.MaxCommentColumn
	}
	return col
}
