package lexer

import (
	"larkfmt/internal/source"
)

type Options struct {
	// Filename is used in participle positions only.
	Filename string
	// File is stamped into every token span so diagnostics can resolve it.
	File source.FileID
}
