package driver

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"larkfmt/internal/diag"
	"larkfmt/internal/lexer"
	"larkfmt/internal/source"
	"larkfmt/internal/token"
	"larkfmt/internal/trace"
)

// TokenizeResult holds the token dump of one input.
type TokenizeResult struct {
	*Result
	Tokens []token.Token
}

// Tokenize lexes one input. On a lexer error Tokens holds what was scanned
// before it.
func Tokenize(ctx context.Context, path string, stdin io.Reader, opts Options) *TokenizeResult {
	fileSet := source.NewFileSet()
	res := &TokenizeResult{Result: newResult(path, fileSet, opts)}
	id, err := LoadInput(fileSet, path, stdin)
	if err != nil {
		res.fail(err, diag.IOLoadFileError)
		return res
	}
	res.File, res.Loaded = id, true

	_, span := trace.StartSpan(ctx, trace.ScopeFile, "tokenize")
	defer span.End(res.Path)

	lx := opts.Lexer
	if lx == nil {
		lx = lexer.New(lexer.Options{Filename: res.Path, File: id})
	}
	idx := res.Timer.Begin("lex")
	res.Tokens, err = lexer.Collect(lx.Tokenize(fileSet.Get(id).Content))
	res.Timer.End(idx, strconv.Itoa(len(res.Tokens))+" tokens")
	if err != nil {
		res.fail(fmt.Errorf("tokenize %s: %w", res.Path, err), diag.LexInfo)
	}
	return res
}
