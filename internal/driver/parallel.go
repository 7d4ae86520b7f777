package driver

import (
	"context"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"larkfmt/internal/diag"
	"larkfmt/internal/source"
	"larkfmt/internal/trace"
)

// CheckPaths runs the idempotence check on every grammar named by paths
// (see CollectGrammarFiles). Inputs are loaded up front into one FileSet and
// checked concurrently, at most opts.Jobs at a time. Results are in input
// order. Per-file failures are reported in the results; the error is only
// for collection failures and cancellation.
func CheckPaths(ctx context.Context, paths []string, stdin io.Reader, opts Options) ([]*Result, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "check")
	defer span.End("")

	files, err := CollectGrammarFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	span.WithExtra("files", strconv.Itoa(len(files)))
	if len(files) == 0 {
		return nil, nil
	}

	fileSet := source.NewFileSet()
	results := make([]*Result, len(files))
	for i, path := range files {
		res := newResult(path, fileSet, opts)
		id, err := LoadInput(fileSet, path, stdin)
		if err != nil {
			res.fail(err, diag.IOLoadFileError)
		} else {
			res.File, res.Loaded = id, true
		}
		results[i] = res
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	styles := newStyleCache(opts)

	// the FileSet is only read from here on; each goroutine owns results[i]
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for _, res := range results {
		if !res.Loaded {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run(gctx, res, styles, opts, modeCheck)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
