package driver

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"larkfmt/internal/source"
)

// GrammarExt is the extension collected when walking directories.
const GrammarExt = ".lark"

// IsStdin reports whether path names standard input.
func IsStdin(path string) bool {
	return path == "" || path == "-"
}

// LoadInput adds path, or stdin when IsStdin(path), to fileSet.
func LoadInput(fileSet *source.FileSet, path string, stdin io.Reader) (source.FileID, error) {
	if IsStdin(path) {
		if stdin == nil {
			stdin = os.Stdin
		}
		return fileSet.LoadReader(source.StdinName, stdin)
	}
	id, err := fileSet.Load(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return id, nil
}

// CollectGrammarFiles expands paths: directories are walked for *.lark files
// (in lexical order), other paths are kept as given. Duplicates are dropped
// and the order of the arguments is preserved.
func CollectGrammarFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		key := filepath.Clean(path)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if IsStdin(p) {
			add(p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == GrammarExt {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
