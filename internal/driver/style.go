package driver

import (
	"os"
	"path/filepath"
	"sync"

	"larkfmt/internal/config"
)

type styleResult struct {
	style config.Style
	path  string
	err   error
}

// styleCache resolves the style once per directory.
type styleCache struct {
	opts Options
	mu   sync.Mutex
	dirs map[string]styleResult
}

func newStyleCache(opts Options) *styleCache {
	return &styleCache{opts: opts, dirs: make(map[string]styleResult)}
}

// forInput returns the style for the input at path. It also reports the
// config file used, "" for built-in defaults.
func (c *styleCache) forInput(path string) (config.Style, string, error) {
	dir := "."
	if !IsStdin(path) {
		dir = filepath.Dir(path)
	} else if wd, err := os.Getwd(); err == nil {
		dir = wd
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.dirs[dir]; ok {
		return r.style, r.path, r.err
	}
	style, used, err := config.Resolve(dir, c.opts.ConfigPath)
	if err == nil && c.opts.Override != nil {
		c.opts.Override(&style)
		err = style.Validate()
	}
	c.dirs[dir] = styleResult{style: style, path: used, err: err}
	return style, used, err
}
