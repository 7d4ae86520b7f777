package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the style file looked up next to grammars and in their parents.
const FileName = ".larkfmt.toml"

type fileConfig struct {
	Style Style `toml:"style"`
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFile decodes path on top of base. Unknown keys are rejected.
func LoadFile(path string, base Style) (Style, error) {
	cfg := fileConfig{Style: base}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Style{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Style{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Style.Validate(); err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.Style, nil
}

// Resolve returns the style for grammars under startDir: explicit, when set,
// names the file to use; otherwise FileName is searched upward. The second
// result is the file that was used, or "" for the defaults.
func Resolve(startDir, explicit string) (Style, string, error) {
	path := explicit
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Style{}, "", err
		}
		if !ok {
			return DefaultStyle(), "", nil
		}
		path = found
	}
	style, err := LoadFile(path, DefaultStyle())
	if err != nil {
		return Style{}, "", err
	}
	return style, path, nil
}
