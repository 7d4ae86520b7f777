package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

const maxFuzzInput = 1 << 16 // 64 KiB

var builtinSeeds = []string{
	"",
	"start: a\n",
	"start: a\n  | b   // c\n",
	"?expr{x}: x \"+\" x -> add\n     | NUMBER\n",
	"%import common.WS\n%ignore WS\n",
	"STRING: /\"[^\"]*\"/i\nNUMBER.2: /[0-9]+/\n",
	"// floating\n\n# hash comment\nstart: (a | b)* [c]\n",
	"start: a\r\n  | b\r\n",
	"start:\n  | \"x\" ~ 2..3\n",
	"compound: if_stmt\n | (while_stmt // loops\n | for_stmt)\n",
	"a: (x\n // c\n | y)\n",
	"a: x -> // why\n  named\n",
	"%import common (WS, // ws\n NUMBER) // digits\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every .lark file under the formatter's testdata.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "format", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".lark" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
