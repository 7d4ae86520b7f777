package format

import (
	"bytes"
	"fmt"
)

// Report describes the result of an idempotence check.
type Report struct {
	Stable bool
	First  []byte // output of the first pass
	Second []byte // output of formatting First again
	Line   int    // 1-based first differing line, 0 when stable
	Want   string // the line in First
	Got    string // the line in Second
}

// Check formats src, formats the result again and reports whether both
// outputs are byte-identical.
func Check(src []byte, opts Options) (bool, error) {
	rep, err := CheckReport(src, opts)
	if err != nil {
		return false, err
	}
	return rep.Stable, nil
}

// CheckReport is Check with the first differing line.
func CheckReport(src []byte, opts Options) (*Report, error) {
	first, err := Format(src, opts)
	if err != nil {
		return nil, err
	}
	// the observer already saw the first pass
	again := opts
	again.Observer = nil
	second, err := Format(first.Output, again)
	if err != nil {
		return nil, fmt.Errorf("reformatting output: %w", err)
	}
	rep := &Report{First: first.Output, Second: second.Output}
	if bytes.Equal(first.Output, second.Output) {
		rep.Stable = true
		return rep, nil
	}
	rep.Line, rep.Want, rep.Got = firstDiff(first.Output, second.Output)
	return rep, nil
}

func firstDiff(a, b []byte) (line int, want, got string) {
	al := bytes.Split(a, []byte("\n"))
	bl := bytes.Split(b, []byte("\n"))
	for i := 0; i < max(len(al), len(bl)); i++ {
		var x, y []byte
		if i < len(al) {
			x = al[i]
		}
		if i < len(bl) {
			y = bl[i]
		}
		if i >= len(al) || i >= len(bl) || !bytes.Equal(x, y) {
			return i + 1, string(x), string(y)
		}
	}
	return 0, "", ""
}
