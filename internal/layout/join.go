package layout

import (
	"strings"

	"larkfmt/internal/syntax"
	"larkfmt/internal/token"
)

// Join renders symbols with the canonical spacing policy:
//
//   - no space after ( [ { and none before ) ] } , :
//   - no space around . and .. (except after a directive keyword)
//   - no space before postfix * + ?
//   - a template's { hugs its name
//   - exactly one space everywhere else, including around -> ~ and inner |
func Join(syms []syntax.Symbol) string {
	var b strings.Builder
	for i, sym := range syms {
		if i > 0 && needSpace(syms[i-1], sym) {
			b.WriteByte(' ')
		}
		b.WriteString(sym.Text)
	}
	return b.String()
}

func needSpace(prev, cur syntax.Symbol) bool {
	switch {
	case isOp(cur, ")", "]", "}", ",", ":"):
		return false
	case isOp(prev, "(", "[", "{"):
		return false
	case isOp(cur, "{") && prev.Kind == token.Ident:
		return false
	case isOp(cur, ".", ".."):
		return prev.Kind == token.DirectiveKw
	case isOp(prev, ".", ".."):
		return false
	case isOp(cur, "*", "+", "?"):
		return false
	}
	return true
}

func isOp(sym syntax.Symbol, ops ...string) bool {
	if sym.Kind != token.Op {
		return false
	}
	for _, op := range ops {
		if sym.Text == op {
			return true
		}
	}
	return false
}

// RenderHeader renders a definition header: name, template parameters and priority.
func RenderHeader(h syntax.Header) string {
	var b strings.Builder
	b.WriteString(h.Name)
	if len(h.Params) > 0 {
		b.WriteByte('{')
		b.WriteString(strings.Join(h.Params, ", "))
		b.WriteByte('}')
	}
	if h.Priority != "" {
		b.WriteByte('.')
		b.WriteString(h.Priority)
	}
	return b.String()
}
