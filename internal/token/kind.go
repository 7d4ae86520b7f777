package token

// Kind represents the category of a grammar token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident is a rule or terminal name, optionally prefixed with ?, ! or _.
	Ident
	// String is a quoted literal with an optional trailing i flag.
	String
	// Regexp is a /pattern/flags literal.
	Regexp
	// Number is a priority or repeat count.
	Number
	// Op is a punctuation operator: : | ( ) [ ] { } , . .. ~ * + ? ! ->
	Op
	// Comment runs from // or # to the end of the line.
	Comment
	// Newline is a single line break.
	Newline
	// Whitespace is a run of blanks and tabs.
	Whitespace
	// DirectiveKw is a %keyword such as %import or %ignore.
	DirectiveKw
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	String:      "String",
	Regexp:      "Regexp",
	Number:      "Number",
	Op:          "Op",
	Comment:     "Comment",
	Newline:     "Newline",
	Whitespace:  "Whitespace",
	DirectiveKw: "DirectiveKw",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsTrivia reports whether tokens of this kind carry no grammar content.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Newline || k == Comment
}
