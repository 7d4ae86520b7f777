package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexInvalidChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedRegexp Code = 1003

	// Statement reconstruction
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnterminatedStatement Code = 2002
	SynUnbalancedDelimiter   Code = 2003

	// Style
	StyInfo         Code = 3000
	StyLineOverflow Code = 3001

	// Formatter self-checks
	FmtInfo          Code = 4000
	FmtContentChange Code = 4001
	FmtNotIdempotent Code = 4002

	// I/O
	IOInfo          Code = 5000
	IOLoadFileError Code = 5001
	IOConfigError   Code = 5002

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:              "Unknown error",
		LexInfo:                  "Lexical information",
		LexInvalidChar:           "Invalid character",
		LexUnterminatedString:    "Unterminated string literal",
		LexUnterminatedRegexp:    "Unterminated regular expression",
		SynInfo:                  "Syntax information",
		SynUnexpectedToken:       "Unexpected token",
		SynUnterminatedStatement: "Unterminated statement",
		SynUnbalancedDelimiter:   "Unbalanced delimiter",
		StyInfo:                  "Style information",
		StyLineOverflow:          "Line exceeds configured width",
		FmtInfo:                  "Formatter information",
		FmtContentChange:         "Formatting changed grammar content",
		FmtNotIdempotent:         "Formatting is not idempotent",
		IOInfo:                   "I/O information",
		IOLoadFileError:          "I/O load file error",
		IOConfigError:            "Invalid style configuration",
		ObsInfo:                  "Observability information",
		ObsTimings:               "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
