package diag

import (
	"errors"
	"strings"

	"larkfmt/internal/source"
)

// Severity orders diagnostics; higher is more severe.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Label is the lower-case name used in short output.
func (s Severity) Label() string {
	return strings.ToLower(s.String())
}

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Error is implemented by every positioned pipeline error (lexer, reconstructor,
// content verification). Offsets are byte offsets in the input the error refers to.
type Error interface {
	error
	Code() Code
	Message() string
	Offsets() (start, end uint32)
}

// FromError converts a pipeline error found anywhere in err's chain into an
// error diagnostic located in file. ok is false when err carries no position.
func FromError(err error, file source.FileID) (d Diagnostic, ok bool) {
	var pe Error
	if !errors.As(err, &pe) {
		return Diagnostic{}, false
	}
	start, end := pe.Offsets()
	return NewError(pe.Code(), source.Span{File: file, Start: start, End: end}, pe.Message()), true
}
