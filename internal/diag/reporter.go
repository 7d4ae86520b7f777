package diag

import "larkfmt/internal/source"

// Reporter receives diagnostics as the pipeline finds them.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter collects into a Bag; reports past the bag's limit are dropped.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// ReportBuilder gathers notes for one diagnostic before it is reported.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// ReportError starts an error diagnostic for r.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: NewError(code, primary, msg)}
}

// ReportWarning starts a warning diagnostic for r.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: NewWarning(code, primary, msg)}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	b.diag = b.diag.WithNote(sp, msg)
	return b
}

// Emit reports the diagnostic; later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b.emitted || b.reporter == nil {
		return
	}
	b.reporter.Report(b.diag)
	b.emitted = true
}
