package format

import "time"

// PhaseStatus reports whether a pipeline stage started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a stage boundary. Elapsed is set on PhaseEnd.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives stage events emitted during Format.
type PhaseObserver func(PhaseEvent)

// Stage names reported to a PhaseObserver.
const (
	PhaseReconstruct = "reconstruct"
	PhaseBuild       = "build"
	PhaseAlign       = "align"
	PhaseEmit        = "emit"
	PhaseVerify      = "verify"
)

func (o PhaseObserver) begin(name string) time.Time {
	if o != nil {
		o(PhaseEvent{Name: name, Status: PhaseStart})
	}
	return time.Now()
}

func (o PhaseObserver) end(name string, started time.Time) {
	if o != nil {
		o(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(started)})
	}
}
