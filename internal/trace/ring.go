package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the last N events in memory (circular buffer) and writes
// them to its output only on Dump.
type RingTracer struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
	level    Level
	w        io.Writer
	format   Format
}

// NewRingTracer creates a RingTracer with the given capacity; w may be nil.
func NewRingTracer(capacity int, level Level, w io.Writer, format Format) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{
		events:   make([]Event, capacity),
		capacity: capacity,
		level:    level,
		w:        w,
		format:   format,
	}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.events[t.head] = *ev
	t.head = (t.head + 1) % t.capacity
	if t.head == 0 {
		t.full = true
	}
}

// Snapshot returns a copy of the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.full {
		result := make([]Event, t.head)
		copy(result, t.events[:t.head])
		return result
	}
	result := make([]Event, t.capacity)
	copy(result, t.events[t.head:])
	copy(result[t.capacity-t.head:], t.events[:t.head])
	return result
}

// Dump writes the stored events to the tracer's output.
func (t *RingTracer) Dump() error {
	if t.w == nil {
		return nil
	}
	return t.DumpTo(t.w, t.format)
}

// DumpTo writes the stored events to w.
func (t *RingTracer) DumpTo(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }

// Close closes the output if it implements io.Closer.
func (t *RingTracer) Close() error {
	if closer, ok := t.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }

// DumpOnFailure writes a RingTracer's events; other tracers already wrote
// theirs.
func DumpOnFailure(t Tracer) error {
	if r, ok := t.(*RingTracer); ok {
		return r.Dump()
	}
	return nil
}
