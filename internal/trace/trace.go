// Package trace provides the observational trace channel for the moji
// interpreter. Trace events describe interpreter decisions (resolution
// chains, concatenation parts, function creation, conditional results,
// invocations) and never affect program semantics.
package trace

import (
	"fmt"
	"io"
	"sync"
)

// Kind classifies a trace event.
type Kind int

const (
	Resolve Kind = iota
	Concat
	FnCreate
	Cond
	Call
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Resolve:
		return "resolve"
	case Concat:
		return "concat"
	case FnCreate:
		return "fn"
	case Cond:
		return "cond"
	case Call:
		return "call"
	}
	return "unknown"
}

// Event is a single trace record.
type Event struct {
	Kind Kind
	Msg  string
}

// Tracer receives trace events.
type Tracer interface {
	Emit(kind Kind, format string, args ...any)
}

// Nop discards all events.
type Nop struct{}

// Emit discards the event.
func (Nop) Emit(Kind, string, ...any) {}

// Writer writes one line per event to an io.Writer.
type Writer struct {
	W io.Writer
}

// Emit writes the event as "[kind] message".
func (t Writer) Emit(kind Kind, format string, args ...any) {
	fmt.Fprintf(t.W, "[%s] %s\n", kind, fmt.Sprintf(format, args...))
}

// Memory records events in order, for testing.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

// NewMemory creates a new in-memory trace recorder.
func NewMemory() *Memory {
	return &Memory{}
}

// Emit appends the event.
func (m *Memory) Emit(kind Kind, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, Event{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

// Events returns a copy of the recorded events.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Multi fans events out to several tracers.
type Multi []Tracer

// Emit forwards the event to every tracer.
func (m Multi) Emit(kind Kind, format string, args ...any) {
	for _, t := range m {
		t.Emit(kind, format, args...)
	}
}
