// Package moji provides the public API for the moji interpreter.
package moji

import (
	"io"

	"nickandperla.net/moji/internal/eval"
	"nickandperla.net/moji/internal/trace"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithOutput sets the io.Writer for 🗣️ output.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		r.outputWriter = func(text string) error {
			_, err := w.Write([]byte(text))
			return err
		}
	}
}

// WithOutputWriter sets the output writer for 🗣️ statements.
func WithOutputWriter(writer func(text string) error) Option {
	return func(r *Runtime) {
		r.outputWriter = writer
	}
}

// WithTracer adds a trace sink.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runtime) {
		r.tracers = append(r.tracers, t)
	}
}

// WithTraceWriter adds a trace sink that writes one line per event to w.
func WithTraceWriter(w io.Writer) Option {
	return func(r *Runtime) {
		r.tracers = append(r.tracers, trace.Writer{W: w})
	}
}

// WithSQLiteTrace adds a SQLite trace log at the given path.
func WithSQLiteTrace(path string) Option {
	return func(r *Runtime) {
		s, err := trace.NewSQLite(path)
		if err == nil {
			r.tracers = append(r.tracers, s)
			r.closers = append(r.closers, s)
		}
	}
}

// Tracer is the interface trace sinks implement.
type Tracer = trace.Tracer

// OutputWriter writes 🗣️ output.
type OutputWriter = eval.OutputWriter
