package moji

import (
	"io"
	"os"

	"nickandperla.net/moji/internal/eval"
	"nickandperla.net/moji/internal/trace"
)

// Runtime is the moji interpreter runtime. The root environment persists
// across Run calls, so hosts (the REPL in particular) can feed source
// incrementally.
type Runtime struct {
	interp       *eval.Interpreter
	env          *eval.Env
	outputWriter eval.OutputWriter
	tracers      []trace.Tracer
	closers      []io.Closer
}

// New creates a new moji runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}

	evalOpts := []eval.Option{}
	if r.outputWriter != nil {
		evalOpts = append(evalOpts, eval.WithOutputWriter(r.outputWriter))
	}
	switch len(r.tracers) {
	case 0:
	case 1:
		evalOpts = append(evalOpts, eval.WithTracer(r.tracers[0]))
	default:
		evalOpts = append(evalOpts, eval.WithTracer(trace.Multi(r.tracers)))
	}

	r.interp = eval.New(evalOpts...)
	r.env = eval.NewEnv()
	return r
}

// Run preprocesses and executes moji source against the root environment.
func (r *Runtime) Run(src string) error {
	return r.interp.Run(PrepareSource(src), r.env)
}

// RunReader executes moji source from a reader.
func (r *Runtime) RunReader(reader io.Reader) error {
	src, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	return r.Run(string(src))
}

// RunFile executes a moji file.
func (r *Runtime) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.RunReader(f)
}

// Close releases resources held by trace sinks.
func (r *Runtime) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
