package eval

import (
	"fmt"
	"strings"

	"nickandperla.net/moji/internal/scanner"
	"nickandperla.net/moji/internal/token"
	"nickandperla.net/moji/internal/trace"
	"nickandperla.net/moji/internal/value"
)

// OutputWriter writes output (for 🗣️ statements).
type OutputWriter func(text string) error

// Interpreter executes moji statement lines.
type Interpreter struct {
	outputWriter OutputWriter
	tracer       trace.Tracer
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutputWriter sets the output writer for 🗣️ statements.
func WithOutputWriter(w OutputWriter) Option {
	return func(it *Interpreter) { it.outputWriter = w }
}

// WithTracer sets the trace sink.
func WithTracer(t trace.Tracer) Option {
	return func(it *Interpreter) { it.tracer = t }
}

// New creates a new Interpreter with the given options.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		tracer: trace.Nop{},
		outputWriter: func(text string) error {
			fmt.Print(text)
			return nil
		},
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Run executes statement lines in order against env. Every error is fatal:
// the run stops at the first failing line.
func (it *Interpreter) Run(lines []string, env *Env) error {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		node := ParseLine(line)
		if node == nil {
			if err := it.call(line, env); err != nil {
				return err
			}
			continue
		}
		if err := it.exec(node, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) exec(node *Node, env *Env) error {
	switch node.Sym {
	case token.ASSIGN:
		return it.execAssign(node, env)
	case token.PRINT:
		return it.execPrint(node, env)
	case token.COND:
		return it.execCond(node, env)
	}
	// A leading ▶️, 🟰, ➕, 🔧 or 🫷 forms no statement on its own.
	return fmt.Errorf("%w: unexpected %s", ErrUnresolvedStatement, node.Token)
}

// execAssign binds a name. A value that parses as a function literal binds
// a Function; anything else binds the concatenation-parsed Text.
func (it *Interpreter) execAssign(node *Node, env *Env) error {
	name, raw := node.Args[0], node.Args[1]
	if name == "" || raw == "" {
		return nil
	}
	fn, err := it.createFn(raw)
	if err != nil {
		return err
	}
	if fn != nil {
		env.Assign(name, *fn)
		return nil
	}
	env.Assign(name, value.Text{S: it.concat(raw, env)})
	return nil
}

// execPrint writes the resolved expression as one line.
func (it *Interpreter) execPrint(node *Node, env *Env) error {
	text := it.concat(strings.Join(node.Args, ""), env)
	return it.outputWriter(text + "\n")
}

// execCond evaluates a ❓ statement: condition before ▶️, body after. Both
// sides of 🟰 go through concatenation parsing; on equality the body runs
// as a zero-parameter block in a fresh child scope.
func (it *Interpreter) execCond(node *Node, env *Env) error {
	raw := strings.Join(node.Args, "")
	clusters := scanner.Graphemes(raw)

	arrow := scanner.IndexOf(clusters, token.TokArrow)
	if arrow < 0 {
		return fmt.Errorf("%w: missing ▶️ in %q", ErrMalformedConditional, raw)
	}
	condRaw := strings.TrimSpace(scanner.Join(clusters[:arrow]))
	bodyRaw := strings.TrimSpace(scanner.Join(clusters[arrow+1:]))

	cond := scanner.Graphemes(condRaw)
	eq := scanner.IndexOf(cond, token.TokEquals)
	if eq < 0 {
		return fmt.Errorf("%w: missing 🟰 in %q", ErrMalformedConditional, condRaw)
	}
	lhs := it.concat(scanner.Join(cond[:eq]), env)
	rhs := it.concat(scanner.Join(cond[eq+1:]), env)

	if lhs != rhs {
		it.tracer.Emit(trace.Cond, "%q != %q, skipping", lhs, rhs)
		return nil
	}
	it.tracer.Emit(trace.Cond, "%q == %q, running block", lhs, rhs)

	fn, err := it.createFn(token.TokArrow + bodyRaw)
	if err != nil {
		return err
	}
	if fn == nil || len(fn.Params) > 0 {
		return nil
	}
	return it.Run(fn.Body, NewChild(env))
}

// call treats a line with no operator symbol as a function invocation: the
// first whitespace field is the function name, each further field one
// positional argument. Missing trailing arguments bind to empty text.
func (it *Interpreter) call(line string, env *Env) error {
	fields := strings.Fields(line)
	name := fields[0]

	v, ok := env.Get(name)
	if ok {
		if fn, isFn := v.(value.Function); isFn {
			args := fields[1:]
			if len(fn.Params) == 0 && len(args) > 0 {
				return fmt.Errorf("%w: %s", ErrArityMismatch, name)
			}
			child := NewChild(env)
			for i, p := range fn.Params {
				arg := ""
				if i < len(args) {
					arg = args[i]
				}
				child.Define(p, value.Text{S: arg})
			}
			it.tracer.Emit(trace.Call, "%s with %d args", name, len(args))
			return it.Run(fn.Body, child)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnresolvedStatement, line)
}
