package eval

import (
	"strings"

	"nickandperla.net/moji/internal/scanner"
	"nickandperla.net/moji/internal/token"
	"nickandperla.net/moji/internal/trace"
	"nickandperla.net/moji/internal/value"
)

// resolve follows an alias chain starting at name: while the current name
// is bound to text that is itself a bound name, keep following. Returns the
// last text value found, or name unchanged if it was never bound. A cyclic
// alias chain does not terminate.
func (it *Interpreter) resolve(name string, env *Env) string {
	v, ok := env.Get(name)
	if !ok {
		it.tracer.Emit(trace.Resolve, "%s is unbound", name)
		return name
	}
	t, ok := v.(value.Text)
	if !ok {
		// Bound to a function: there is no text to return.
		it.tracer.Emit(trace.Resolve, "%s names a function", name)
		return name
	}

	chain := []string{name}
	cur := t.S
	for {
		next, ok := env.Get(cur)
		if !ok {
			break
		}
		nt, ok := next.(value.Text)
		if !ok {
			break
		}
		chain = append(chain, cur)
		cur = nt.S
	}
	it.tracer.Emit(trace.Resolve, "%s = %q", strings.Join(chain, " -> "), cur)
	return cur
}

// concat parses a concatenation expression: raw is split on ➕, each part is
// trimmed, single-cluster parts are resolved as variable names and longer
// parts are taken as literals, and the results are joined with no separator.
func (it *Interpreter) concat(raw string, env *Env) string {
	parts := scanner.SplitOn(scanner.Graphemes(raw), token.TokConcat)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		p := strings.TrimSpace(scanner.Join(part))
		if len(scanner.Graphemes(p)) == 1 {
			r := it.resolve(p, env)
			it.tracer.Emit(trace.Concat, "part %q resolved to %q", p, r)
			out = append(out, r)
			continue
		}
		it.tracer.Emit(trace.Concat, "part %q is a literal", p)
		out = append(out, p)
	}
	return strings.Join(out, "")
}
