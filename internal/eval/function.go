package eval

import (
	"fmt"

	"nickandperla.net/moji/internal/scanner"
	"nickandperla.net/moji/internal/token"
	"nickandperla.net/moji/internal/trace"
	"nickandperla.net/moji/internal/value"
)

// createFn parses a function-literal expression. Returns nil when raw does
// not begin with 🔧 or ▶️ (the expression is not a function literal at all).
// A literal without a ▶️ separator is fatal.
//
// Parameter names are the clusters strictly between the leading marker and
// the first ▶️, one cluster per name. The body is everything after ▶️,
// split on 🫷 into statement lines.
func (it *Interpreter) createFn(raw string) (*value.Function, error) {
	clusters := scanner.Graphemes(raw)
	if len(clusters) == 0 {
		return nil, nil
	}
	if clusters[0] != token.TokFnMark && clusters[0] != token.TokArrow {
		return nil, nil
	}

	arrow := scanner.IndexOf(clusters, token.TokArrow)
	if arrow < 0 {
		return nil, fmt.Errorf("%w in %q", ErrMalformedFunction, raw)
	}

	var params []string
	if arrow > 0 {
		params = make([]string, arrow-1)
		copy(params, clusters[1:arrow])
	}

	var body []string
	for _, stmt := range scanner.SplitOn(clusters[arrow+1:], token.TokStmtSep) {
		body = append(body, scanner.Join(stmt))
	}

	it.tracer.Emit(trace.FnCreate, "params=%d body=%d lines", len(params), len(body))
	return &value.Function{Params: params, Body: body}, nil
}
