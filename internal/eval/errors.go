package eval

import "errors"

// All interpreter errors are fatal: the run aborts on the first failure and
// output already printed stays visible.
var (
	// ErrMalformedFunction reports a function literal without a ▶️ separator.
	ErrMalformedFunction = errors.New("malformed function literal: missing ▶️")
	// ErrMalformedConditional reports a ❓ statement without ▶️, or a
	// condition clause without 🟰.
	ErrMalformedConditional = errors.New("malformed conditional")
	// ErrArityMismatch reports a zero-parameter function invoked with arguments.
	ErrArityMismatch = errors.New("function takes no args but got some")
	// ErrUnresolvedStatement reports a line that is neither a known statement
	// nor a call of a bound function.
	ErrUnresolvedStatement = errors.New("unknown syntax or function call")
)
