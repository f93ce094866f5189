// traced_error.go — reference tracing-capable error type for xgx-result.
//
// Scope:
//   - Ship one production-quality implementer of both capabilities so hosts
//     get location trails without writing a type first: TracedError converts
//     from any stdlib error and records one hop per propagation boundary.
//   - Stay interoperable with the standard library: TracedError is an error,
//     unwraps to its cause, and formats via fmt (see format.go).
//
// Notes:
//   - Unlike the copy-on-write errors in xgx-error, Trace MUTATES the
//     receiver: the capability contract hands the hook the freshly converted
//     value before it escapes the boundary, and the mutation is the one
//     sanctioned side effect of propagation.
//   - Hop order is boundary order: index 0 is the innermost (earliest)
//     propagation point.
//   - A TracedError shared across goroutines while still propagating is
//     subject to ordinary data-race rules; this package adds no locking.
package xgxresult

import "fmt"

// TracedError wraps a cause error and accumulates the call sites of every
// propagation boundary it crossed. It declares both capabilities: build it
// implicitly by propagating any error into a Result[..., TracedError]
// context, or explicitly via NewTracedError.
type TracedError struct {
	msg   string
	cause error
	hops  []Location
}

// NewTracedError creates a TracedError with a message and no cause. No hop
// is recorded at creation; hops mark propagation boundaries, not origins.
func NewTracedError(msg string) *TracedError {
	return &TracedError{msg: msg}
}

// ConvertFrom implements the base conversion capability from any error.
// The receiver is zero-valued at the call; the cause is retained for
// errors.Is/As traversal rather than flattened to a string.
func (e *TracedError) ConvertFrom(err error) {
	e.cause = err
}

// Trace implements the tracing capability by appending the boundary's call
// site. Zero locations (capture failure) are appended as-is so the hop count
// stays one-per-boundary.
func (e *TracedError) Trace(loc Location) {
	e.hops = append(e.hops, loc)
}

// Error returns the message, the cause's message when no message is set, or
// "traced error" when neither exists. Hops never appear here; use %+v.
func (e *TracedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "traced error"
}

// Unwrap exposes the cause to stdlib traversal via errors.Is/As.
func (e *TracedError) Unwrap() error { return e.cause }

// Hops returns a copy of the recorded propagation sites, innermost first.
// The returned slice is safe to retain and mutate (copy-on-read).
func (e *TracedError) Hops() []Location {
	if len(e.hops) == 0 {
		return nil
	}
	out := make([]Location, len(e.hops))
	copy(out, e.hops)
	return out
}

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the type)
// -----------------------------------------------------------------------------
var (
	_ error              = (*TracedError)(nil)
	_ ConvertFrom[error] = (*TracedError)(nil)
	_ Traced             = (*TracedError)(nil)
	_ fmt.Formatter      = (*TracedError)(nil)
)
