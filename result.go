// result.go — the two-variant success/failure container for xgx-result core.
//
// Scope (tiny core):
//   - Provide Result[T, E]: exactly two variants, Ok(T) and Err(E).
//   - Immutable once constructed: every transformation produces a NEW value;
//     nothing here mutates a Result in place.
//   - Keep policy out (no logging/retry/classification here; see xgx-error
//     for a policy-free taxonomy core).
//
// Notes:
//   - E is unconstrained (any), not error. Callers that want stdlib interop
//     use an error-typed E (see TracedError in traced_error.go).
//   - The zero value Result[T, E]{} is Ok with T's zero value. This keeps
//     Result usable as a struct field without a constructor call, but prefer
//     the explicit constructors at boundaries.
package xgxresult

import "fmt"

// Result is a two-variant container: Ok carrying a success payload T, or
// Err carrying a failure payload E. It is a value type; copying a Result
// copies the payload it holds.
//
// Variant inspection is explicit (IsOk/IsErr/Get/GetErr/Match); there is no
// implicit coercion between variants. Propagation across function boundaries
// goes through Branch/Propagate/Forward (see control.go and propagate.go).
type Result[T, E any] struct {
	val   T
	err   E
	isErr bool
}

// Ok wraps a success value. It always succeeds and has no side effects.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v}
}

// Err wraps a failure value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, isErr: true}
}

// IsOk reports whether r holds the success variant.
func (r Result[T, E]) IsOk() bool { return !r.isErr }

// IsErr reports whether r holds the failure variant.
func (r Result[T, E]) IsErr() bool { return r.isErr }

// Get returns the success payload and true, or T's zero value and false if r
// is Err.
func (r Result[T, E]) Get() (T, bool) {
	if r.isErr {
		var zero T
		return zero, false
	}
	return r.val, true
}

// GetErr returns the failure payload and true, or E's zero value and false if
// r is Ok.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.isErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

// MustGet returns the success payload or panics if r is Err. The panic
// message includes the failure payload. This is the assertion form of Get;
// use it only where Err is a programming defect.
func (r Result[T, E]) MustGet() T {
	if r.isErr {
		panic(fmt.Sprintf("xgxresult: MustGet on Err result: %v", r.err))
	}
	return r.val
}

// MustGetErr returns the failure payload or panics if r is Ok.
func (r Result[T, E]) MustGetErr() E {
	if !r.isErr {
		panic(fmt.Sprintf("xgxresult: MustGetErr on Ok result: %v", r.val))
	}
	return r.err
}

// GetOr returns the success payload, or fallback if r is Err.
func (r Result[T, E]) GetOr(fallback T) T {
	if r.isErr {
		return fallback
	}
	return r.val
}

// GetOrElse returns the success payload, or the value computed from the
// failure payload if r is Err. fn is not called on the Ok path.
func (r Result[T, E]) GetOrElse(fn func(E) T) T {
	if r.isErr {
		return fn(r.err)
	}
	return r.val
}

// Match invokes exactly one of the two callbacks with the held payload.
// Nil callbacks are allowed; the matching side is simply skipped.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.isErr {
		if onErr != nil {
			onErr(r.err)
		}
		return
	}
	if onOk != nil {
		onOk(r.val)
	}
}

// String renders "Ok(v)" or "Err(e)" with %v payload formatting. Diagnostic
// only; programmatic inspection should use Get/GetErr.
func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.val)
}
