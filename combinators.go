// combinators.go — functional transformations over Result for xgx-result core.
//
// Scope:
//   - The four classic Result transformations as free generic functions
//     (Go methods cannot introduce new type parameters).
//   - Strict, left-to-right evaluation: a callback on the non-matching
//     variant is never invoked, so chains short-circuit at the first failure
//     with no speculative work.
//
// Notes:
//   - These operate on payloads only; none of them touch the capability
//     dispatch or capture a location. Crossing an error-type boundary with
//     tracing semantics is propagate.go's job.
package xgxresult

// Map transforms the success payload, passing failures through unchanged.
// fn is not called when r is Err.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return Ok[U, E](fn(r.val))
}

// MapErr transforms the failure payload, passing successes through unchanged.
// fn is not called when r is Ok. This is a plain payload transformation: it
// does not consult capabilities and records no location.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if !r.isErr {
		return Ok[T, F](r.val)
	}
	return Err[T, F](fn(r.err))
}

// AndThen chains a dependent fallible step: fn runs only when r is Ok, and
// its Result becomes the chain's Result. A failure in r short-circuits past
// fn entirely.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return fn(r.val)
}

// OrElse chains a recovery step: fn runs only when r is Err, and its Result
// becomes the chain's Result. A success in r short-circuits past fn.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if !r.isErr {
		return Ok[T, F](r.val)
	}
	return fn(r.err)
}
