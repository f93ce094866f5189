// capability.go — opt-in capability contracts for xgx-result core.
//
// Two capabilities exist, and they are strictly layered:
//   - ConvertFrom[E]: the base conversion capability ("can be built from E").
//     Required for any converting propagation; its absence is a compile
//     error, never a runtime one.
//   - Traced: the tracing refinement. A target type that declares it has the
//     tracing path selected on EVERY propagation into it; there is no
//     per-call-site opt-out. Selection is structural (by type), never by
//     value or caller annotation.
//
// Implementations SHOULD:
//   - Declare both methods on the POINTER receiver. ConvertFrom populates a
//     zero receiver; Trace mutates the freshly converted value before it
//     escapes. A value-receiver Trace type-checks but mutates a copy, which
//     defeats the capability.
//   - Keep Trace infallible. Nothing in this package recovers; a panicking
//     hook aborts the host as any other panic would.
package xgxresult

// ConvertFrom is the base conversion capability: a target error type F
// declares it can be built from a source failure E by implementing
// ConvertFrom(E) on *F. The method receives a zero-valued receiver and
// populates it.
//
// Example:
//
//	type LoadError struct{ cause error }
//
//	func (e *LoadError) ConvertFrom(err error) { e.cause = err }
type ConvertFrom[E any] interface {
	ConvertFrom(e E)
}

// Traced is the tracing capability: implementers receive the call-site
// location of every propagation boundary their values are converted at,
// exactly once per boundary, in boundary order (innermost first).
//
// The contract is deliberately open-ended: the hook receives the location
// and may mutate the receiver; what it records, and how, is the
// implementer's policy (see TracedError for the reference implementation).
type Traced interface {
	Trace(loc Location)
}

// ErrPtr constrains PF to be the pointer type *F carrying the base
// conversion capability from E. It is the standard pointer-receiver
// constraint: given F, PF is inferred, and a missing ConvertFrom
// implementation is rejected at compile time — propagation either
// type-checks and always succeeds at runtime, or never builds.
type ErrPtr[F, E any] interface {
	*F
	ConvertFrom[E]
}
