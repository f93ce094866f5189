// propagate.go — capability-dispatched conversion at propagation boundaries.
//
// This is the core of xgx-result. When a failure E crosses a boundary whose
// enclosing function declares error type F, exactly one of two rules applies,
// selected by F's declared capabilities:
//
//   base rule     F declares ConvertFrom[E] only
//                 → Err(F built from E), no location, no side effect.
//   tracing rule  F declares ConvertFrom[E] AND Traced
//                 → same conversion, then Trace(loc) exactly once with the
//                   boundary's own call site, then Err of the traced value.
//
// The tracing rule strictly refines the base rule: whenever both could apply,
// tracing wins. Go has no compiler specialization, so the refinement is
// resolved by interface-satisfaction probing — a single type assertion
// against Traced, tried before falling through to the base path. For a given
// instantiation the probe outcome is a constant of the type, so the visible
// contract (tracing invoked once, in order, exactly for capable types) holds
// bit-for-bit.
//
// Side effects: the Trace mutation is the only observable effect anywhere on
// these paths. No I/O, no global state, no allocation beyond construction.
package xgxresult

// traceInPlace applies F's tracing capability to the value in *slot, if
// declared, and reports whether tracing ran.
//
// The slot pointer is probed first so a pointer-receiver Trace mutates the
// value that will be returned, not a copy. The second probe covers
// pointer-typed F (where *slot itself carries the method set); for such
// types Trace mutates the shared pointee, which is the implementer's choice.
func traceInPlace[F any](slot *F, loc Location) bool {
	if t, ok := any(slot).(Traced); ok {
		t.Trace(loc)
		return true
	}
	if t, ok := any(*slot).(Traced); ok {
		t.Trace(loc)
		return true
	}
	return false
}

// recast converts a residual failure into Err of the enclosing error type F,
// threading the already-captured boundary location through the capability
// dispatch. All public conversion entry points funnel here.
func recast[U, F, E any, PF ErrPtr[F, E]](rs Residual[E], loc Location) Result[U, F] {
	var f F
	PF(&f).ConvertFrom(rs.err)
	traceInPlace(&f, loc)
	return Err[U, F](f)
}

// FromResidual converts a broken branch's residual into the enclosing
// function's Result type, applying the capability dispatch above. The
// location passed to a tracing-capable F is FromResidual's immediate call
// site — the propagation point, not the failure origin.
//
// U and F are declared explicitly (they name the enclosing function's result
// shape); E is inferred from the residual and PF from F:
//
//	if res, broke := parse(s).Branch().Break(); broke {
//		return xgxresult.FromResidual[Config, LoadError](res)
//	}
func FromResidual[U, F, E any, PF ErrPtr[F, E]](rs Residual[E]) Result[U, F] {
	return recast[U, F, E, PF](rs, callerLocation(1))
}

// Propagate is the one-call propagation step across an error-type boundary:
// branch, and on failure recast E into F with capability dispatch. It returns
// the success payload when r is Ok, or the recast failure ready to return
// from the enclosing function:
//
//	func load(path string) xgxresult.Result[Config, LoadError] {
//		raw, brk, ok := xgxresult.Propagate[Config, LoadError](readFile(path))
//		if !ok {
//			return brk
//		}
//		// continue with raw
//	}
//
// On the Ok path no conversion and no tracing occur and the returned Result
// is the zero value (ignore it). On the Err path the location recorded by a
// tracing-capable F is Propagate's own call site.
func Propagate[U, F, T, E any, PF ErrPtr[F, E]](r Result[T, E]) (T, Result[U, F], bool) {
	if !r.isErr {
		return r.val, Result[U, F]{}, true
	}
	var zero T
	return zero, recast[U, F, E, PF](Residual[E]{err: r.err}, callerLocation(1)), false
}

// Forward is the propagation step for boundaries where the failure type does
// not change (the reflexive conversion). No ConvertFrom is required, but the
// tracing invariant still holds: an E that declares Traced records this
// boundary like any other hop.
func Forward[U, T, E any](r Result[T, E]) (T, Result[U, E], bool) {
	if !r.isErr {
		return r.val, Result[U, E]{}, true
	}
	e := r.err
	traceInPlace(&e, callerLocation(1))
	var zero T
	return zero, Err[U, E](e), false
}
