// doc.go — package documentation for xgx-result
//
// Package xgxresult provides a generic, zero-overhead short-circuit Result
// container whose propagation operators attribute a call-site location to an
// error value each time it crosses a function boundary — without the call
// site opting in. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As via Unwrap, fmt.Formatter)
//   - Policy-free (no logging/retry/taxonomy rules in core)
//
// # Capability-Based Dispatch
//
// Propagation converts a failure of type E into the enclosing function's
// declared error type F. Which conversion path runs is a structural property
// of F, resolved by its declared capabilities — never by caller intent:
//
//	+-------------------------------+---------------------------------------+
//	| F declares                    | Propagation behavior                  |
//	+-------------------------------+---------------------------------------+
//	| ConvertFrom[E] only           | Err(F built from E); no location,     |
//	|                               | no side effect (base rule)            |
//	| ConvertFrom[E] + Traced       | same conversion, then Trace(loc)      |
//	|                               | exactly once per boundary (tracing    |
//	|                               | rule; always wins when both apply)    |
//	| neither                       | compile error — propagation never     |
//	|                               | fails at runtime                      |
//	+-------------------------------+---------------------------------------+
//
// There is no per-call-site way to suppress tracing: a type that declares
// Traced is traced at every boundary it crosses.
//
// # Propagation Operators
//
// Go has no `?` operator, so the short-circuit step is explicit. The common
// form is the one-call operator:
//
//	func load(path string) xgxresult.Result[Config, LoadError] {
//		raw, brk, ok := xgxresult.Propagate[Config, LoadError](readFile(path))
//		if !ok {
//			return brk
//		}
//		cfg, brk2, ok := xgxresult.Propagate[Config, LoadError](parse(raw))
//		if !ok {
//			return brk2
//		}
//		return xgxresult.Ok[Config, LoadError](cfg)
//	}
//
// The decomposed form — Branch / Break / FromResidual — exposes the same
// machinery piecewise for hosts that need to interpose between the break and
// the recast. Forward covers boundaries where the error type is unchanged;
// the tracing invariant applies there too.
//
// # When Are Locations Captured?
//
// Locations mark propagation boundaries, not failure origins. Capture is
// implicit and happens exactly where the propagating expression sits:
//
//	+------------------------------+-------------------+--------------------------------+
//	| Operation                    | Captures location? | Which site                    |
//	+------------------------------+-------------------+--------------------------------+
//	| Propagate / Forward (on Err) | YES               | that call's own line           |
//	| FromResidual (always Err)    | YES               | that call's own line           |
//	| Propagate / Forward (on Ok)  | NO                | success path is untouched      |
//	| Ok / Err constructors        | NO                | origins are not boundaries     |
//	| Map / AndThen / OrElse       | NO                | payload transforms only        |
//	| Here()                       | YES (explicit)    | caller of Here                 |
//	+------------------------------+-------------------+--------------------------------+
//
// A failure that threads through N tracing boundaries accumulates N distinct
// locations, innermost (earliest) first.
//
// # Implementing the Capabilities
//
// Declare both methods on the pointer receiver. ConvertFrom receives a
// zero-valued receiver and populates it; Trace mutates the freshly converted
// value before it escapes the boundary:
//
//	type LoadError struct {
//		cause error
//		sites []xgxresult.Location
//	}
//
//	func (e *LoadError) ConvertFrom(err error)          { e.cause = err }
//	func (e *LoadError) Trace(loc xgxresult.Location)   { e.sites = append(e.sites, loc) }
//
// TracedError is the shipped reference implementation: it converts from any
// stdlib error, keeps the cause for errors.Is/As, records hops, and renders
// them under %+v with a "trace:" section.
//
// # Performance Notes
//
//   - The Ok path performs no conversion, no capture, no allocation.
//   - Location capture costs one runtime.Callers frame resolution per
//     failing boundary, and only there.
//   - The capability probe is a single interface assertion whose outcome is
//     constant per instantiated type.
//
// # Concurrency
//
// Everything here is synchronous and eager. The one mutation point is the
// Trace hook on the not-yet-escaped converted value; the package adds no
// locking, and a failure value shared across goroutines afterwards is
// subject to ordinary data-race rules like any other value.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - Ok / Err / Result inspectors and Match
//   - Branch / ControlFlow / Residual
//   - Propagate / Forward / FromResidual
//   - Map / MapErr / AndThen / OrElse
//   - ConvertFrom / Traced / Location / Here
//   - TracedError (reference implementation)
package xgxresult
