// control.go — short-circuit branching primitives for xgx-result core.
//
// Scope:
//   - Residual[E]: the failure payload as it exists mid-propagation, after a
//     break and before conversion into the enclosing function's error type.
//   - ControlFlow[T, E]: the outcome of branching on a Result — either
//     "continue with T" or "break with Residual[E]".
//
// Design notes:
//   - The success half of a residual is structurally unreachable (a broken
//     branch by definition carries a failure), so Residual simply omits it
//     rather than modeling an uninhabited variant.
//   - Branch is the single decomposition point; the composed operators in
//     propagate.go are built on it. Chains built on Branch short-circuit at
//     the first failure: nothing after a break is evaluated.
package xgxresult

// Residual carries a failure value of type E between the boundary where the
// break occurred and the point where it is recast into the enclosing
// function's declared error type (see FromResidual in propagate.go).
type Residual[E any] struct {
	err E
}

// Err returns the failure payload held by the residual.
func (r Residual[E]) Err() E { return r.err }

// ControlFlow is the result of branching on a Result: exactly one of
// Continue or Break reports true.
type ControlFlow[T, E any] struct {
	val   T
	res   Residual[E]
	broke bool
}

// Continue returns the success payload and true when the branch continues,
// or T's zero value and false when it broke.
func (c ControlFlow[T, E]) Continue() (T, bool) {
	if c.broke {
		var zero T
		return zero, false
	}
	return c.val, true
}

// Break returns the residual failure and true when the branch broke, or a
// zero residual and false when it continues.
func (c ControlFlow[T, E]) Break() (Residual[E], bool) {
	if !c.broke {
		return Residual[E]{}, false
	}
	return c.res, true
}

// Branch decomposes r into a ControlFlow: Ok yields "continue with the
// payload", Err yields "break with the failure as a residual". This is the
// monadic short-circuit step; it performs no conversion and no capture —
// those belong to the recast side (propagate.go).
func (r Result[T, E]) Branch() ControlFlow[T, E] {
	if r.isErr {
		return ControlFlow[T, E]{res: Residual[E]{err: r.err}, broke: true}
	}
	return ControlFlow[T, E]{val: r.val}
}
