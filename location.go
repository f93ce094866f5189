// location.go — single-frame call-site capture for xgx-result core.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Snapshot semantics: a Location is a copyable value, not a reference to
//     mutable runtime state.
//   - Pragmatic performance: capture exactly one frame; the cost is paid only
//     on failure paths that actually propagate.
//
// References:
//   - runtime.Callers / CallersFrames docs and example
//   - Prefer CallersFrames over FuncForPC for inlined frames
//   - Callers skip semantics (0 = Callers, 1 = its caller)
package xgxresult

import (
	"fmt"
	"runtime"
)

// Location identifies a single call site. It is an immutable snapshot taken
// at a propagation point; equality of two Locations means they denote the
// same file/line (Function is informational).
type Location struct {
	File     string // absolute file path (as provided by runtime)
	Line     int    // line number
	Function string // fully-qualified function name (pkg.Func or method)
}

// IsZero reports whether l carries no captured site (capture failed or the
// Location was never populated).
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Function == ""
}

// String renders "function file:line", matching the per-frame stack layout
// used across xgx cores.
func (l Location) String() string {
	return fmt.Sprintf("%s %s:%d", l.Function, l.File, l.Line)
}

// Here captures the location of its immediate caller. Exported for hosts
// that thread locations manually (e.g., through helpers that are themselves
// propagation boundaries); the propagation operators capture implicitly.
func Here() Location {
	return callerLocation(1)
}

// callerLocation captures a single frame 'skip' levels above the caller of
// callerLocation itself.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for callerLocation
//
// Therefore we add +2 so that skip=0 resolves to callerLocation's caller and
// each additional skip walks one frame outward. The zero Location is returned
// when the requested frame does not exist.
func callerLocation(skip int) Location {
	var pc [1]uintptr
	n := runtime.Callers(skip+2, pc[:])
	if n == 0 {
		return Location{}
	}
	fr, _ := runtime.CallersFrames(pc[:n]).Next()
	return Location{
		File:     fr.File,
		Line:     fr.Line,
		Function: fr.Function,
	}
}
