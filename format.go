// format.go — fmt.Formatter implementation for xgx-result's TracedError.
//
// Behavior:
//
//   %s, %v   → concise string (Error()).
//   %q       → quoted Error().
//   %+v      → verbose, structured multi-line format:
//                msg="<message>"
//                cause: <recursively formatted with %+v>
//                trace:
//                  funcA file.go:123
//                  funcB other.go:45
//
// Rationale:
//   - Keep core free of logging/JSON policy; only fmt formatting.
//   - Hops render innermost first, one per line, in the same per-frame shape
//     the xgx cores use for stacks.
//   - Defer cause formatting to fmt with %+v to preserve nested details.
package xgxresult

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes a structured multi-line representation.
// If hops is empty, the trace section is omitted.
// If cause is non-nil, it is formatted with %+v to recurse verbosely.
func formatVerbose(w io.Writer, msg string, cause error, hops []Location) {
	// Always quote message for clarity (even if empty).
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		// Recurse with %+v so nested traces/stacks render if available.
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	// Propagation sites, innermost (earliest) first.
	if len(hops) > 0 {
		_, _ = io.WriteString(w, "\ntrace:")
		for _, loc := range hops {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", loc.Function, loc.File, loc.Line)
		}
	}
}

func (e *TracedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.msg, e.cause, e.hops)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
