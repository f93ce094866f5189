// control_test.go — verification of branching and short-circuit semantics.
package xgxresult

import (
	"testing"
)

func TestBranch_OkContinues(t *testing.T) {
	t.Parallel()

	c := Ok[int, string](9).Branch()
	v, cont := c.Continue()
	if !cont || v != 9 {
		t.Fatalf("Continue: want (9,true), got (%d,%v)", v, cont)
	}
	if _, broke := c.Break(); broke {
		t.Fatalf("Break should report false on a continuing branch")
	}
}

func TestBranch_ErrBreaksWithResidual(t *testing.T) {
	t.Parallel()

	c := Err[int, string]("boom").Branch()
	if v, cont := c.Continue(); cont || v != 0 {
		t.Fatalf("Continue on break: want zero+false, got (%d,%v)", v, cont)
	}
	res, broke := c.Break()
	if !broke {
		t.Fatalf("Break should report true on a broken branch")
	}
	if got := res.Err(); got != "boom" {
		t.Fatalf("residual payload: want boom, got %q", got)
	}
}

// chainStep models one fallible step in a pipeline; it records its own
// execution so tests can assert that nothing past a failure runs.
func chainStep(ran *[]int, id int, fail bool) Result[int, string] {
	*ran = append(*ran, id)
	if fail {
		return Err[int, string]("step failed")
	}
	return Ok[int, string](id)
}

func TestShortCircuit_NothingRunsPastFirstFailure(t *testing.T) {
	t.Parallel()

	var ran []int
	run := func(failAt int) Result[int, string] {
		for id := 1; id <= 4; id++ {
			_, res, ok := Forward[int](chainStep(&ran, id, id == failAt))
			if !ok {
				return res
			}
		}
		return Ok[int, string](0)
	}

	r := run(2)
	if !r.IsErr() {
		t.Fatalf("pipeline with failing step should be Err")
	}
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 2 {
		t.Fatalf("steps after the failure must not execute; ran=%v", ran)
	}

	ran = nil
	r = run(0) // nothing fails
	if !r.IsOk() {
		t.Fatalf("pipeline without failures should be Ok")
	}
	if len(ran) != 4 {
		t.Fatalf("all steps should run on the success path; ran=%v", ran)
	}
}
