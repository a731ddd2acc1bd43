// Package check implements the four-pass borrow/ownership analysis that
// runs over a built mir.Func: last-use computation, binding move tracking,
// reference-record construction, and aliasing/outlives verification.
package check

import (
	"mirc/internal/diag"
	"mirc/internal/mir"
)

// Checker runs the four passes over a single function's MIR in order. Each
// pass may report diagnostics and halt; passes after a failing one do not
// run, since the compiler's error-handling design treats every diagnostic
// as fatal.
type Checker struct {
	reporter diag.Reporter
}

// New constructs a Checker reporting to r.
func New(r diag.Reporter) *Checker {
	return &Checker{reporter: r}
}

// Check runs passes A through D over f. It returns false as soon as any
// pass reports a diagnostic.
func (c *Checker) Check(f *mir.Func) bool {
	lastUse := computeLastUse(f)
	if !checkMoves(f, c.reporter) {
		return false
	}
	if !buildReferences(f, lastUse) {
		return false
	}
	if !checkAliasingAndOutlives(f, c.reporter) {
		return false
	}
	return true
}
