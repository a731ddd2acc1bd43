// Package lower states the contract between a checked MIR function and the
// native-code back end that consumes it. The back end itself — SSA shapes,
// ABI, debug info, the subprocess invocation of an assembler/linker — is an
// external collaborator outside this repository's scope; this package only
// pins down what a checked mir.Func guarantees to whoever implements one.
package lower

import (
	"mirc/internal/mir"
	"mirc/internal/types"
)

// Flags are the feature toggles the CLI threads through from --flags and
// --optimize into the lowering step.
type Flags struct {
	NoOUChecks bool // disable checked-integer overflow trap emission
	Sanitize   bool // request address/memory/thread sanitizer attributes
	Optimize   bool
}

// Module is the lowerer's output: an opaque SSA module plus the host triple
// it was built for. Shape and contents are entirely up to the back end.
type Module struct {
	HostTriple string
	SSA        any
}

// Lowerer consumes a checked mir.Func and the type registry it was built
// against, and produces a Module. Implementations may assume every
// invariant in the data model and every check in the checker has already
// been established — they receive only functions that passed check.Check.
//
// CheckedOverflow contract: the one externally visible runtime behavior
// this package requires of an implementation is that checked addition on
// signed integers detects overflow, produces a runtime error message
// through the registry's "printf" extern, and continues into a designated
// block whose value is the poisoned result — it must not trap or abort the
// process outright.
type Lowerer interface {
	Lower(f *mir.Func, reg *types.Registry, flags Flags) (*Module, error)
}
