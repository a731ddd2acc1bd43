package main

import (
	"mirc/internal/config"
	"mirc/internal/diag"
)

// validateCheckFlags validates --flags values against the fixed set the
// checker understands, reporting InvalidFlag or DuplicateFlag through bag.
// It accepts the same names config.Load accepts for [check].flags.
func validateCheckFlags(flags []string, bag *diag.Bag) bool {
	seen := make(map[string]bool, len(flags))
	ok := true
	for _, flag := range flags {
		switch flag {
		case config.FlagNoOUChecks, config.FlagSanitize:
			// recognized
		default:
			diag.NewErrorNoPos(bag, diag.InvalidFlag, "unrecognized --flags value %q", flag).Emit()
			ok = false
			continue
		}
		if seen[flag] {
			diag.NewErrorNoPos(bag, diag.DuplicateFlag, "--flags value %q given more than once", flag).Emit()
			ok = false
			continue
		}
		seen[flag] = true
	}
	return ok
}
