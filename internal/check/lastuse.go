package check

import "mirc/internal/mir"

// computeLastUse is Pass A: for every binding, find the last instruction
// index (in flat, build order) that reads or writes it. There are no loops
// in this language (see the repo's non-goals), so flat order coincides with
// the order values are produced and consumed on any one path through the
// function — later passes only need the single maximum, not a per-path set.
func computeLastUse(f *mir.Func) map[mir.BindingKey]mir.InstrID {
	lastUse := make(map[mir.BindingKey]mir.InstrID)
	for idx, instr := range f.Instrs {
		var name string
		switch {
		case instr.Op == mir.OpLoad:
			name = instr.LoadName
		case instr.Op == mir.OpStore:
			name = instr.StoreName
		default:
			continue
		}
		declBlock, _, found := f.ResolveBinding(instr.Block, name)
		if !found {
			continue
		}
		key := mir.BindingKey{Name: name, BlockID: declBlock}
		lastUse[key] = mir.InstrID(idx)
	}

	// Annotate each binding's last-use instruction with the drop it implies,
	// so the lowerer knows exactly where to materialize it. Each flat
	// instruction names at most one binding (its own LoadName or
	// StoreName), so distinct keys never land on the same index here.
	for key, idx := range lastUse {
		instr := &f.Instrs[idx]
		if instr.DropBinding == nil {
			k := key
			instr.DropBinding = &k
		}
	}
	return lastUse
}
