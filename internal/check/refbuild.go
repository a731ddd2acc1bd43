package check

import (
	"mirc/internal/lifetime"
	"mirc/internal/mir"
)

// buildReferences is Pass C: for every Reference instruction, drill through
// any Copy chain on its operand to find the reference's base (a literal, a
// named binding's load, or another reference), then attach a Reference
// record to the function in creation order. Pass C never rejects a
// program; Pass D consumes what it builds here to enforce aliasing and
// outlives.
func buildReferences(f *mir.Func, lastUse map[mir.BindingKey]mir.InstrID) bool {
	for idx, instr := range f.Instrs {
		if instr.Op != mir.OpReference {
			continue
		}
		refIdx := mir.InstrID(idx)
		base, referentIdx := referenceBase(f, instr.Operand, lastUse)
		ref := mir.Reference{
			CreatedAt:   refIdx,
			ReferentIdx: referentIdx,
			Kind:        mir.Immutable,
			Lifetime:    referenceLifetime(f, refIdx, lastUse),
			Base:        base,
			OwningBlock: instr.Block,
		}
		f.AddReference(ref)
	}
	return true
}

// referenceBase drills through a Copy chain starting at operandIdx and
// classifies what it lands on.
func referenceBase(f *mir.Func, operandIdx mir.InstrID, lastUse map[mir.BindingKey]mir.InstrID) (mir.ReferenceBase, mir.InstrID) {
	idx := operandIdx
	for f.Instrs[idx].Op == mir.OpCopy {
		idx = f.Instrs[idx].Operand
	}
	instr := f.Instrs[idx]

	switch instr.Op {
	case mir.OpIntLit, mir.OpBoolLit:
		return mir.ReferenceBase{Kind: mir.BaseLiteral, Lifetime: lifetime.StaticLifetime()}, idx

	case mir.OpLoad:
		lt := lifetime.StaticLifetime()
		if declBlock, _, found := f.ResolveBinding(instr.Block, instr.LoadName); found {
			key := mir.BindingKey{Name: instr.LoadName, BlockID: declBlock}
			if end, ok := lastUse[key]; ok {
				lt = lifetime.Implicit(int(declBlock), int(idx), int(end))
			}
		}
		return mir.ReferenceBase{Kind: mir.BaseLoadOf, Name: instr.LoadName, Lifetime: lt}, idx

	case mir.OpReference:
		// Reference-to-reference: the nested Reference was built earlier in
		// flat (and therefore creation) order, so its record already exists.
		if inner, ok := f.References[idx]; ok {
			return mir.ReferenceBase{Kind: mir.BaseReference, Lifetime: inner.Lifetime}, idx
		}
		return mir.ReferenceBase{Kind: mir.BaseReference, Lifetime: lifetime.StaticLifetime()}, idx

	default:
		// A temporary with no named storage (an arithmetic/comparison
		// result, a call's return value, an if's value). This language does
		// not extend temporaries' lifetimes, so they are treated as
		// ephemeral literal-like bases.
		return mir.ReferenceBase{Kind: mir.BaseLiteral, Lifetime: lifetime.StaticLifetime()}, idx
	}
}

// referenceLifetime determines how long the reference VALUE itself (not
// its referent) is live: if it is immediately bound to a name via
// Own+Store, its lifetime runs to that binding's last use; otherwise it is
// a bare temporary, live only at its own instruction.
func referenceLifetime(f *mir.Func, refIdx mir.InstrID, lastUse map[mir.BindingKey]mir.InstrID) lifetime.Lifetime {
	ownIdx := int(refIdx) + 1
	storeIdx := int(refIdx) + 2
	if storeIdx < len(f.Instrs) && ownIdx < len(f.Instrs) &&
		f.Instrs[ownIdx].Op == mir.OpOwn && f.Instrs[ownIdx].Operand == refIdx &&
		f.Instrs[storeIdx].Op == mir.OpStore && f.Instrs[storeIdx].StoreRight == refIdx {
		store := f.Instrs[storeIdx]
		if declBlock, _, found := f.ResolveBinding(store.Block, store.StoreName); found {
			key := mir.BindingKey{Name: store.StoreName, BlockID: declBlock}
			if end, ok := lastUse[key]; ok {
				return lifetime.Implicit(int(refIdx), int(refIdx), int(end))
			}
		}
	}
	return lifetime.Implicit(int(refIdx), int(refIdx), int(refIdx))
}
