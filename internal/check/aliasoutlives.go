package check

import (
	"mirc/internal/diag"
	"mirc/internal/mir"
)

// checkAliasingAndOutlives is Pass D: no two simultaneously-live references
// may share a base, and a reference's referent must live at least as long
// as the scope the reference value itself escapes into.
func checkAliasingAndOutlives(f *mir.Func, r diag.Reporter) bool {
	order := f.ReferenceOrder
	for i, idA := range order {
		refA := f.References[idA]
		for _, idB := range order[i+1:] {
			refB := f.References[idB]
			if !refA.Base.Equal(refB.Base) {
				continue
			}
			if !refA.Lifetime.Overlaps(refB.Lifetime) {
				continue
			}
			diag.NewError(r, diag.MultipleImmutableReferences, f.Instr(idB).Pos,
				"multiple live references to the same value").
				WithSite(f.Instr(idA).Pos, "first reference created here").Emit()
			return false
		}
	}

	for _, id := range order {
		ref := f.References[id]
		if ref.Base.Kind != mir.BaseLoadOf {
			continue
		}
		declBlock, _, found := f.ResolveBinding(ref.OwningBlock, ref.Base.Name)
		if !found {
			continue
		}
		storeBlock := storeBlockOf(f, id)
		if !blockEnclosedBy(f, storeBlock, declBlock) {
			diag.NewError(r, diag.ValueNotLiveEnough, f.Instr(id).Pos,
				"'%s' does not live long enough", ref.Base.Name).Emit()
			return false
		}
	}
	return true
}

// storeBlockOf returns the block owning the binding a reference's value is
// ultimately stored into, or the reference's own owning block if it is
// never stored (a bare temporary).
func storeBlockOf(f *mir.Func, refIdx mir.InstrID) mir.BlockID {
	ownIdx := int(refIdx) + 1
	storeIdx := int(refIdx) + 2
	if storeIdx < len(f.Instrs) && ownIdx < len(f.Instrs) &&
		f.Instrs[ownIdx].Op == mir.OpOwn && f.Instrs[ownIdx].Operand == refIdx &&
		f.Instrs[storeIdx].Op == mir.OpStore && f.Instrs[storeIdx].StoreRight == refIdx {
		store := f.Instrs[storeIdx]
		if declBlock, _, found := f.ResolveBinding(store.Block, store.StoreName); found {
			return declBlock
		}
	}
	return f.References[refIdx].OwningBlock
}

// blockEnclosedBy reports whether target appears in from's parent chain —
// i.e. target's scope enclosed (or is) from's scope.
func blockEnclosedBy(f *mir.Func, from, target mir.BlockID) bool {
	for _, id := range f.Blocks[from].ParentChain {
		if id == target {
			return true
		}
	}
	return false
}
