package mir

import "mirc/internal/types"

// Func is the MIR for one function: a flat instruction list plus the tree
// of lexical blocks it was built into. No aliasing exists across
// functions — each gets its own builder and checker instance (see the
// concurrency & resource model).
type Func struct {
	Name       string
	Params     []string
	ReturnType types.Type

	Instrs []Instr  // flat, index-addressed; never reordered once emitted
	Blocks []*Block // indexed by BlockID
	Entry  BlockID

	// References is populated by the checker's Pass C. Keyed by the
	// creating Reference instruction's InstrID, in creation order — map
	// iteration in Go is unordered, so callers that need report-order
	// determinism should use ReferenceOrder instead of ranging the map.
	References     map[InstrID]Reference
	ReferenceOrder []InstrID
}

// Instr returns the instruction at idx.
func (f *Func) Instr(idx InstrID) *Instr {
	return &f.Instrs[idx]
}

// Block returns the block with the given id.
func (f *Func) Block(id BlockID) *Block {
	return f.Blocks[id]
}

// ResolveBinding walks fromBlock's parent chain leaf-first looking up name,
// returning the id of the block that declared it. Exported so the checker
// package can re-derive binding scope without reaching into Block
// internals.
func (f *Func) ResolveBinding(fromBlock BlockID, name string) (BlockID, BindingInfo, bool) {
	blk, info, ok := f.Blocks[fromBlock].resolveIn(f.Blocks, name)
	if !ok {
		return NoBlock, BindingInfo{}, false
	}
	return blk.ID, info, true
}

// AddReference records a reference in both the map and the deterministic
// creation-order slice.
func (f *Func) AddReference(ref Reference) {
	if f.References == nil {
		f.References = make(map[InstrID]Reference)
	}
	f.References[ref.CreatedAt] = ref
	f.ReferenceOrder = append(f.ReferenceOrder, ref.CreatedAt)
}
