package check

import (
	"mirc/internal/diag"
	"mirc/internal/mir"
	"mirc/internal/types"
)

// checkMoves is Pass B: walks the flat instruction stream maintaining each
// binding's ownership state. A binding's value is "moved" when an Own
// instruction's operand is itself a Load of that binding and the loaded
// type does not implement Copy — in this language that is exactly the
// reference types (RefDepth >= 1; every depth-0 basic kind implements
// Copy), so this pass is effectively single-ownership tracking for borrows.
// A bare Load (e.g. the inner load wrapped by a Reference expression, as in
// `&p`) only checks that the binding is still owned; it does not itself
// realize the move — only the Own that directly wraps a Load does.
func checkMoves(f *mir.Func, r diag.Reporter) bool {
	movedAt := make(map[*mir.CheckEntry]mir.InstrID) // binding -> Own that moved it
	for idx, instr := range f.Instrs {
		switch instr.Op {
		case mir.OpDeclare:
			blk := f.Blocks[instr.Block]
			blk.CheckTable[instr.DeclareName] = &mir.CheckEntry{
				Tag: mir.CheckTag{IsMut: instr.DeclareIsMut},
			}

		case mir.OpStore:
			declBlock, info, found := f.ResolveBinding(instr.Block, instr.StoreName)
			if !found {
				continue // already reported as BindingNotFound by the builder
			}
			entry := f.Blocks[declBlock].CheckTable[instr.StoreName]
			if entry == nil {
				entry = &mir.CheckEntry{}
				f.Blocks[declBlock].CheckTable[instr.StoreName] = entry
			}
			storeIdx := mir.InstrID(idx)
			entry.LastStoreIndex = &storeIdx
			entry.Tag.IsOwned = true
			entry.Tag.IsMut = info.IsMut
			owner := mir.OwnerRef{Idx: storeIdx, BlockID: instr.Block}
			entry.Tag.Owner = &owner

		case mir.OpLoad:
			declBlock, info, found := f.ResolveBinding(instr.Block, instr.LoadName)
			if !found {
				continue
			}
			if info.Type.Implements(types.Copy) {
				continue // Copy-able loads never consume the binding
			}
			entry := f.Blocks[declBlock].CheckTable[instr.LoadName]
			if entry == nil {
				diag.NewError(r, diag.CannotMoveOutOfBinding, instr.Pos,
					"cannot move out of binding '%s': no owned value", instr.LoadName).Emit()
				return false
			}
			if !entry.Tag.IsOwned {
				d := diag.NewError(r, diag.MovedBinding, instr.Pos,
					"use of moved binding '%s'", instr.LoadName)
				if at, ok := movedAt[entry]; ok {
					d = d.WithSite(f.Instr(at).Pos, "value moved here")
				}
				d.Emit()
				return false
			}
			// Loading the binding does not by itself move it — only an Own
			// instruction whose operand is this exact Load does (handled
			// below). A Load nested inside a larger expression, such as the
			// inner load of `&p`, is a borrow, not a move.

		case mir.OpOwn:
			operand := f.Instr(instr.Operand)
			if operand.Op != mir.OpLoad {
				continue // Own wraps something other than a bare Load: no move
			}
			declBlock, info, found := f.ResolveBinding(operand.Block, operand.LoadName)
			if !found {
				continue
			}
			if info.Type.Implements(types.Copy) {
				continue
			}
			entry := f.Blocks[declBlock].CheckTable[operand.LoadName]
			if entry == nil {
				continue // already reported when the Load itself was checked
			}
			// This is the move: Own(result) where result's producing
			// instruction is itself a Load(name). The binding cannot be
			// read again until it is reassigned via Store.
			entry.Tag.IsOwned = false
			movedAt[entry] = mir.InstrID(idx)

		case mir.OpDeref:
			if instr.ResultType != nil && instr.ResultType.Implements(types.Copy) {
				continue // dereferencing down to a Copy type never moves anything
			}
			operand := f.Instr(instr.Operand)
			if operand.Op == mir.OpLoad {
				diag.NewError(r, diag.CannotMoveOutOfBinding, instr.Pos,
					"cannot move out of binding '%s' through dereference", operand.LoadName).Emit()
				return false
			}
			diag.NewError(r, diag.CannotMoveOutOfNonCopy, instr.Pos,
				"cannot move out of a non-Copy value through dereference").Emit()
			return false
		}
	}
	return true
}
