package mir

import (
	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/types"
)

// emitExpr lowers an expression node, returning the instruction that holds
// its value. needsValue is threaded through to emitIf, the only construct
// whose shape (an else clause is or isn't mandatory) depends on whether its
// result is actually consumed.
func (b *Builder) emitExpr(node *ast.Node, needsValue bool) (InstrID, bool) {
	switch node.Kind {
	case ast.IntLit:
		return b.emitIntLit(node)
	case ast.BoolLit:
		return b.emitBoolLit(node)
	case ast.Ident:
		return b.emitLoad(node)
	case ast.Binary:
		return b.emitBinary(node)
	case ast.Reference:
		return b.emitReference(node)
	case ast.Dereference:
		return b.emitDeref(node)
	case ast.Call:
		return b.emitCall(node)
	case ast.If:
		return b.emitIf(node, needsValue)
	default:
		panic("mir: emitExpr called on a non-expression node kind " + node.Kind.String())
	}
}

func (b *Builder) emitIntLit(node *ast.Node) (InstrID, bool) {
	basicKind := node.IntLit.BasicKind
	if basicKind == "" {
		basicKind = "i32" // unsuffixed literals default to i32
	}
	ty, ok := b.reg.Resolve(basicKind)
	if !ok {
		diag.NewError(b.reporter, diag.InvalidSpecifiedNumericType, node.Pos,
			"unknown numeric type '%s'", basicKind).Emit()
		return 0, false
	}

	val, parsed := newBigIntFromDigits(node.IntLit.Text)
	if !parsed {
		diag.NewError(b.reporter, diag.InvalidLiteralForRadix, node.Pos,
			"'%s' is not a valid integer literal", node.IntLit.Text).Emit()
		return 0, false
	}
	min, max := intBounds(ty.BasicKind)
	if val.Cmp(min) < 0 || val.Cmp(max) > 0 {
		diag.NewError(b.reporter, diag.InvalidLiteralForRadix, node.Pos,
			"literal %s does not fit in '%s'", node.IntLit.Text, ty.QualifiedName()).Emit()
		return 0, false
	}

	idx := b.emit(Instr{Op: OpIntLit, Pos: node.Pos, IntLitText: node.IntLit.Text, ResultType: &ty})
	return idx, true
}

func (b *Builder) emitBoolLit(node *ast.Node) (InstrID, bool) {
	ty := b.reg.Builtin(types.Bool)
	idx := b.emit(Instr{Op: OpBoolLit, Pos: node.Pos, BoolLit: node.BoolLit, ResultType: &ty})
	return idx, true
}

func (b *Builder) emitLoad(node *ast.Node) (InstrID, bool) {
	_, info, found := b.resolveBinding(node.Ident)
	if !found {
		diag.NewError(b.reporter, diag.BindingNotFound, node.Pos,
			"binding '%s' not found", node.Ident).Emit()
		return 0, false
	}

	loadTy := info.Type
	loadIdx := b.emit(Instr{Op: OpLoad, Pos: node.Pos, LoadName: node.Ident, ResultType: &loadTy})
	if !info.Type.Implements(types.Copy) {
		return loadIdx, true
	}
	copyTy := info.Type
	copyIdx := b.emit(Instr{Op: OpCopy, Pos: node.Pos, Operand: loadIdx, ResultType: &copyTy})
	return copyIdx, true
}

func (b *Builder) emitBinary(node *ast.Node) (InstrID, bool) {
	leftIdx, ok := b.emitExpr(node.Binary.Left, true)
	if !ok {
		return 0, false
	}
	rightIdx, ok := b.emitExpr(node.Binary.Right, true)
	if !ok {
		return 0, false
	}
	leftType := *b.f.Instr(leftIdx).ResultType
	rightType := *b.f.Instr(rightIdx).ResultType

	traitKind := traitForOp(node.Binary.Op)
	rec, implements := leftType.Trait(traitKind)
	if !implements {
		diag.NewError(b.reporter, diag.TraitNotImplemented, node.Pos.WithOpCol(node.Binary.OpPos.StartCol),
			"'%s' does not implement %s", leftType.QualifiedName(), traitKind).Emit()
		return 0, false
	}
	result, ok := rec.TypeCheck(leftType, rightType)
	if !ok {
		diag.NewError(b.reporter, diag.TypeMismatch, node.Pos.WithOpCol(node.Binary.OpPos.StartCol),
			"mismatched operand types '%s' and '%s'", leftType.QualifiedName(), rightType.QualifiedName()).Emit()
		return 0, false
	}

	op := opcodeForOp(node.Binary.Op)
	idx := b.emit(Instr{
		Op:         op,
		Pos:        node.Pos.WithOpCol(node.Binary.OpPos.StartCol),
		Left:       leftIdx,
		Right:      rightIdx,
		ResultType: &result,
	})
	return idx, true
}

func (b *Builder) emitReference(node *ast.Node) (InstrID, bool) {
	innerIdx, ok := b.emitExpr(node.Inner, true)
	if !ok {
		return 0, false
	}
	innerType := *b.f.Instr(innerIdx).ResultType
	refType := innerType.WithRefDepth(innerType.RefDepth + 1)
	idx := b.emit(Instr{Op: OpReference, Pos: node.Pos, Operand: innerIdx, ResultType: &refType})
	return idx, true
}

func (b *Builder) emitDeref(node *ast.Node) (InstrID, bool) {
	innerIdx, ok := b.emitExpr(node.Inner, true)
	if !ok {
		return 0, false
	}
	innerType := *b.f.Instr(innerIdx).ResultType
	if innerType.RefDepth < 1 {
		diag.NewError(b.reporter, diag.DerefNonref, node.Pos,
			"cannot dereference non-reference type '%s'", innerType.QualifiedName()).Emit()
		return 0, false
	}
	resultType := innerType.WithRefDepth(innerType.RefDepth - 1)
	idx := b.emit(Instr{Op: OpDeref, Pos: node.Pos, Operand: innerIdx, ResultType: &resultType})
	return idx, true
}

func (b *Builder) emitCall(node *ast.Node) (InstrID, bool) {
	sig, ok := b.funcSigs[node.Call.Name]
	if !ok {
		diag.NewError(b.reporter, diag.FunctionNotFound, node.Pos,
			"function '%s' not found", node.Call.Name).Emit()
		return 0, false
	}
	// Direct calls are nullary at the MIR level: the call instruction
	// carries only the callee name, never argument operands, regardless of
	// how many arguments were written at the call site.
	idx := b.emit(Instr{Op: OpCall, Pos: node.Pos, CallName: node.Call.Name, ResultType: &sig})
	return idx, true
}

func traitForOp(op ast.BinaryOp) types.TraitKind {
	switch op {
	case ast.OpAdd:
		return types.Add
	case ast.OpEq:
		return types.Eq
	case ast.OpNe:
		return types.Ne
	default:
		panic("mir: unknown binary op")
	}
}

func opcodeForOp(op ast.BinaryOp) Opcode {
	switch op {
	case ast.OpAdd:
		return OpAdd
	case ast.OpEq:
		return OpEq
	case ast.OpNe:
		return OpNe
	default:
		panic("mir: unknown binary op")
	}
}
