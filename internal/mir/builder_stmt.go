package mir

import (
	"mirc/internal/ast"
	"mirc/internal/diag"
)

// emitStmt lowers one statement-level node. Let/Store/Return are true
// statements; anything else is an expression whose value is discarded
// (needsValue=false), including a bare `if` used for its side effects.
func (b *Builder) emitStmt(node *ast.Node) bool {
	switch node.Kind {
	case ast.Let:
		return b.emitLet(node)
	case ast.Store:
		return b.emitStore(node)
	case ast.Return:
		return b.emitReturn(node)
	case ast.If:
		_, ok := b.emitIf(node, false)
		return ok
	default:
		_, ok := b.emitExpr(node, false)
		return ok
	}
}

func (b *Builder) emitLet(node *ast.Node) bool {
	b.emit(Instr{
		Op:           OpDeclare,
		Pos:          node.Pos,
		DeclareName:  node.Let.Name,
		DeclareIsMut: node.Let.IsMut,
	})

	initIdx, ok := b.emitExpr(node.Let.Init, true)
	if !ok {
		return false
	}
	initType := *b.f.Instr(initIdx).ResultType

	if node.Let.TypeName != "" {
		annotated, found := b.reg.Resolve(node.Let.TypeName)
		if !found {
			diag.NewError(b.reporter, diag.TypeNotFound, node.Pos,
				"type '%s' not found", node.Let.TypeName).Emit()
			return false
		}
		if !annotated.Equal(initType) {
			diag.NewError(b.reporter, diag.TypeMismatch, node.Pos,
				"cannot bind '%s' as declared type '%s'", initType.QualifiedName(), annotated.QualifiedName()).Emit()
			return false
		}
		initType = annotated
	}

	b.emit(Instr{Op: OpOwn, Pos: node.Pos, Operand: initIdx})
	b.emit(Instr{Op: OpStore, Pos: node.Pos, StoreName: node.Let.Name, StoreRight: initIdx})

	b.f.Blocks[b.curBlock].Bindings[node.Let.Name] = BindingInfo{Type: initType, IsMut: node.Let.IsMut}
	return true
}

func (b *Builder) emitStore(node *ast.Node) bool {
	_, info, found := b.resolveBinding(node.Store.Name)
	if !found {
		diag.NewError(b.reporter, diag.BindingNotFound, node.Pos,
			"binding '%s' not found", node.Store.Name).Emit()
		return false
	}

	rightIdx, ok := b.emitExpr(node.Store.Expr, true)
	if !ok {
		return false
	}
	rightType := *b.f.Instr(rightIdx).ResultType

	if !info.Type.Equal(rightType) {
		diag.NewError(b.reporter, diag.TypeMismatch, node.Pos,
			"cannot assign '%s' to binding of type '%s'", rightType.QualifiedName(), info.Type.QualifiedName()).Emit()
		return false
	}
	if !info.IsMut {
		diag.NewError(b.reporter, diag.BindingNotMutable, node.Pos,
			"binding '%s' is not mutable", node.Store.Name).Emit()
		return false
	}

	b.emit(Instr{Op: OpOwn, Pos: node.Pos, Operand: rightIdx})
	b.emit(Instr{Op: OpStore, Pos: node.Pos, StoreName: node.Store.Name, StoreRight: rightIdx})
	return true
}

func (b *Builder) emitReturn(node *ast.Node) bool {
	exprIdx, ok := b.emitExpr(node.Inner, true)
	if !ok {
		return false
	}
	exprType := *b.f.Instr(exprIdx).ResultType

	if exprType.RefDepth != 0 {
		diag.NewError(b.reporter, diag.ReturnReference, node.Pos,
			"cannot return a reference").Emit()
		return false
	}
	if !exprType.Equal(b.f.ReturnType) {
		diag.NewError(b.reporter, diag.TypeMismatch, node.Pos,
			"function returns '%s' but this returns '%s'", b.f.ReturnType.QualifiedName(), exprType.QualifiedName()).Emit()
		return false
	}

	b.emit(Instr{Op: OpOwn, Pos: node.Pos, Operand: exprIdx})
	b.emit(Instr{Op: OpReturn, Pos: node.Pos, Operand: exprIdx})
	return true
}
