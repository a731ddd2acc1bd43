package mir

import (
	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/types"
)

// emitIf lowers an if/elif*/else? expression. Each arm's condition is
// evaluated in the enclosing block (conditions chain like a cascade of
// guards); each arm's body gets its own child block so bindings introduced
// inside one arm never leak into a sibling or the continuation.
//
// When needsValue is true every arm, including the else, must agree on a
// result type and an else clause is mandatory (MissingElseClause). When
// needsValue is false the if is evaluated purely for side effects and an
// absent else, or arms of differing (or no) value, are fine.
func (b *Builder) emitIf(node *ast.Node, needsValue bool) (InstrID, bool) {
	var arms []IfArm
	var resultType *types.Type

	for _, arm := range node.If.Arms {
		condIdx, ok := b.emitExpr(arm.Cond, true)
		if !ok {
			return 0, false
		}
		condType := *b.f.Instr(condIdx).ResultType
		boolType := b.reg.Builtin(types.Bool)
		if !condType.Equal(boolType) {
			diag.NewError(b.reporter, diag.TypeMismatch, arm.Cond.Pos,
				"if condition must be 'bool', found '%s'", condType.QualifiedName()).Emit()
			return 0, false
		}

		armType, armIfArm, ok := b.buildArm(arm.Body, needsValue)
		if !ok {
			return 0, false
		}
		arms = append(arms, armIfArm)
		if needsValue {
			if armType == nil {
				diag.NewError(b.reporter, diag.TypeMismatch, node.Pos,
					"if arm does not produce a value").Emit()
				return 0, false
			}
			if resultType == nil {
				resultType = armType
			} else if !resultType.Equal(*armType) {
				diag.NewError(b.reporter, diag.TypeMismatch, node.Pos,
					"if arms disagree on type: '%s' vs '%s'", resultType.QualifiedName(), armType.QualifiedName()).Emit()
				return 0, false
			}
		}
	}

	var elseArm *IfArm
	switch {
	case node.If.Else != nil:
		elseType, built, ok := b.buildArm(node.If.Else, needsValue)
		if !ok {
			return 0, false
		}
		elseArm = &built
		if needsValue {
			if elseType == nil {
				diag.NewError(b.reporter, diag.TypeMismatch, node.Pos,
					"else arm does not produce a value").Emit()
				return 0, false
			}
			if resultType == nil {
				resultType = elseType
			} else if !resultType.Equal(*elseType) {
				diag.NewError(b.reporter, diag.TypeMismatch, node.Pos,
					"if arms disagree on type: '%s' vs '%s'", resultType.QualifiedName(), elseType.QualifiedName()).Emit()
				return 0, false
			}
		}
	case needsValue:
		diag.NewError(b.reporter, diag.MissingElseClause, node.Pos,
			"if used as a value must have an else clause").Emit()
		return 0, false
	}

	finalType := resultType
	if finalType == nil {
		voidType := b.reg.Builtin(types.Void)
		finalType = &voidType
	}
	idx := b.emit(Instr{
		Op:         OpIf,
		Pos:        node.Pos,
		ResultType: finalType,
		If:         &IfData{Arms: arms, Else: elseArm},
	})
	return idx, true
}

// buildArm opens a fresh child block, lowers body into it, and returns the
// type of its trailing value (nil if the last statement produces none).
func (b *Builder) buildArm(body []*ast.Node, wantValue bool) (*types.Type, IfArm, bool) {
	childID := b.openChildBlock()
	offset := len(b.f.Instrs)
	defer b.closeChildBlock()

	var resultType *types.Type
	for i, stmt := range body {
		isLast := i == len(body)-1
		if isLast && wantValue && isExprStmtKind(stmt.Kind) {
			idx, ok := b.emitExpr(stmt, true)
			if !ok {
				return nil, IfArm{}, false
			}
			resultType = b.f.Instr(idx).ResultType
			continue
		}
		if !b.emitStmt(stmt) {
			return nil, IfArm{}, false
		}
	}

	blk := b.f.Blocks[childID]
	return resultType, IfArm{BlockID: childID, Offset: offset, Instrs: blk.Instructions}, true
}

func isExprStmtKind(k ast.Kind) bool {
	switch k {
	case ast.IntLit, ast.BoolLit, ast.Ident, ast.Binary, ast.Reference, ast.Dereference, ast.Call, ast.If:
		return true
	default:
		return false
	}
}
