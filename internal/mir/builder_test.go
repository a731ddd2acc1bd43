package mir

import (
	"testing"

	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/source"
	"mirc/internal/types"
)

func pos() source.Position { return source.New(0, 0, 1) }

func intLit(text, kind string) *ast.Node {
	return &ast.Node{Kind: ast.IntLit, Pos: pos(), IntLit: ast.IntLitPayload{Text: text, BasicKind: kind}}
}

func ident(name string) *ast.Node {
	return &ast.Node{Kind: ast.Ident, Pos: pos(), Ident: name}
}

func letStmt(name string, isMut bool, init *ast.Node, typeName string) *ast.Node {
	return &ast.Node{Kind: ast.Let, Pos: pos(), Let: ast.LetPayload{Name: name, IsMut: isMut, Init: init, TypeName: typeName}}
}

func storeStmt(name string, expr *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.Store, Pos: pos(), Store: ast.StorePayload{Name: name, Expr: expr}}
}

func returnStmt(inner *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.Return, Pos: pos(), Inner: inner}
}

func refOf(inner *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.Reference, Pos: pos(), Inner: inner}
}

func derefOf(inner *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.Dereference, Pos: pos(), Inner: inner}
}

func binary(op ast.BinaryOp, left, right *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.Binary, Pos: pos(), Binary: ast.BinaryPayload{Left: left, Op: op, Right: right, OpPos: pos()}}
}

func fn(name, retType string, body ...*ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.Fn, Pos: pos(), Fn: ast.FnPayload{Name: name, ReturnType: retType, Body: body}}
}

func newBuilder(reg *types.Registry, bag *diag.Bag) *Builder {
	return NewBuilder(reg, map[string]types.Type{}, bag)
}

func TestBuildLetAndReturn(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "i32",
		letStmt("x", false, intLit("1", "i32"), ""),
		returnStmt(ident("x")),
	)

	mf, ok := b.Build(f)
	if !ok {
		t.Fatalf("build failed: %+v", bag.Items())
	}
	if !bag.Empty() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if mf.ReturnType.BasicKind != types.I32 {
		t.Errorf("expected i32 return type, got %v", mf.ReturnType.BasicKind)
	}

	var haveCopy bool
	for _, instr := range mf.Instrs {
		if instr.Op == OpCopy {
			haveCopy = true
		}
	}
	if !haveCopy {
		t.Error("expected the Load of a Copy-able binding to emit a Copy")
	}
}

func TestReturnReferenceRejected(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "i32",
		letStmt("x", false, intLit("1", "i32"), ""),
		returnStmt(refOf(ident("x"))),
	)

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.ReturnReference {
		t.Fatalf("expected ReturnReference, got %+v", d)
	}
}

func TestDerefNonReferenceRejected(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "i32",
		letStmt("x", false, intLit("1", "i32"), ""),
		returnStmt(derefOf(ident("x"))),
	)

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.DerefNonref {
		t.Fatalf("expected DerefNonref, got %+v", d)
	}
}

func TestStoreToImmutableBindingRejected(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "",
		letStmt("x", false, intLit("1", "i32"), ""),
		storeStmt("x", intLit("2", "i32")),
	)

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.BindingNotMutable {
		t.Fatalf("expected BindingNotMutable, got %+v", d)
	}
}

func TestStoreUnknownBindingRejected(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "", storeStmt("ghost", intLit("1", "i32")))

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.BindingNotFound {
		t.Fatalf("expected BindingNotFound, got %+v", d)
	}
}

func TestIntLiteralOutOfRangeRejected(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "", letStmt("x", false, intLit("256", "u8"), ""))

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.InvalidLiteralForRadix {
		t.Fatalf("expected InvalidLiteralForRadix, got %+v", d)
	}
}

func TestBinaryAddOnMismatchedTypesRejected(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "", letStmt("x", false, binary(ast.OpAdd, intLit("1", "i32"), intLit("2", "u8")), ""))

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %+v", d)
	}
}

func TestReferenceIncrementsRefDepth(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "",
		letStmt("x", false, intLit("1", "i32"), ""),
		letStmt("r", false, refOf(ident("x")), ""),
	)
	mf, ok := b.Build(f)
	if !ok {
		t.Fatalf("build failed: %+v", bag.Items())
	}
	refInfo := mf.Blocks[0].Bindings["r"]
	if refInfo.Type.RefDepth != 1 {
		t.Errorf("expected ref depth 1, got %d", refInfo.Type.RefDepth)
	}
}

func TestIfAsValueRequiresElse(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	cond := &ast.Node{Kind: ast.BoolLit, Pos: pos(), BoolLit: true}
	ifNode := &ast.Node{
		Kind: ast.If, Pos: pos(),
		If: ast.IfPayload{Arms: []ast.IfArm{{Cond: cond, Body: []*ast.Node{intLit("1", "i32")}}}},
	}
	f := fn("f", "", letStmt("x", false, ifNode, ""))

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.MissingElseClause {
		t.Fatalf("expected MissingElseClause, got %+v", d)
	}
}

func TestIfAsValueWithMatchingArms(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	cond := &ast.Node{Kind: ast.BoolLit, Pos: pos(), BoolLit: true}
	ifNode := &ast.Node{
		Kind: ast.If, Pos: pos(),
		If: ast.IfPayload{
			Arms: []ast.IfArm{{Cond: cond, Body: []*ast.Node{intLit("1", "i32")}}},
			Else: []*ast.Node{intLit("2", "i32")},
		},
	}
	f := fn("f", "i32", letStmt("x", false, ifNode, ""), returnStmt(ident("x")))

	mf, ok := b.Build(f)
	if !ok {
		t.Fatalf("build failed: %+v", bag.Items())
	}
	var found bool
	for _, instr := range mf.Instrs {
		if instr.Op == OpIf {
			found = true
			if instr.ResultType.BasicKind != types.I32 {
				t.Errorf("expected if to resolve to i32, got %v", instr.ResultType.BasicKind)
			}
		}
	}
	if !found {
		t.Error("expected an If instruction in the flat stream")
	}
}

func TestCallUnknownFunctionRejected(t *testing.T) {
	reg := types.NewRegistry()
	bag := diag.NewBag()
	b := newBuilder(reg, bag)

	f := fn("f", "", letStmt("x", false, &ast.Node{Kind: ast.Call, Pos: pos(), Call: ast.CallPayload{Name: "ghost"}}, ""))

	if _, ok := b.Build(f); ok {
		t.Fatal("expected build to fail")
	}
	d, ok := bag.First()
	if !ok || d.Code != diag.FunctionNotFound {
		t.Fatalf("expected FunctionNotFound, got %+v", d)
	}
}
