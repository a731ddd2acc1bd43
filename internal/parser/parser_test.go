package parser

import (
	"testing"

	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/lexer"
)

func parseSrc(t *testing.T, src string) ([]*ast.Node, *diag.Bag, bool) {
	t.Helper()
	bag := diag.NewBag()
	toks, ok := lexer.New(src, bag).Tokenize()
	if !ok {
		return nil, bag, false
	}
	fns, ok := New(toks, bag).ParseFile()
	return fns, bag, ok
}

func TestParseSimpleFunction(t *testing.T) {
	fns, bag, ok := parseSrc(t, "fn main(): i32 {\nlet x = 1i32\nlet y = x + 2i32\nreturn y }")
	if !ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}
	if len(fns) != 1 {
		t.Fatalf("got %d functions", len(fns))
	}
	fn := fns[0].Fn
	if fn.Name != "main" || fn.ReturnType != "i32" {
		t.Fatalf("got %+v", fn)
	}
	if len(fn.Body) != 3 {
		t.Fatalf("got %d statements: %+v", len(fn.Body), fn.Body)
	}
}

func TestParseStoreRequiresMutableLater(t *testing.T) {
	fns, bag, ok := parseSrc(t, "fn f() { let mut x = 1i32\nx = 2i32 }")
	if !ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}
	store := fns[0].Fn.Body[1]
	if store.Kind != ast.Store || store.Store.Name != "x" {
		t.Fatalf("got %+v", store)
	}
}

func TestParseReferenceAndDereference(t *testing.T) {
	fns, bag, ok := parseSrc(t, "fn f() { let x = 1i32\nlet r1 = &x\nlet r2 = &x\n*r1 == *r2 }")
	if !ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}
	last := fns[0].Fn.Body[len(fns[0].Fn.Body)-1]
	if last.Kind != ast.Binary || last.Binary.Op != ast.OpEq {
		t.Fatalf("got %+v", last)
	}
	if last.Binary.Left.Kind != ast.Dereference || last.Binary.Left.Inner.Kind != ast.Ident {
		t.Fatalf("got %+v", last.Binary.Left)
	}
}

func TestParseIfElifElse(t *testing.T) {
	fns, bag, ok := parseSrc(t, "fn f(): i32 { if true { return 1i32 } elif false { return 2i32 } else { return 3i32 } }")
	if !ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}
	ifNode := fns[0].Fn.Body[0]
	if ifNode.Kind != ast.If || len(ifNode.If.Arms) != 2 || ifNode.If.Else == nil {
		t.Fatalf("got %+v", ifNode.If)
	}
}

func TestNestedFnDefRejected(t *testing.T) {
	_, bag, ok := parseSrc(t, "fn f() { fn g() { return 1i32 } }")
	if ok {
		t.Fatal("expected parse failure")
	}
	if bag.Items()[0].Code != diag.NestedFnDef {
		t.Fatalf("got %v", bag.Items()[0].Code)
	}
}

func TestMultipleFunctionDefinitionsRejected(t *testing.T) {
	_, bag, ok := parseSrc(t, "fn f() { return 1i32 }\nfn f() { return 2i32 }")
	if ok {
		t.Fatal("expected parse failure")
	}
	if bag.Items()[0].Code != diag.MultipleFunctionDefinitions {
		t.Fatalf("got %v", bag.Items()[0].Code)
	}
	if len(bag.Items()[0].Sites) != 1 {
		t.Fatalf("expected a secondary site, got %+v", bag.Items()[0])
	}
}

func TestNonModuleLevelStatementRejected(t *testing.T) {
	_, bag, ok := parseSrc(t, "let x = 1i32")
	if ok {
		t.Fatal("expected parse failure")
	}
	if bag.Items()[0].Code != diag.NonModuleLevelStatement {
		t.Fatalf("got %v", bag.Items()[0].Code)
	}
}

func TestCallParsesArgs(t *testing.T) {
	fns, bag, ok := parseSrc(t, "fn f() { g(1i32, 2i32) }")
	if !ok {
		t.Fatalf("parse failed: %+v", bag.Items())
	}
	call := fns[0].Fn.Body[0]
	if call.Kind != ast.Call || call.Call.Name != "g" || len(call.Call.Args) != 2 {
		t.Fatalf("got %+v", call)
	}
}
