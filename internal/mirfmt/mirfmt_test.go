package mirfmt

import (
	"bytes"
	"strings"
	"testing"

	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/mir"
	"mirc/internal/types"
)

func buildSample(t *testing.T) *mir.Func {
	t.Helper()
	reg := types.NewRegistry()
	bag := diag.NewBag()
	f := &ast.Node{
		Kind: ast.Fn,
		Fn: ast.FnPayload{
			Name:       "f",
			ReturnType: "i32",
			Body: []*ast.Node{
				{Kind: ast.Let, Let: ast.LetPayload{
					Name: "x",
					Init: &ast.Node{Kind: ast.IntLit, IntLit: ast.IntLitPayload{Text: "1", BasicKind: "i32"}},
				}},
				{Kind: ast.Return, Inner: &ast.Node{Kind: ast.Ident, Ident: "x"}},
			},
		},
	}
	b := mir.NewBuilder(reg, map[string]types.Type{}, bag)
	mf, ok := b.Build(f)
	if !ok {
		t.Fatalf("build failed: %+v", bag.Items())
	}
	return mf
}

func TestTextDumpContainsInstructions(t *testing.T) {
	mf := buildSample(t)
	var buf bytes.Buffer
	Text(&buf, mf)
	out := buf.String()

	for _, want := range []string{"fn f: i32 {", "declare x", "intlit 1", "store x", "return", "}"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected text dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestBinaryDumpRoundTripsInstrCount(t *testing.T) {
	mf := buildSample(t)
	data, err := Binary(mf)
	if err != nil {
		t.Fatalf("Binary failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty msgpack output")
	}
}
