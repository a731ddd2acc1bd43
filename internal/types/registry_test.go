package types

import "testing"

func TestBuiltinIntegersImplementAddEqNeCopy(t *testing.T) {
	r := NewRegistry()
	i32 := r.Builtin(I32)
	for _, tr := range []TraitKind{Add, Eq, Ne, Copy} {
		if !i32.Implements(tr) {
			t.Errorf("i32 should implement %v", tr)
		}
	}
}

func TestVoidOnlyImplementsCopy(t *testing.T) {
	r := NewRegistry()
	void := r.Builtin(Void)
	if !void.Implements(Copy) {
		t.Error("void should implement Copy")
	}
	if void.Implements(Add) {
		t.Error("void should not implement Add")
	}
}

func TestReferenceDoesNotImplementAdd(t *testing.T) {
	r := NewRegistry()
	ref := r.Builtin(I32).WithRefDepth(1)
	if ref.Implements(Add) {
		t.Error("a reference to i32 should not implement Add directly")
	}
}

func TestResolveUnknownTypeFails(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Resolve("nope"); ok {
		t.Error("expected Resolve to fail for unknown type name")
	}
}

func TestAddSkeletonRejectsMismatchedOperands(t *testing.T) {
	r := NewRegistry()
	i32, u8 := r.Builtin(I32), r.Builtin(U8)
	rec, _ := i32.Trait(Add)
	if _, ok := rec.TypeCheck(i32, u8); ok {
		t.Error("expected Add skeleton to reject mismatched operand types")
	}
	result, ok := rec.TypeCheck(i32, i32)
	if !ok || !result.Equal(i32) {
		t.Errorf("got %+v, %v", result, ok)
	}
}

func TestEqSkeletonYieldsBool(t *testing.T) {
	r := NewRegistry()
	i32, boolT := r.Builtin(I32), r.Builtin(Bool)
	rec, _ := i32.Trait(Eq)
	result, ok := rec.TypeCheck(i32, i32)
	if !ok || !result.Equal(boolT) {
		t.Errorf("got %+v, %v", result, ok)
	}
}
