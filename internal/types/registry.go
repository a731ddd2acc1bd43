package types

import "mirc/internal/lifetime"

// ExternDecl describes an external symbol the registry makes available to
// the lowerer — notably the printf-style sink the checked-overflow trap
// contract (see the lowerer's CheckedOverflow contract) calls into.
type ExternDecl struct {
	Name       string
	ReturnType Type
	Variadic   bool
}

// Registry is the fixed mapping from basic kind to type record, built once
// per compilation. It never mutates after NewRegistry returns.
type Registry struct {
	builtins map[BasicKind]Type
	externs  map[string]ExternDecl
}

// NewRegistry constructs the registry with every builtin kind and its
// fixed trait table, plus the external declarations the lowerer expects.
func NewRegistry() *Registry {
	r := &Registry{
		builtins: make(map[BasicKind]Type),
		externs:  make(map[string]ExternDecl),
	}
	r.populateBuiltins()
	r.populateExterns()
	return r
}

func (r *Registry) populateBuiltins() {
	// boolType's trait table is created empty and filled below; since maps
	// are shared by reference, the bool results the Eq/Ne skeletons return
	// carry the complete table.
	boolType := Type{BasicKind: Bool, Traits: TraitTable{}, Lifetime: lifetime.StaticLifetime()}
	numericAndBoolTraits := func() TraitTable {
		return TraitTable{
			Add:  {Kind: Add, ExpectedRefDepth: 0, TypeCheck: addSkeleton()},
			Eq:   {Kind: Eq, ExpectedRefDepth: 0, TypeCheck: equalOperandsSkeleton(boolType)},
			Ne:   {Kind: Ne, ExpectedRefDepth: 0, TypeCheck: equalOperandsSkeleton(boolType)},
			Copy: {Kind: Copy, ExpectedRefDepth: 0},
		}
	}

	integerKinds := []BasicKind{I8, I16, I32, I64, I128, U8, U16, U32, U64, U128}
	for _, k := range integerKinds {
		r.builtins[k] = Type{BasicKind: k, Traits: numericAndBoolTraits(), Lifetime: lifetime.StaticLifetime()}
	}

	for kind, rec := range numericAndBoolTraits() {
		boolType.Traits[kind] = rec
	}
	r.builtins[Bool] = boolType

	r.builtins[Void] = Type{
		BasicKind: Void,
		Traits:    TraitTable{Copy: {Kind: Copy, ExpectedRefDepth: 0}},
		Lifetime:  lifetime.StaticLifetime(),
	}
}

func (r *Registry) populateExterns() {
	r.externs["printf"] = ExternDecl{
		Name:       "printf",
		ReturnType: r.builtins[I32],
		Variadic:   true,
	}
}

// Builtin returns the canonical Type for a basic kind, at ref depth 0.
func (r *Registry) Builtin(kind BasicKind) Type {
	return r.builtins[kind]
}

// Resolve maps a type-annotation identifier (e.g. "i32", "bool") to its
// registry entry. Unknown names report ok=false; the caller raises
// TypeNotFound.
func (r *Registry) Resolve(name string) (Type, bool) {
	for kind, spelling := range basicKindNames {
		if spelling == name {
			return r.builtins[kind], true
		}
	}
	return Type{}, false
}

// Extern looks up a registered external declaration by name.
func (r *Registry) Extern(name string) (ExternDecl, bool) {
	d, ok := r.externs[name]
	return d, ok
}
