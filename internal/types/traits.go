package types

// TraitKind is one of the four built-in trait capabilities. This set is
// closed — there is no open-world trait extensibility in this language
// (see the repo's non-goals).
type TraitKind uint8

const (
	Add TraitKind = iota
	Eq
	Ne
	Copy
)

func (k TraitKind) String() string {
	switch k {
	case Add:
		return "Add"
	case Eq:
		return "Eq"
	case Ne:
		return "Ne"
	case Copy:
		return "Copy"
	default:
		return "?"
	}
}

// TypeCheckThunk validates and computes the result type for a binary
// operation over (left, right). It reports whether the operand types are
// compatible; the caller raises TypeMismatch on false.
type TypeCheckThunk func(left, right Type) (result Type, ok bool)

// CodegenThunk is the lowerer's hook for materializing this trait's
// operation. Its shape is intentionally opaque here: codegen is the
// lowerer's concern (an external collaborator to this package, see the
// lowerer's contract), not the type registry's.
type CodegenThunk func(ctx any, left, right Type) any

// TraitRecord describes one trait a type may implement. Copy carries
// neither thunk: it is a pure capability bit consulted directly by the
// MIR builder and checker, never invoked as an operation.
type TraitRecord struct {
	Kind             TraitKind
	ExpectedRefDepth int
	TypeCheck        TypeCheckThunk // nil for Copy
	Codegen          CodegenThunk   // nil for Copy
}

// TraitTable maps a trait kind to its record. Shared by reference across
// every Type instance of a given BasicKind — the table is a property of
// the kind, not of a particular ref-depth instance.
type TraitTable map[TraitKind]TraitRecord

// equalOperandsSkeleton implements the type-check shared by Eq and Ne:
// both operands must be equal types (ignoring lifetime, per Type.Equal),
// and the result is always bool.
func equalOperandsSkeleton(boolType Type) TypeCheckThunk {
	return func(left, right Type) (Type, bool) {
		if !left.Equal(right) {
			return Type{}, false
		}
		return boolType, true
	}
}

// addSkeleton implements the Add type-check: both operands must be equal
// types, and the result is that same type.
func addSkeleton() TypeCheckThunk {
	return func(left, right Type) (Type, bool) {
		if !left.Equal(right) {
			return Type{}, false
		}
		return left, true
	}
}
