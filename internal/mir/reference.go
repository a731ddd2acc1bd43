package mir

import "mirc/internal/lifetime"

// ReferenceKind is the capability of a reference. The source language only
// has immutable references (no `&mut`), so this is a single-valued type
// today, kept distinct from a bare bool so a future mutable-reference
// kind has somewhere to go without changing every call site.
type ReferenceKind uint8

const (
	Immutable ReferenceKind = iota
)

// BaseKind tags which shape a ReferenceBase has.
type BaseKind uint8

const (
	BaseLiteral BaseKind = iota
	BaseLoadOf
	BaseReference
)

// ReferenceBase is the deepest non-reference producer reached by drilling
// through Copy links from a Reference instruction's operand: a binding
// load, a literal, or another reference.
type ReferenceBase struct {
	Kind     BaseKind
	Name     string // set for BaseLoadOf
	Lifetime lifetime.Lifetime
}

// Equal implements the base-equality rule from the data model: two bases
// are equal iff both are LoadOf the same binding (irrespective of
// captured lifetime), or both are the same literal/reference lifetime.
func (b ReferenceBase) Equal(other ReferenceBase) bool {
	if b.Kind != other.Kind {
		return false
	}
	if b.Kind == BaseLoadOf {
		return b.Name == other.Name
	}
	return b.Lifetime == other.Lifetime
}

// Reference is one reference record produced by the checker's Pass C.
type Reference struct {
	CreatedAt   InstrID // the Reference instruction's own index
	ReferentIdx InstrID
	Kind        ReferenceKind
	Lifetime    lifetime.Lifetime
	Base        ReferenceBase
	OwningBlock BlockID
}
