package mir

// InstrID addresses an instruction by its position in a Func's flat
// instruction list. Indices never change once assigned — checking only
// ever substitutes fields in place (see Func.Instrs).
type InstrID int

// NoInstr marks the absence of an instruction reference.
const NoInstr InstrID = -1

// BlockID identifies a lexical block within a Func.
type BlockID int

// NoBlock marks the absence of a block reference.
const NoBlock BlockID = -1

// BindingKey qualifies a binding name by the block that declared it — the
// same name may be redeclared in nested blocks, so identity is always
// {name, block}.
type BindingKey struct {
	Name    string
	BlockID BlockID
}
