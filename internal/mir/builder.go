// Package mir implements the linearized mid-level IR this compiler checks
// and lowers: the AST-to-MIR builder (this file and its siblings) and the
// move/lifetime/aliasing checker (see internal/check).
package mir

import (
	"math/big"

	"mirc/internal/ast"
	"mirc/internal/diag"
	"mirc/internal/types"
)

// Builder linearizes one function body's AST into a flat MIR instruction
// list plus a tree of lexical blocks. Each function gets its own Builder —
// there is no aliasing across functions (see the concurrency & resource
// model).
type Builder struct {
	reg      *types.Registry
	reporter diag.Reporter
	funcSigs map[string]types.Type // function name -> declared return type

	f          *Func
	curBlock   BlockID
	blockStack []BlockID
}

// NewBuilder constructs a Builder. funcSigs must contain every function in
// the module (including fn itself) so direct calls can resolve a return
// type without requiring a forward declaration pass of its own.
func NewBuilder(reg *types.Registry, funcSigs map[string]types.Type, r diag.Reporter) *Builder {
	return &Builder{reg: reg, reporter: r, funcSigs: funcSigs}
}

// Build lowers fn's AST body into a Func. It does not run the checker —
// see internal/check for the move/lifetime/aliasing passes that follow.
func (b *Builder) Build(fn *ast.Node) (*Func, bool) {
	retType := b.reg.Builtin(types.Void)
	if fn.Fn.ReturnType != "" {
		resolved, ok := b.reg.Resolve(fn.Fn.ReturnType)
		if !ok {
			diag.NewError(b.reporter, diag.TypeNotFound, fn.Pos, "type '%s' not found", fn.Fn.ReturnType).Emit()
			return nil, false
		}
		retType = resolved
	}

	b.f = &Func{Name: fn.Fn.Name, Params: fn.Fn.Params, ReturnType: retType}
	root := newBlock(0, []BlockID{0})
	b.f.Blocks = append(b.f.Blocks, root)
	b.f.Entry = 0
	b.curBlock = 0

	for _, stmt := range fn.Fn.Body {
		if !b.emitStmt(stmt) {
			return nil, false
		}
	}
	return b.f, true
}

// emit appends instr to the flat list and to the current block's
// instruction span, returning its assigned (permanent) index.
func (b *Builder) emit(instr Instr) InstrID {
	instr.Block = b.curBlock
	id := InstrID(len(b.f.Instrs))
	b.f.Instrs = append(b.f.Instrs, instr)
	blk := b.f.Blocks[b.curBlock]
	blk.Instructions = append(blk.Instructions, id)
	return id
}

func (b *Builder) openChildBlock() BlockID {
	parentChain := b.f.Blocks[b.curBlock].ParentChain
	id := BlockID(len(b.f.Blocks))
	chain := make([]BlockID, 0, len(parentChain)+1)
	chain = append(chain, id)
	chain = append(chain, parentChain...)
	b.f.Blocks = append(b.f.Blocks, newBlock(id, chain))
	b.blockStack = append(b.blockStack, b.curBlock)
	b.curBlock = id
	return id
}

func (b *Builder) closeChildBlock() {
	b.curBlock = b.blockStack[len(b.blockStack)-1]
	b.blockStack = b.blockStack[:len(b.blockStack)-1]
}

func (b *Builder) resolveBinding(name string) (*Block, BindingInfo, bool) {
	return b.f.Blocks[b.curBlock].resolveIn(b.f.Blocks, name)
}

// newBigIntFromDigits parses the lexer's already-underscore-stripped digit
// text. The lexer only ever hands the parser a string of ASCII digits, so
// the only failure mode here is an empty literal.
func newBigIntFromDigits(text string) (*big.Int, bool) {
	val, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, false
	}
	return val, true
}

// intBounds returns the inclusive [min, max] a basic integer kind can hold.
func intBounds(kind types.BasicKind) (min, max *big.Int) {
	width := kind.Width()
	one := big.NewInt(1)
	span := new(big.Int).Lsh(one, uint(width))
	if kind.IsSigned() {
		half := new(big.Int).Rsh(span, 1)
		min = new(big.Int).Neg(half)
		max = new(big.Int).Sub(half, one)
		return min, max
	}
	min = big.NewInt(0)
	max = new(big.Int).Sub(span, one)
	return min, max
}
