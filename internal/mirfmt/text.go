// Package mirfmt renders a built mir.Func in two forms: a human-readable
// text dump for `mirc check --mir-dump` and a msgpack-encoded snapshot for
// tooling that wants to consume MIR without re-implementing this compiler's
// parser.
package mirfmt

import (
	"fmt"
	"io"
	"strings"

	"mirc/internal/mir"
)

// Text writes a human-readable dump of f to w: one indented line per
// instruction, nested under the if/else blocks that contain them.
func Text(w io.Writer, f *mir.Func) {
	fmt.Fprintf(w, "fn %s: %s {\n", f.Name, f.ReturnType.QualifiedName())
	dumpInstrs(w, f, f.Blocks[f.Entry].Instructions, 1)
	fmt.Fprintln(w, "}")

	if len(f.ReferenceOrder) == 0 {
		return
	}
	fmt.Fprintln(w, "references:")
	for _, id := range f.ReferenceOrder {
		ref := f.References[id]
		fmt.Fprintf(w, "  .%d: base=%s lifetime=%s\n", id, describeBase(ref.Base), ref.Lifetime)
	}
}

func dumpInstrs(w io.Writer, f *mir.Func, ids []mir.InstrID, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, id := range ids {
		instr := f.Instr(id)
		line := formatInstr(instr, id)
		if instr.DropBinding != nil {
			line += fmt.Sprintf(" ; dropbinding %s", instr.DropBinding.Name)
		}
		fmt.Fprintf(w, "%s.%d: %s\n", pad, id, line)

		if instr.Op != mir.OpIf {
			continue
		}
		for i, arm := range instr.If.Arms {
			fmt.Fprintf(w, "%sifarm #%d {\n", pad+"  ", i)
			dumpInstrs(w, f, arm.Instrs, indent+2)
			fmt.Fprintf(w, "%s}\n", pad+"  ")
		}
		if instr.If.Else != nil {
			fmt.Fprintf(w, "%selse {\n", pad+"  ")
			dumpInstrs(w, f, instr.If.Else.Instrs, indent+2)
			fmt.Fprintf(w, "%s}\n", pad+"  ")
		}
	}
}

func formatInstr(instr *mir.Instr, id mir.InstrID) string {
	resultSuffix := ""
	if instr.ResultType != nil {
		resultSuffix = fmt.Sprintf(" -> %s", instr.ResultType.QualifiedName())
	}
	switch instr.Op {
	case mir.OpIntLit:
		return fmt.Sprintf("intlit %s%s", instr.IntLitText, resultSuffix)
	case mir.OpBoolLit:
		return fmt.Sprintf("boollit %t%s", instr.BoolLit, resultSuffix)
	case mir.OpAdd, mir.OpEq, mir.OpNe:
		return fmt.Sprintf("%s .%d, .%d%s", instr.Op, instr.Left, instr.Right, resultSuffix)
	case mir.OpDeclare:
		if instr.DeclareIsMut {
			return fmt.Sprintf("declare mut %s", instr.DeclareName)
		}
		return fmt.Sprintf("declare %s", instr.DeclareName)
	case mir.OpStore:
		return fmt.Sprintf("store %s, .%d", instr.StoreName, instr.StoreRight)
	case mir.OpLoad:
		return fmt.Sprintf("load %s%s", instr.LoadName, resultSuffix)
	case mir.OpOwn:
		return fmt.Sprintf("own .%d", instr.Operand)
	case mir.OpReference:
		return fmt.Sprintf("reference .%d%s", instr.Operand, resultSuffix)
	case mir.OpCopy:
		return fmt.Sprintf("copy .%d%s", instr.Operand, resultSuffix)
	case mir.OpDeref:
		return fmt.Sprintf("deref .%d%s", instr.Operand, resultSuffix)
	case mir.OpReturn:
		return fmt.Sprintf("return .%d", instr.Operand)
	case mir.OpCall:
		return fmt.Sprintf("call %s%s", instr.CallName, resultSuffix)
	case mir.OpIf:
		return fmt.Sprintf("if%s", resultSuffix)
	default:
		_ = id
		return "?"
	}
}

func describeBase(base mir.ReferenceBase) string {
	switch base.Kind {
	case mir.BaseLiteral:
		return "literal"
	case mir.BaseLoadOf:
		return fmt.Sprintf("load(%s)", base.Name)
	case mir.BaseReference:
		return "reference"
	default:
		return "?"
	}
}
