package mirfmt

import (
	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"mirc/internal/mir"
)

// funcSnapshot is the wire shape of Binary's msgpack dump: an intentionally
// flat, stable projection of mir.Func that external tooling can decode
// without importing this module.
type funcSnapshot struct {
	Name       string          `msgpack:"name"`
	ReturnType string          `msgpack:"return_type"`
	InstrCount uint32          `msgpack:"instr_count"`
	Instrs     []instrSnapshot `msgpack:"instrs"`
}

type instrSnapshot struct {
	Idx        int    `msgpack:"idx"`
	Op         string `msgpack:"op"`
	ResultType string `msgpack:"result_type,omitempty"`
}

// Binary encodes f as a msgpack document for machine consumption (the
// `--mir-format msgpack` mode).
func Binary(f *mir.Func) ([]byte, error) {
	count, err := safecast.Conv[uint32](len(f.Instrs))
	if err != nil {
		return nil, err
	}

	snap := funcSnapshot{
		Name:       f.Name,
		ReturnType: f.ReturnType.QualifiedName(),
		InstrCount: count,
		Instrs:     make([]instrSnapshot, 0, len(f.Instrs)),
	}
	for idx, instr := range f.Instrs {
		rt := ""
		if instr.ResultType != nil {
			rt = instr.ResultType.QualifiedName()
		}
		snap.Instrs = append(snap.Instrs, instrSnapshot{Idx: idx, Op: instr.Op.String(), ResultType: rt})
	}
	return msgpack.Marshal(snap)
}
