package diag

import "fmt"

// Code is one of the stable Ennn diagnostic codes from the language's error
// catalog. The numeric value is the code's suffix (1 for E001, etc).
type Code uint16

const (
	InvalidTok Code = iota + 1
	InvalidLiteralForRadix
	InvalidFlag
	TypeMismatch
	BindingNotFound
	DuplicateFlag
	MovedBinding
	BindingNotMutable
	MultipleImmutableReferences
	TraitNotImplemented
	InvalidSpecifiedNumericType
	NestedFnDef
	MultipleFunctionDefinitions
	NonModuleLevelStatement
	FunctionNotFound
	TypeNotFound
	ReturnReference
	DerefNonref
	CannotMoveOutOfBinding
	CannotMoveOutOfNonCopy
	FloatingElse
	FloatingElif
	ValueNotLiveEnough
	MissingElseClause
)

var codeNames = map[Code]string{
	InvalidTok:                  "InvalidTok",
	InvalidLiteralForRadix:      "InvalidLiteralForRadix",
	InvalidFlag:                 "InvalidFlag",
	TypeMismatch:                "TypeMismatch",
	BindingNotFound:             "BindingNotFound",
	DuplicateFlag:               "DuplicateFlag",
	MovedBinding:                "MovedBinding",
	BindingNotMutable:           "BindingNotMutable",
	MultipleImmutableReferences: "MultipleImmutableReferences",
	TraitNotImplemented:         "TraitNotImplemented",
	InvalidSpecifiedNumericType: "InvalidSpecifiedNumericType",
	NestedFnDef:                 "NestedFnDef",
	MultipleFunctionDefinitions: "MultipleFunctionDefinitions",
	NonModuleLevelStatement:     "NonModuleLevelStatement",
	FunctionNotFound:            "FunctionNotFound",
	TypeNotFound:                "TypeNotFound",
	ReturnReference:             "ReturnReference",
	DerefNonref:                 "DerefNonref",
	CannotMoveOutOfBinding:      "CannotMoveOutOfBinding",
	CannotMoveOutOfNonCopy:      "CannotMoveOutOfNonCopy",
	FloatingElse:                "FloatingElse",
	FloatingElif:                "FloatingElif",
	ValueNotLiveEnough:          "ValueNotLiveEnough",
	MissingElseClause:           "MissingElseClause",
}

// Name returns the bare identifier for the code, e.g. "MovedBinding".
func (c Code) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", c)
}

// String renders the stable "Ennn" form, e.g. "E007".
func (c Code) String() string {
	return fmt.Sprintf("E%03d", c)
}
