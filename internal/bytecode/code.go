// Package bytecode decodes and renders register-based bytecode: it
// turns a raw instruction buffer into a structured instruction stream
// with resolved operands, source line annotations, and jump target
// marks, and formats the result as an aligned textual listing.
package bytecode

// ExcHandler is one exception handler table entry. The range
// [Start, End) is the protected region; Reg is the register the active
// exception is saved into while the handler runs.
type ExcHandler struct {
	Start   int `json:"start" cbor:"1,keyasint"`
	Handler int `json:"handler" cbor:"2,keyasint"`
	End     int `json:"end" cbor:"3,keyasint"`
	Reg     int `json:"reg" cbor:"4,keyasint"`
}

// CodeUnit is a compiled code object: the instruction buffer plus the
// lookup tables the disassembler resolves immediates against. The
// disassembler only reads it; a nil or empty table degrades the
// corresponding operand resolution to raw indices.
type CodeUnit struct {
	Name     string `json:"name" cbor:"1,keyasint"`
	Filename string `json:"filename" cbor:"2,keyasint"`

	Code     []byte   `json:"-" cbor:"3,keyasint"`
	Consts   []Const  `json:"-" cbor:"4,keyasint"`
	Names    []string `json:"names" cbor:"5,keyasint"`
	Varnames []string `json:"varnames" cbor:"6,keyasint"`
	Cellvars []string `json:"cellvars" cbor:"7,keyasint"`
	Freevars []string `json:"freevars" cbor:"8,keyasint"`

	FirstLine int    `json:"firstLine" cbor:"9,keyasint"`
	LineTable []byte `json:"-" cbor:"10,keyasint"`

	Cell2Reg    []int        `json:"cell2reg" cbor:"11,keyasint"`
	Free2Reg    []int        `json:"free2reg" cbor:"12,keyasint"`
	ExcHandlers []ExcHandler `json:"excHandlers" cbor:"13,keyasint"`

	ArgCount    int    `json:"argCount" cbor:"14,keyasint"`
	PosOnlyArgs int    `json:"posOnlyArgs" cbor:"15,keyasint"`
	KwOnlyArgs  int    `json:"kwOnlyArgs" cbor:"16,keyasint"`
	NLocals     int    `json:"nlocals" cbor:"17,keyasint"`
	FrameSize   int    `json:"frameSize" cbor:"18,keyasint"`
	Flags       uint32 `json:"flags" cbor:"19,keyasint"`
}

// CellNames returns the combined cell and free variable name table, in
// the order cell/free immediates index it.
func (cu *CodeUnit) CellNames() []string {
	if len(cu.Cellvars) == 0 && len(cu.Freevars) == 0 {
		return nil
	}
	names := make([]string, 0, len(cu.Cellvars)+len(cu.Freevars))
	names = append(names, cu.Cellvars...)
	return append(names, cu.Freevars...)
}

// LineStarts decodes the code unit's line table.
func (cu *CodeUnit) LineStarts() []LineStart {
	return LineStarts(cu.LineTable, cu.FirstLine, len(cu.Code))
}
