// Package opcode describes the register-based bytecode instruction set:
// mnemonics, immediate operand layouts, narrow and wide encodings, and
// the intrinsic function table.
package opcode

import "fmt"

// Wide is the prefix pseudo-opcode. It carries no operands; the byte
// that follows it is the effective opcode, decoded with widened
// immediate fields.
const Wide byte = 118

// Kind classifies a single immediate operand. It determines both the
// encoded field width and how the operand is rendered.
type Kind uint8

const (
	Lit       Kind = iota // plain literal, printed as a number
	Imm16                 // 16-bit literal (same width in wide encoding)
	Jump                  // signed offset relative to the instruction start
	Const                 // index into the constant pool
	Name                  // index into the name table
	Cell                  // index into the cell/free variable name table
	Reg                   // register number
	Base                  // first register of a contiguous range
	Intrinsic             // index into the intrinsic function table
)

// Width returns the encoded size in bytes of an operand of this kind.
func (k Kind) Width(wide bool) int {
	switch k {
	case Imm16:
		return 2
	case Jump:
		if wide {
			return 4
		}
		return 2
	default:
		if wide {
			return 4
		}
		return 1
	}
}

// Signed reports whether the operand is sign-interpreted.
func (k Kind) Signed() bool { return k == Jump }

var kindNames = [...]string{
	Lit:       "lit",
	Imm16:     "imm16",
	Jump:      "jump",
	Const:     "const",
	Name:      "name",
	Cell:      "cell",
	Reg:       "reg",
	Base:      "base",
	Intrinsic: "intrinsic",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Style selects how a multi-operand instruction is rendered. Most
// instructions join their operand texts with "; "; a few have composite
// forms built from the same resolved operands.
type Style uint8

const (
	StyleDefault     Style = iota
	StyleCall              // "rN to rM" register range
	StyleAttrLoad          // "base.name"
	StyleAttrStore         // "base.name=acc"
	StyleSubscrLoad        // "base[acc]"
	StyleSubscrStore       // "base[index]=acc"
	StyleMove              // "dst <- src"
	StyleUnpack            // "base argcnt=N after=M"
)

// Info describes one opcode.
type Info struct {
	Name     string
	Code     byte
	Imm      []Kind
	Size     int // encoded size in bytes, opcode byte included
	WideSize int // encoded size with the wide prefix, both prefix and opcode bytes included
	Branch   bool
	Style    Style
}

// Table is an immutable opcode table. It is constructed once and passed
// by reference into decode and render calls; it is never mutated after
// construction.
type Table struct {
	ops        [256]*Info
	byName     map[string]*Info
	intrinsics []string
}

// NewTable builds a Table from an opcode list and an intrinsic name
// table. Duplicate opcode values or mnemonics are rejected.
func NewTable(ops []Info, intrinsics []string) (*Table, error) {
	t := &Table{
		byName:     make(map[string]*Info, len(ops)),
		intrinsics: intrinsics,
	}
	for i := range ops {
		op := ops[i]
		if t.ops[op.Code] != nil {
			return nil, fmt.Errorf("opcode: duplicate opcode %d (%s and %s)",
				op.Code, t.ops[op.Code].Name, op.Name)
		}
		if _, ok := t.byName[op.Name]; ok {
			return nil, fmt.Errorf("opcode: duplicate mnemonic %s", op.Name)
		}
		t.ops[op.Code] = &op
		t.byName[op.Name] = &op
	}
	return t, nil
}

// Lookup returns the Info for an opcode byte, or false if the value is
// not part of the instruction set.
func (t *Table) Lookup(op byte) (*Info, bool) {
	info := t.ops[op]
	return info, info != nil
}

// ByName returns the Info for a mnemonic.
func (t *Table) ByName(name string) (*Info, bool) {
	info, ok := t.byName[name]
	return info, ok
}

// Ops returns every defined opcode in ascending opcode order.
func (t *Table) Ops() []*Info {
	out := make([]*Info, 0, len(t.byName))
	for _, info := range t.ops {
		if info != nil {
			out = append(out, info)
		}
	}
	return out
}

// Intrinsics returns the intrinsic name table; index 0 is unused.
func (t *Table) Intrinsics() []string {
	out := make([]string, len(t.intrinsics))
	copy(out, t.intrinsics)
	return out
}

// Intrinsic returns the name of the intrinsic function with the given
// index, or its decimal representation if the index is out of range.
func (t *Table) Intrinsic(idx int) string {
	if idx < 0 || idx >= len(t.intrinsics) || t.intrinsics[idx] == "" {
		return fmt.Sprintf("%d", idx)
	}
	return t.intrinsics[idx]
}

var defaultTable = mustTable()

func mustTable() *Table {
	t, err := NewTable(opcodeList, intrinsicNames)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the canonical instruction set table.
func Default() *Table { return defaultTable }
