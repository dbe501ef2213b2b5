package bytecode

import (
	"fmt"
	"strconv"
	"strings"

	"regdis/internal/opcode"
)

// Instruction is one fully annotated bytecode operation.
type Instruction struct {
	Opname string `json:"opname"`
	Opcode byte   `json:"opcode"`
	Imm    []int  `json:"imm"` // raw immediates as decoded

	// Argval is the resolved operand value: nil for no operands, the
	// single resolved value for one, or []any for several.
	Argval  any    `json:"-"`
	Argrepr string `json:"argrepr"` // human-readable operand text

	Offset       int  `json:"offset"`
	StartsLine   int  `json:"startsLine,omitempty"` // 0 when this opcode starts no line
	IsJumpTarget bool `json:"isJumpTarget"`
}

const (
	opnameWidth = 20
	opargWidth  = 5
)

// format renders the instruction as one listing row. linenoWidth of 0
// omits the line column entirely; current inserts the "-->" marker.
func (in Instruction) format(linenoWidth int, current bool, offsetWidth int) string {
	var fields []string
	if linenoWidth > 0 {
		if in.StartsLine != 0 {
			fields = append(fields, fmt.Sprintf("%*d", linenoWidth, in.StartsLine))
		} else {
			fields = append(fields, strings.Repeat(" ", linenoWidth))
		}
	}
	if current {
		fields = append(fields, "-->")
	} else {
		fields = append(fields, "   ")
	}
	if in.IsJumpTarget {
		fields = append(fields, ">>")
	} else {
		fields = append(fields, "  ")
	}
	fields = append(fields, fmt.Sprintf("%*d", offsetWidth, in.Offset))
	fields = append(fields, fmt.Sprintf("%-*s", opnameWidth, in.Opname))
	if len(in.Imm) > 0 {
		args := make([]string, len(in.Imm))
		for i, v := range in.Imm {
			args[i] = strconv.Itoa(v)
		}
		fields = append(fields, fmt.Sprintf("%*s", opargWidth, strings.Join(args, " ")))
		if in.Argrepr != "" {
			fields = append(fields, "("+in.Argrepr+")")
		}
	}
	return strings.TrimRight(strings.Join(fields, " "), " ")
}

// symtabs bundles the lookup tables operand resolution runs against.
// Nil tables degrade resolution to raw indices.
type symtabs struct {
	consts   []Const  // nil when unavailable
	names    []string // nil when unavailable
	varnames []string // nil when unavailable
	cells    []string // nil when unavailable
	haveVars bool
}

func (s symtabs) constInfo(idx int) (any, string) {
	if s.consts == nil || idx < 0 || idx >= len(s.consts) {
		return idx, strconv.Itoa(idx)
	}
	c := s.consts[idx]
	return c.Value(), c.Repr()
}

func (s symtabs) nameInfo(idx int, names []string) (any, string) {
	if names == nil || idx < 0 || idx >= len(names) {
		return idx, strconv.Itoa(idx)
	}
	return names[idx], names[idx]
}

// reg formats a register number: the local variable name when the
// register is in the named range, a ".tN" temporary label beyond it.
func (s symtabs) reg(r int) string {
	if !s.haveVars {
		return strconv.Itoa(r)
	}
	if r < len(s.varnames) {
		return s.varnames[r]
	}
	return ".t" + strconv.Itoa(r-len(s.varnames))
}

// resolve computes the resolved value and operand text for one decoded
// instruction. Per-operand resolution runs first; composite render
// styles then replace the joined text while keeping every resolved
// value.
func resolve(tab *opcode.Table, info *opcode.Info, offset int, imm []int, st symtabs) (any, string) {
	if len(imm) == 0 {
		return nil, ""
	}
	argvals := make([]any, len(imm))
	argreprs := make([]string, len(imm))
	for i, arg := range imm {
		kind := opcode.Lit
		if i < len(info.Imm) {
			kind = info.Imm[i]
		}
		var val any = arg
		var repr string
		switch kind {
		case opcode.Jump:
			target := offset + signAdjust(arg)
			val = target
			repr = "to " + strconv.Itoa(target)
		case opcode.Const:
			val, repr = st.constInfo(arg)
		case opcode.Name:
			val, repr = st.nameInfo(arg, st.names)
		case opcode.Cell:
			val, repr = st.nameInfo(arg, st.cells)
		case opcode.Reg, opcode.Base:
			repr = st.reg(arg)
		case opcode.Intrinsic:
			repr = tab.Intrinsic(arg)
		default:
			repr = strconv.Itoa(arg)
		}
		argvals[i] = val
		argreprs[i] = repr
	}

	var argrepr string
	switch info.Style {
	case opcode.StyleCall:
		argrepr = fmt.Sprintf("%s to %s", st.reg(imm[0]), st.reg(imm[0]+imm[1]))
	case opcode.StyleAttrLoad:
		argrepr = fmt.Sprintf("%s.%s", argreprs[0], argreprs[1])
	case opcode.StyleAttrStore:
		argrepr = fmt.Sprintf("%s.%s=acc", argreprs[0], argreprs[1])
	case opcode.StyleSubscrStore:
		argrepr = fmt.Sprintf("%s[%s]=acc", argreprs[0], argreprs[1])
	case opcode.StyleSubscrLoad:
		argrepr = fmt.Sprintf("%s[acc]", argreprs[0])
	case opcode.StyleMove:
		argrepr = fmt.Sprintf("%s <- %s", argreprs[0], argreprs[1])
	case opcode.StyleUnpack:
		argrepr = fmt.Sprintf("%s argcnt=%s after=%s", argreprs[0], argreprs[1], argreprs[2])
	default:
		argrepr = strings.Join(argreprs, "; ")
	}

	if len(argvals) == 1 {
		return argvals[0], argrepr
	}
	return argvals, argrepr
}
