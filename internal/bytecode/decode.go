package bytecode

import (
	"encoding/binary"
	"fmt"

	"regdis/internal/opcode"
)

// UnknownOpcodeError reports an opcode byte with no table entry. The
// buffer is assumed corrupt and nothing decoded before the bad byte is
// returned.
type UnknownOpcodeError struct {
	Op     byte
	Offset int
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("bytecode: unknown opcode %d at offset %d", e.Op, e.Offset)
}

// TruncatedError reports an instruction whose encoded size runs past
// the end of the buffer.
type TruncatedError struct {
	Op     byte
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("bytecode: truncated instruction at offset %d: opcode %d needs %d bytes, %d left",
		e.Offset, e.Op, e.Need, e.Have)
}

// raw is one decoded instruction before operand resolution.
type raw struct {
	offset int
	op     byte
	info   *opcode.Info
	imm    []int
}

// scan decodes the whole buffer into raw instructions. Instruction
// sizes tile the buffer exactly; a trailing partial instruction or an
// unknown opcode aborts the scan with no result.
func scan(tab *opcode.Table, code []byte) ([]raw, error) {
	var out []raw
	for i := 0; i < len(code); {
		offset := i
		op := code[i]
		wide := false
		if op == opcode.Wide {
			if i+1 >= len(code) {
				return nil, &TruncatedError{Op: op, Offset: offset, Need: 2, Have: len(code) - i}
			}
			wide = true
			op = code[i+1]
		}
		info, ok := tab.Lookup(op)
		if !ok {
			return nil, &UnknownOpcodeError{Op: op, Offset: offset}
		}
		size := info.Size
		if wide {
			size = info.WideSize
		}
		if i+size > len(code) {
			return nil, &TruncatedError{Op: op, Offset: offset, Need: size, Have: len(code) - i}
		}
		out = append(out, raw{
			offset: offset,
			op:     op,
			info:   info,
			imm:    decodeImm(code, offset, info, wide),
		})
		i += size
	}
	return out, nil
}

// decodeImm extracts the immediate operands of one instruction.
// Fields follow the opcode byte (and wide prefix) with no padding,
// little-endian, consumed left to right. Jump operands are
// sign-interpreted; everything else is unsigned.
func decodeImm(code []byte, offset int, info *opcode.Info, wide bool) []int {
	if len(info.Imm) == 0 {
		return nil
	}
	pos := offset + 1
	if wide {
		pos++
	}
	imm := make([]int, len(info.Imm))
	for i, kind := range info.Imm {
		width := kind.Width(wide)
		field := code[pos : pos+width]
		var v int
		switch width {
		case 1:
			v = int(field[0])
		case 2:
			u := binary.LittleEndian.Uint16(field)
			if kind.Signed() {
				v = int(int16(u))
			} else {
				v = int(u)
			}
		case 4:
			u := binary.LittleEndian.Uint32(field)
			if kind.Signed() {
				v = int(int32(u))
			} else {
				v = int(u)
			}
		}
		imm[i] = v
		pos += width
	}
	return imm
}

// signAdjust maps a raw 16-bit jump immediate onto its signed value.
// Values decoded sign-correct already pass through unchanged.
func signAdjust(v int) int {
	if v > 0x7FFF {
		v -= 0x10000
	}
	return v
}
