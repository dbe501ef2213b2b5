package bytecode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"regdis/internal/opcode"
)

// Options control rendering. The zero value renders a plain listing
// with no current-instruction marker and no recursion limit.
type Options struct {
	// Current is the byte offset of the instruction to mark with an
	// arrow, typically the faulting instruction of a frame. Negative
	// disables the marker; the zero value marks offset 0, so use
	// NoCurrent when constructing Options directly.
	Current int

	// FirstLine overrides the code unit's first line number when > 0.
	// Line annotations shift by the difference.
	FirstLine int

	// Depth limits recursion into code objects found in the constant
	// pool. Negative means unlimited; 0 disables recursion.
	Depth int
}

// NoCurrent is a Current value that marks no instruction.
const NoCurrent = -1

// DefaultOptions returns Options for a plain, fully recursive listing.
func DefaultOptions() *Options {
	return &Options{Current: NoCurrent, Depth: -1}
}

// Instructions decodes a code unit into the annotated instruction
// sequence. firstLine, when > 0, overrides the line number reported
// for the first source line. The scan is all-or-nothing: an unknown
// opcode or a partial trailing instruction yields an error and no
// instructions.
func Instructions(tab *opcode.Table, cu *CodeUnit, firstLine int) ([]Instruction, error) {
	lineOffset := 0
	if firstLine > 0 {
		lineOffset = firstLine - cu.FirstLine
	}
	return instructionsBytes(tab, cu.Code, symtabs{
		consts:   cu.Consts,
		names:    cu.Names,
		varnames: cu.Varnames,
		cells:    cu.CellNames(),
		haveVars: true,
	}, lineMap(cu.LineStarts()), lineOffset)
}

// InstructionsBytes decodes a bare buffer with no lookup tables; every
// operand degrades to its raw index form.
func InstructionsBytes(tab *opcode.Table, code []byte) ([]Instruction, error) {
	return instructionsBytes(tab, code, symtabs{}, nil, 0)
}

func instructionsBytes(tab *opcode.Table, code []byte, st symtabs, linestarts map[int]int, lineOffset int) ([]Instruction, error) {
	raws, err := scan(tab, code)
	if err != nil {
		return nil, err
	}
	labels := make(map[int]bool)
	for _, r := range raws {
		if r.info.Branch {
			labels[r.offset+signAdjust(r.imm[len(r.imm)-1])] = true
		}
	}
	insts := make([]Instruction, len(raws))
	for i, r := range raws {
		startsLine := 0
		if line, ok := linestarts[r.offset]; ok {
			startsLine = line + lineOffset
		}
		argval, argrepr := resolve(tab, r.info, r.offset, r.imm, st)
		insts[i] = Instruction{
			Opname:       r.info.Name,
			Opcode:       r.op,
			Imm:          r.imm,
			Argval:       argval,
			Argrepr:      argrepr,
			Offset:       r.offset,
			StartsLine:   startsLine,
			IsJumpTarget: labels[r.offset],
		}
	}
	return insts, nil
}

// Disassemble renders a code unit as an aligned listing, then recurses
// into code objects in the constant pool, each introduced by a
// "Disassembly of" header.
func Disassemble(w io.Writer, tab *opcode.Table, cu *CodeUnit, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := disassembleUnit(w, tab, cu, opts); err != nil {
		return err
	}
	return disassembleNested(w, tab, cu, opts.Depth)
}

// Text renders the listing into a string.
func Text(tab *opcode.Table, cu *CodeUnit, opts *Options) (string, error) {
	var b strings.Builder
	if err := Disassemble(&b, tab, cu, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// TextBytes renders a bare instruction buffer: no lookup tables, no
// line column, raw index operands.
func TextBytes(tab *opcode.Table, code []byte) (string, error) {
	insts, err := InstructionsBytes(tab, code)
	if err != nil {
		return "", err
	}
	offsetWidth := 4
	if maxOffset := len(code) - 2; maxOffset >= 10000 {
		offsetWidth = len(strconv.Itoa(maxOffset))
	}
	var b strings.Builder
	for _, in := range insts {
		b.WriteString(in.format(0, false, offsetWidth))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func disassembleNested(w io.Writer, tab *opcode.Table, cu *CodeUnit, depth int) error {
	if depth == 0 {
		return nil
	}
	if depth > 0 {
		depth--
	}
	for _, c := range cu.Consts {
		if c.Kind != ConstCode || c.Code == nil {
			continue
		}
		fmt.Fprintf(w, "\nDisassembly of %s:\n", c.Repr())
		sub := &Options{Current: NoCurrent, Depth: 0}
		if err := disassembleUnit(w, tab, c.Code, sub); err != nil {
			return err
		}
		if err := disassembleNested(w, tab, c.Code, depth); err != nil {
			return err
		}
	}
	return nil
}

func disassembleUnit(w io.Writer, tab *opcode.Table, cu *CodeUnit, opts *Options) error {
	lineOffset := 0
	if opts.FirstLine > 0 {
		lineOffset = opts.FirstLine - cu.FirstLine
	}
	starts := cu.LineStarts()
	showLineno := len(starts) > 0

	linenoWidth := 0
	if showLineno {
		maxLine := 0
		for _, s := range starts {
			if s.Line > maxLine {
				maxLine = s.Line
			}
		}
		maxLine += lineOffset
		linenoWidth = 3
		if maxLine >= 1000 {
			linenoWidth = len(strconv.Itoa(maxLine))
		}
	}
	offsetWidth := 4
	if maxOffset := len(cu.Code) - 2; maxOffset >= 10000 {
		offsetWidth = len(strconv.Itoa(maxOffset))
	}

	insts, err := Instructions(tab, cu, opts.FirstLine)
	if err != nil {
		return err
	}
	for _, in := range insts {
		if showLineno && in.StartsLine != 0 && in.Offset > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, in.format(linenoWidth, in.Offset == opts.Current, offsetWidth))
	}

	if len(cu.Cell2Reg) > 0 {
		fmt.Fprintf(w, "  Cell variables: %s\n", formatIntList(cu.Cell2Reg))
	}
	if len(cu.Free2Reg) > 0 {
		fmt.Fprintf(w, "  Free variables: %s\n", formatIntList(cu.Free2Reg))
	}
	if len(cu.ExcHandlers) > 0 {
		fmt.Fprintf(w, "  Exception handlers (%d):\n", len(cu.ExcHandlers))
		fmt.Fprintln(w, "    start  ->  (handler,  end)")
		for _, h := range cu.ExcHandlers {
			fmt.Fprintf(w, "     %4d  ->      %4d, %4d  [reg=%d]\n", h.Start, h.Handler, h.End, h.Reg)
		}
	}
	return nil
}

func formatIntList(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
