package bytecode

import (
	"fmt"
	"strings"
)

// Compiler flag bits carried by a code unit.
const (
	FlagOptimized         uint32 = 1 << 0
	FlagNewLocals         uint32 = 1 << 1
	FlagVarArgs           uint32 = 1 << 2
	FlagVarKeywords       uint32 = 1 << 3
	FlagNested            uint32 = 1 << 4
	FlagGenerator         uint32 = 1 << 5
	FlagNoFree            uint32 = 1 << 6
	FlagCoroutine         uint32 = 1 << 7
	FlagIterableCoroutine uint32 = 1 << 8
	FlagAsyncGenerator    uint32 = 1 << 9
)

var flagNames = map[uint32]string{
	FlagOptimized:         "OPTIMIZED",
	FlagNewLocals:         "NEWLOCALS",
	FlagVarArgs:           "VARARGS",
	FlagVarKeywords:       "VARKEYWORDS",
	FlagNested:            "NESTED",
	FlagGenerator:         "GENERATOR",
	FlagNoFree:            "NOFREE",
	FlagCoroutine:         "COROUTINE",
	FlagIterableCoroutine: "ITERABLE_COROUTINE",
	FlagAsyncGenerator:    "ASYNC_GENERATOR",
}

// PrettyFlags renders a flag word as a comma-separated name list,
// falling back to hex for unknown bits.
func PrettyFlags(flags uint32) string {
	var names []string
	for i := 0; i < 32; i++ {
		bit := uint32(1) << i
		if flags&bit == 0 {
			continue
		}
		name, ok := flagNames[bit]
		if !ok {
			name = fmt.Sprintf("0x%x", bit)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return "0x0"
	}
	return strings.Join(names, ", ")
}

// Info returns a formatted metadata summary of a code unit: counts,
// flags, and the constant and name tables.
func Info(cu *CodeUnit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:              %s\n", cu.Name)
	fmt.Fprintf(&b, "Filename:          %s\n", cu.Filename)
	fmt.Fprintf(&b, "Argument count:    %d\n", cu.ArgCount)
	fmt.Fprintf(&b, "Positional-only arguments: %d\n", cu.PosOnlyArgs)
	fmt.Fprintf(&b, "Kw-only arguments: %d\n", cu.KwOnlyArgs)
	fmt.Fprintf(&b, "Number of locals:  %d\n", cu.NLocals)
	fmt.Fprintf(&b, "Frame size:        %d\n", cu.FrameSize)
	fmt.Fprintf(&b, "Flags:             %s\n", PrettyFlags(cu.Flags))
	if len(cu.Consts) > 0 {
		fmt.Fprintln(&b, "Constants:")
		for i, c := range cu.Consts {
			fmt.Fprintf(&b, "%4d: %s\n", i, c.Repr())
		}
	}
	if len(cu.Names) > 0 {
		fmt.Fprintln(&b, "Names:")
		for i, n := range cu.Names {
			fmt.Fprintf(&b, "%4d: %s\n", i, n)
		}
	}
	if len(cu.Varnames) > 0 {
		fmt.Fprintln(&b, "Variable names:")
		for i, n := range cu.Varnames {
			fmt.Fprintf(&b, "%4d: %s\n", i, n)
		}
	}
	if len(cu.Freevars) > 0 {
		fmt.Fprintln(&b, "Free variables:")
		for i, n := range cu.Freevars {
			fmt.Fprintf(&b, "%4d: %s\n", i, n)
		}
	}
	if len(cu.Cellvars) > 0 {
		fmt.Fprintln(&b, "Cell variables:")
		for i, n := range cu.Cellvars {
			fmt.Fprintf(&b, "%4d: %s\n", i, n)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
