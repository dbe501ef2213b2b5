package bytecode

import (
	"strings"
	"testing"
)

func TestPrettyFlags(t *testing.T) {
	tests := []struct {
		flags uint32
		want  string
	}{
		{0, "0x0"},
		{FlagOptimized, "OPTIMIZED"},
		{FlagOptimized | FlagNewLocals | FlagNoFree, "OPTIMIZED, NEWLOCALS, NOFREE"},
		{FlagGenerator | FlagCoroutine, "GENERATOR, COROUTINE"},
		{FlagOptimized | 1<<20, "OPTIMIZED, 0x100000"},
		{1 << 30, "0x40000000"},
	}
	for _, tt := range tests {
		if got := PrettyFlags(tt.flags); got != tt.want {
			t.Errorf("PrettyFlags(%#x) = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

func TestInfo(t *testing.T) {
	cu := &CodeUnit{
		Name:      "f",
		Filename:  "mod.py",
		ArgCount:  2,
		NLocals:   3,
		FrameSize: 6,
		Flags:     FlagOptimized | FlagNewLocals,
		Consts:    []Const{None(), Str("doc")},
		Names:     []string{"print"},
		Varnames:  []string{"a", "b", "tmp"},
		Cellvars:  []string{"a"},
	}
	got := Info(cu)
	for _, want := range []string{
		"Name:              f",
		"Filename:          mod.py",
		"Argument count:    2",
		"Number of locals:  3",
		"Frame size:        6",
		"Flags:             OPTIMIZED, NEWLOCALS",
		"Constants:\n   0: None\n   1: 'doc'",
		"Names:\n   0: print",
		"Variable names:\n   0: a\n   1: b\n   2: tmp",
		"Cell variables:\n   0: a",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Info output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Free variables:") {
		t.Error("Info listed free variables for a unit with none")
	}
}
