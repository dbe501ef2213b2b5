package bytecode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"regdis/internal/opcode"
)

func TestOperandResolution(t *testing.T) {
	tab := opcode.Default()
	tests := []struct {
		name string
		cu   *CodeUnit
		want string // argrepr of the first instruction
	}{
		{
			name: "const resolves to repr",
			cu: &CodeUnit{
				Code:   []byte{op(t, "LOAD_CONST"), 1},
				Consts: []Const{Int(1), Str("hello")},
			},
			want: "'hello'",
		},
		{
			name: "missing constant pool degrades to index",
			cu: &CodeUnit{
				Code: []byte{op(t, "LOAD_CONST"), 3},
			},
			want: "3",
		},
		{
			name: "register resolves to local name",
			cu: &CodeUnit{
				Code:     []byte{op(t, "LOAD_FAST"), 0},
				Varnames: []string{"x"},
			},
			want: "x",
		},
		{
			name: "register beyond locals is a temporary",
			cu: &CodeUnit{
				Code:     []byte{op(t, "LOAD_FAST"), 2},
				Varnames: []string{"x"},
			},
			want: ".t1",
		},
		{
			name: "name table",
			cu: &CodeUnit{
				Code:  []byte{op(t, "STORE_NAME"), 0},
				Names: []string{"result"},
			},
			want: "result",
		},
		{
			name: "cell and free names share one table",
			cu: &CodeUnit{
				Code:     []byte{op(t, "LOAD_DEREF"), 1},
				Cellvars: []string{"a"},
				Freevars: []string{"b"},
			},
			want: "b",
		},
		{
			name: "intrinsic name",
			cu: &CodeUnit{
				Code: []byte{op(t, "CALL_INTRINSIC_1"), 2},
			},
			want: "PyObject_Repr",
		},
		{
			name: "jump renders its absolute target",
			cu: &CodeUnit{
				Code: []byte{op(t, "RETURN_VALUE"), op(t, "JUMP"), 0xFF, 0xFF},
			},
			want: "", // first instruction has no operands
		},
		{
			name: "plain literal stays numeric",
			cu: &CodeUnit{
				Code: []byte{op(t, "FUNC_HEADER"), 9},
			},
			want: "9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insts, err := Instructions(tab, tt.cu, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got := insts[0].Argrepr; got != tt.want {
				t.Errorf("argrepr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJumpOperandText(t *testing.T) {
	// JUMP at offset 1 with delta -1 targets offset 0.
	cu := &CodeUnit{Code: []byte{op(t, "RETURN_VALUE"), op(t, "JUMP"), 0xFF, 0xFF}}
	insts, err := Instructions(opcode.Default(), cu, 0)
	if err != nil {
		t.Fatal(err)
	}
	jump := insts[1]
	if jump.Argrepr != "to 0" {
		t.Errorf("argrepr = %q, want \"to 0\"", jump.Argrepr)
	}
	if jump.Argval != 0 {
		t.Errorf("argval = %v, want 0", jump.Argval)
	}
	if !insts[0].IsJumpTarget {
		t.Error("offset 0 not marked as jump target")
	}
	if insts[1].IsJumpTarget {
		t.Error("branch instruction spuriously marked as target")
	}
}

func TestCompositeRendering(t *testing.T) {
	tab := opcode.Default()
	varnames := []string{"obj", "key", "val"}
	names := []string{"attr"}
	tests := []struct {
		name string
		code []byte
		want string
	}{
		{"attribute load", []byte{op(t, "LOAD_ATTR"), 0, 0, 4}, "obj.attr"},
		{"attribute store", []byte{op(t, "STORE_ATTR"), 0, 0}, "obj.attr=acc"},
		{"subscript store", []byte{op(t, "STORE_SUBSCR"), 0, 1}, "obj[key]=acc"},
		{"subscript load", []byte{op(t, "BINARY_SUBSCR"), 0}, "obj[acc]"},
		{"move", []byte{op(t, "MOVE"), 0, 1}, "obj <- key"},
		{"copy", []byte{op(t, "COPY"), 2, 0}, "val <- obj"},
		{"call range", []byte{op(t, "CALL_FUNCTION"), 3, 2, 0}, ".t0 to .t2"},
		{"unpack", []byte{op(t, "UNPACK"), 3, 2, 1}, ".t0 argcnt=2 after=1"},
		{"default join", []byte{op(t, "BUILD_TUPLE"), 0, 3}, "obj; 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cu := &CodeUnit{Code: tt.code, Varnames: varnames, Names: names}
			insts, err := Instructions(tab, cu, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got := insts[0].Argrepr; got != tt.want {
				t.Errorf("argrepr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgvalAggregation(t *testing.T) {
	tab := opcode.Default()

	// No operands.
	cu := &CodeUnit{Code: []byte{op(t, "RETURN_VALUE")}}
	insts, err := Instructions(tab, cu, 0)
	if err != nil {
		t.Fatal(err)
	}
	if insts[0].Argval != nil {
		t.Errorf("no-operand argval = %v, want nil", insts[0].Argval)
	}

	// One operand: the resolved value itself.
	cu = &CodeUnit{Code: []byte{op(t, "LOAD_CONST"), 0}, Consts: []Const{Str("s")}}
	insts, err = Instructions(tab, cu, 0)
	if err != nil {
		t.Fatal(err)
	}
	if insts[0].Argval != "s" {
		t.Errorf("single argval = %v, want \"s\"", insts[0].Argval)
	}

	// Several operands: ordered tuple of every resolved value, the
	// composite override notwithstanding.
	cu = &CodeUnit{Code: []byte{op(t, "STORE_ATTR"), 1, 0}, Names: []string{"n"}}
	insts, err = Instructions(tab, cu, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{1, "n"}
	if diff := cmp.Diff(want, insts[0].Argval); diff != "" {
		t.Errorf("argval mismatch (-want +got):\n%s", diff)
	}
}

func TestEndToEndListing(t *testing.T) {
	cu := &CodeUnit{
		Code:   []byte{op(t, "LOAD_CONST"), 0, op(t, "RETURN_VALUE")},
		Consts: []Const{Int(42)},
	}
	insts, err := Instructions(opcode.Default(), cu, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(insts) != 2 {
		t.Fatalf("got %d instructions, want 2", len(insts))
	}
	if insts[0].Opname != "LOAD_CONST" || insts[0].Argval != int64(42) || insts[0].Argrepr != "42" {
		t.Errorf("first instruction = %+v", insts[0])
	}
	if insts[1].Opname != "RETURN_VALUE" || insts[1].Offset != 2 || len(insts[1].Imm) != 0 {
		t.Errorf("second instruction = %+v", insts[1])
	}

	text, err := Text(opcode.Default(), cu, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "" +
		"          0 LOAD_CONST               0 (42)\n" +
		"          2 RETURN_VALUE\n"
	if text != want {
		t.Errorf("listing = %q, want %q", text, want)
	}
}

func TestListingLineColumnAndGrouping(t *testing.T) {
	cu := &CodeUnit{
		Code: []byte{
			op(t, "LOAD_CONST"), 0,
			op(t, "STORE_FAST"), 0,
			op(t, "LOAD_FAST"), 0,
			op(t, "RETURN_VALUE"),
		},
		Consts:    []Const{Int(1)},
		Varnames:  []string{"x"},
		FirstLine: 3,
		LineTable: []byte{4, 1},
	}
	text, err := Text(opcode.Default(), cu, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "" +
		"  3           0 LOAD_CONST               0 (1)\n" +
		"              2 STORE_FAST               0 (x)\n" +
		"\n" +
		"  4           4 LOAD_FAST                0 (x)\n" +
		"              6 RETURN_VALUE\n"
	if text != want {
		t.Errorf("listing mismatch:\ngot:\n%s\nwant:\n%s", text, want)
	}
}

func TestCurrentInstructionMarker(t *testing.T) {
	cu := &CodeUnit{
		Code:   []byte{op(t, "LOAD_CONST"), 0, op(t, "RETURN_VALUE")},
		Consts: []Const{None()},
	}
	text, err := Text(opcode.Default(), cu, &Options{Current: 2, Depth: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "-->       2 RETURN_VALUE") {
		t.Errorf("current marker missing:\n%s", text)
	}
}

func TestJumpTargetMarker(t *testing.T) {
	cu := &CodeUnit{
		Code: []byte{op(t, "JUMP"), 0x03, 0x00, op(t, "RETURN_VALUE")},
	}
	text, err := Text(opcode.Default(), cu, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, ">>    3 RETURN_VALUE") {
		t.Errorf("jump target marker missing:\n%s", text)
	}
}

func TestFirstLineOverride(t *testing.T) {
	cu := &CodeUnit{
		Code:      []byte{op(t, "RETURN_VALUE")},
		FirstLine: 1,
		LineTable: []byte{1, 0},
	}
	insts, err := Instructions(opcode.Default(), cu, 100)
	if err != nil {
		t.Fatal(err)
	}
	if insts[0].StartsLine != 100 {
		t.Errorf("starts line = %d, want 100", insts[0].StartsLine)
	}
}

func TestTrailingTables(t *testing.T) {
	cu := &CodeUnit{
		Code:        []byte{op(t, "RETURN_VALUE")},
		Cell2Reg:    []int{2, 3},
		Free2Reg:    []int{4},
		ExcHandlers: []ExcHandler{{Start: 0, Handler: 8, End: 16, Reg: 5}},
	}
	text, err := Text(opcode.Default(), cu, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"  Cell variables: [2, 3]",
		"  Free variables: [4]",
		"  Exception handlers (1):",
		"    start  ->  (handler,  end)",
		"        0  ->         8,   16  [reg=5]",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("listing missing %q:\n%s", want, text)
		}
	}
}

func TestRecursiveDisassembly(t *testing.T) {
	inner := &CodeUnit{
		Name: "helper",
		Code: []byte{op(t, "RETURN_VALUE")},
	}
	outer := &CodeUnit{
		Name:   "main",
		Code:   []byte{op(t, "LOAD_CONST"), 0, op(t, "RETURN_VALUE")},
		Consts: []Const{Code(inner)},
	}
	text, err := Text(opcode.Default(), outer, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Disassembly of <code object helper>:") {
		t.Errorf("nested disassembly header missing:\n%s", text)
	}

	// Depth 0 disables recursion.
	text, err = Text(opcode.Default(), outer, &Options{Current: NoCurrent, Depth: 0})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(text, "Disassembly of") {
		t.Errorf("depth 0 still recursed:\n%s", text)
	}
}

func TestRenderIdempotence(t *testing.T) {
	cu := &CodeUnit{
		Code:      []byte{op(t, "LOAD_CONST"), 0, op(t, "JUMP"), 0xFE, 0xFF},
		Consts:    []Const{Tuple(Int(1), Str("a"))},
		FirstLine: 1,
		LineTable: []byte{2, 1},
	}
	first, err := Text(opcode.Default(), cu, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Text(opcode.Default(), cu, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("rendering the same code unit twice differs")
	}
}

func TestTextBytesOmitsTables(t *testing.T) {
	code := []byte{op(t, "LOAD_FAST"), 3, op(t, "RETURN_VALUE")}
	text, err := TextBytes(opcode.Default(), code)
	if err != nil {
		t.Fatal(err)
	}
	want := "" +
		"          0 LOAD_FAST                3 (3)\n" +
		"          2 RETURN_VALUE\n"
	if text != want {
		t.Errorf("raw listing = %q, want %q", text, want)
	}
}
