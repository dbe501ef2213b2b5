package bytecode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"regdis/internal/opcode"
)

func TestFindLabels(t *testing.T) {
	tab := opcode.Default()
	code := []byte{
		op(t, "LOAD_CONST"), 0, // 0
		op(t, "POP_JUMP_IF_FALSE"), 0x05, 0x00, // 2 -> 7
		op(t, "LOAD_CONST"), 1, // 5
		op(t, "JUMP"), 0xF9, 0xFF, // 7 -> 0 (delta -7)
		op(t, "RETURN_VALUE"), // 10
	}
	labels, err := FindLabels(tab, code)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]bool{0: true, 7: true}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestFindLabelsNoBranches(t *testing.T) {
	code := []byte{
		op(t, "LOAD_CONST"), 0,
		op(t, "STORE_FAST"), 0,
		op(t, "RETURN_VALUE"),
	}
	labels, err := FindLabels(opcode.Default(), code)
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 0 {
		t.Errorf("non-branch code produced labels %v", labels)
	}
}

func TestFindLabelsDuplicateTargetsCollapse(t *testing.T) {
	code := []byte{
		op(t, "JUMP"), 0x06, 0x00, // 0 -> 6
		op(t, "JUMP"), 0x03, 0x00, // 3 -> 6
		op(t, "RETURN_VALUE"), // 6
	}
	labels, err := FindLabels(opcode.Default(), code)
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 1 || !labels[6] {
		t.Errorf("labels = %v, want just offset 6", labels)
	}
}

// The jump operand of a conditional branch with a leading register
// operand is still the final immediate.
func TestFindLabelsMultiOperandBranch(t *testing.T) {
	code := []byte{
		op(t, "FOR_ITER"), 0x02, 0x04, 0x00, // 0 -> 4 (reg 2, jump +4)
		op(t, "RETURN_VALUE"), // 4
	}
	labels, err := FindLabels(opcode.Default(), code)
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 1 || !labels[4] {
		t.Errorf("labels = %v, want just offset 4", labels)
	}
}
