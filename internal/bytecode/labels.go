package bytecode

import "regdis/internal/opcode"

// FindLabels returns the set of byte offsets that are the target of at
// least one branch instruction. The target of a branch is its own
// offset plus its final, sign-interpreted immediate.
func FindLabels(tab *opcode.Table, code []byte) (map[int]bool, error) {
	insts, err := scan(tab, code)
	if err != nil {
		return nil, err
	}
	labels := make(map[int]bool)
	for _, r := range insts {
		if !r.info.Branch {
			continue
		}
		labels[r.offset+signAdjust(r.imm[len(r.imm)-1])] = true
	}
	return labels, nil
}
