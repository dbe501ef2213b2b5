package bytecode

// LineStart marks the byte offset where a new source line begins.
type LineStart struct {
	Offset int
	Line   int
}

// LineStarts decodes a delta-encoded line table into explicit
// (offset, line) pairs. The table is a flat sequence of
// (byte delta, line delta) byte pairs; line deltas are 8-bit signed.
// Entries describing offsets at or past codeLen belong to bytecode
// that was optimized away and terminate the decode.
func LineStarts(table []byte, firstLine, codeLen int) []LineStart {
	if len(table) == 0 {
		return nil
	}
	var out []LineStart
	addr := 0
	lineno := firstLine
	emitted := false
	last := 0
	for i := 0; i+1 < len(table); i += 2 {
		byteIncr, lineIncr := int(table[i]), int(table[i+1])
		if byteIncr != 0 {
			if !emitted || lineno != last {
				out = append(out, LineStart{Offset: addr, Line: lineno})
				emitted = true
				last = lineno
			}
			addr += byteIncr
			if addr >= codeLen {
				return out
			}
		}
		if lineIncr >= 0x80 {
			lineIncr -= 0x100
		}
		lineno += lineIncr
	}
	if !emitted || lineno != last {
		out = append(out, LineStart{Offset: addr, Line: lineno})
	}
	return out
}

// lineMap turns line starts into an exact offset lookup.
func lineMap(starts []LineStart) map[int]int {
	if len(starts) == 0 {
		return nil
	}
	m := make(map[int]int, len(starts))
	for _, s := range starts {
		m[s.Offset] = s.Line
	}
	return m
}
