package bytecode

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstKind tags a constant pool entry.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstBool
	ConstInt
	ConstFloat
	ConstStr
	ConstBytes
	ConstTuple
	ConstCode
)

// Const is one constant pool entry. Exactly the field selected by Kind
// is meaningful; the zero value is None.
type Const struct {
	Kind  ConstKind `cbor:"1,keyasint"`
	Bool  bool      `cbor:"2,keyasint,omitempty"`
	Int   int64     `cbor:"3,keyasint,omitempty"`
	Float float64   `cbor:"4,keyasint,omitempty"`
	Str   string    `cbor:"5,keyasint,omitempty"`
	Bytes []byte    `cbor:"6,keyasint,omitempty"`
	Tuple []Const   `cbor:"7,keyasint,omitempty"`
	Code  *CodeUnit `cbor:"8,keyasint,omitempty"`
}

func None() Const             { return Const{Kind: ConstNone} }
func Bool(b bool) Const       { return Const{Kind: ConstBool, Bool: b} }
func Int(i int64) Const       { return Const{Kind: ConstInt, Int: i} }
func Float(f float64) Const   { return Const{Kind: ConstFloat, Float: f} }
func Str(s string) Const      { return Const{Kind: ConstStr, Str: s} }
func Bytes(b []byte) Const    { return Const{Kind: ConstBytes, Bytes: b} }
func Tuple(cs ...Const) Const { return Const{Kind: ConstTuple, Tuple: cs} }
func Code(cu *CodeUnit) Const { return Const{Kind: ConstCode, Code: cu} }

// Value returns the constant as a plain Go value. Tuples become
// []any, code objects *CodeUnit.
func (c Const) Value() any {
	switch c.Kind {
	case ConstBool:
		return c.Bool
	case ConstInt:
		return c.Int
	case ConstFloat:
		return c.Float
	case ConstStr:
		return c.Str
	case ConstBytes:
		return c.Bytes
	case ConstTuple:
		vals := make([]any, len(c.Tuple))
		for i, e := range c.Tuple {
			vals[i] = e.Value()
		}
		return vals
	case ConstCode:
		return c.Code
	default:
		return nil
	}
}

// Repr renders the constant the way the source language would.
func (c Const) Repr() string {
	switch c.Kind {
	case ConstNone:
		return "None"
	case ConstBool:
		if c.Bool {
			return "True"
		}
		return "False"
	case ConstInt:
		return strconv.FormatInt(c.Int, 10)
	case ConstFloat:
		return formatFloat(c.Float)
	case ConstStr:
		return quote(c.Str)
	case ConstBytes:
		return "b" + quote(string(c.Bytes))
	case ConstTuple:
		parts := make([]string, len(c.Tuple))
		for i, e := range c.Tuple {
			parts[i] = e.Repr()
		}
		if len(parts) == 1 {
			return "(" + parts[0] + ",)"
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ConstCode:
		name := "<anonymous>"
		if c.Code != nil && c.Code.Name != "" {
			name = c.Code.Name
		}
		return fmt.Sprintf("<code object %s>", name)
	default:
		return fmt.Sprintf("<const kind %d>", c.Kind)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Integral floats print with a trailing ".0".
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "inf") && !strings.Contains(s, "nan") {
		s += ".0"
	}
	return s
}

func quote(s string) string {
	// Single quotes unless the string itself holds one and no double.
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == q:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
