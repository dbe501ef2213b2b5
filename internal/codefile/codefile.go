// Package codefile reads and writes code-unit container files and
// classifies disassembler input. A container is a four-byte magic
// followed by a CBOR-encoded code unit; anything else is treated as a
// raw instruction buffer only when the caller says so.
package codefile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"regdis/internal/bytecode"
)

// Magic prefixes every code-unit container file. The trailing byte is
// the format version.
var Magic = []byte{'R', 'D', 'C', 1}

// UnsupportedInputError reports input that is neither a container nor
// declared raw bytecode. It is distinct from decode corruption inside
// the instruction buffer.
type UnsupportedInputError struct {
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	return "codefile: unsupported input: " + e.Reason
}

// Kind classifies the bytes handed to the disassembler.
type Kind int

const (
	KindUnknown Kind = iota
	KindContainer
	KindRaw
)

// Sniff classifies a byte buffer by its magic.
func Sniff(data []byte) Kind {
	if bytes.HasPrefix(data, Magic) {
		return KindContainer
	}
	return KindRaw
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("codefile: cbor enc mode: %v", err))
	}
	encMode = em
}

// Marshal serializes a code unit into container bytes.
func Marshal(cu *bytecode.CodeUnit) ([]byte, error) {
	body, err := encMode.Marshal(cu)
	if err != nil {
		return nil, fmt.Errorf("codefile: marshal code unit: %w", err)
	}
	out := make([]byte, 0, len(Magic)+len(body))
	out = append(out, Magic...)
	return append(out, body...), nil
}

// Unmarshal deserializes a container produced by Marshal.
func Unmarshal(data []byte) (*bytecode.CodeUnit, error) {
	if !bytes.HasPrefix(data, Magic) {
		return nil, &UnsupportedInputError{Reason: "missing container magic"}
	}
	var cu bytecode.CodeUnit
	if err := cbor.Unmarshal(data[len(Magic):], &cu); err != nil {
		return nil, fmt.Errorf("codefile: unmarshal code unit: %w", err)
	}
	return &cu, nil
}

// Load reads a container file from disk.
func Load(path string) (*bytecode.CodeUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}

// Save writes a code unit as a container file.
func Save(path string, cu *bytecode.CodeUnit) error {
	data, err := Marshal(cu)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FromBytes resolves input bytes into a code unit. Container bytes
// decode fully; raw bytes are accepted as a bare instruction buffer
// only when allowRaw is set, with no lookup tables attached.
func FromBytes(data []byte, allowRaw bool) (*bytecode.CodeUnit, error) {
	switch Sniff(data) {
	case KindContainer:
		return Unmarshal(data)
	default:
		if !allowRaw {
			return nil, &UnsupportedInputError{
				Reason: "not a code unit container (pass raw mode for bare bytecode)",
			}
		}
		return &bytecode.CodeUnit{Name: "<raw>", Code: data}, nil
	}
}
