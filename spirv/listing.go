package spirv

import (
	"fmt"
	"io"
	"strings"
)

// WriteListing writes a one-line-per-instruction text rendering of a
// SPIR-V binary to w: byte offset, word count, opcode name, raw
// operand words. Operands are printed as hex words without further
// interpretation.
func WriteListing(w io.Writer, module []byte) error {
	m, err := Parse(module)
	if err != nil {
		return err
	}

	h := m.Header
	_, err = fmt.Fprintf(w, "; SPIR-V %d.%d, generator 0x%08x, bound %d, schema %d\n",
		h.Version>>16&0xff, h.Version>>8&0xff, h.Generator, h.Bound, h.Schema)
	if err != nil {
		return err
	}

	for _, ins := range m.Instructions {
		if _, err := fmt.Fprintf(w, "%6d: [%2d] %s", ins.Offset, len(ins.Words), ins.Op); err != nil {
			return err
		}
		for _, word := range ins.Words[1:] {
			if _, err := fmt.Fprintf(w, " 0x%x", word); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Listing renders WriteListing into a string.
func Listing(module []byte) (string, error) {
	var sb strings.Builder
	if err := WriteListing(&sb, module); err != nil {
		return "", err
	}
	return sb.String(), nil
}
