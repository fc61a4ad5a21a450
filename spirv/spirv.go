// Package spirv provides the SPIR-V binary format knowledge shared by
// the SMOL-V codec and its tooling: opcode constants and names,
// per-opcode operand shape metadata, module header parsing, and
// instruction stream iteration.
//
// The package understands instruction framing only. It knows how many
// words an instruction occupies and which leading operands are IDs, but
// it never interprets operand meaning beyond that.
package spirv

import "fmt"

// Op is a SPIR-V opcode value, the low 16 bits of an instruction's
// first word.
type Op uint32

// String returns the conventional "Op" prefixed opcode name, or a
// numeric form for opcodes outside the known core set.
func (op Op) String() string {
	if info, ok := Lookup(op); ok {
		return "Op" + info.Name
	}
	return fmt.Sprintf("Op(%d)", uint32(op))
}

// OpWord packs a word count and opcode into an instruction's first word.
func OpWord(wordCount uint32, op Op) uint32 {
	return wordCount<<16 | uint32(op)&0xFFFF
}

// SplitOpWord splits an instruction's first word into its word count
// and opcode.
func SplitOpWord(w uint32) (wordCount uint32, op Op) {
	return w >> 16, Op(w & 0xFFFF)
}
