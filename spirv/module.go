package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Magic is the SPIR-V binary magic number in native word order.
const Magic uint32 = 0x07230203

// HeaderWords is the length of the module header in 32-bit words.
const HeaderWords = 5

// HeaderBytes is the length of the module header in bytes.
const HeaderBytes = HeaderWords * 4

var (
	// ErrInvalidHeader is returned when a module is shorter than the
	// five-word header or does not start with the SPIR-V magic number.
	ErrInvalidHeader = errors.New("invalid SPIR-V module header")

	// ErrMalformedStream is returned when the instruction stream is
	// truncated mid-instruction or contains a zero word count.
	ErrMalformedStream = errors.New("malformed SPIR-V instruction stream")
)

// Header is the five-word SPIR-V module header.
type Header struct {
	Magic     uint32
	Version   uint32
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// ParseHeader reads and checks the module header. The input must be at
// least HeaderBytes long and start with the SPIR-V magic number.
func ParseHeader(module []byte) (Header, error) {
	if len(module) < HeaderBytes {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrInvalidHeader, len(module))
	}
	h := Header{
		Magic:     binary.LittleEndian.Uint32(module[0:]),
		Version:   binary.LittleEndian.Uint32(module[4:]),
		Generator: binary.LittleEndian.Uint32(module[8:]),
		Bound:     binary.LittleEndian.Uint32(module[12:]),
		Schema:    binary.LittleEndian.Uint32(module[16:]),
	}
	if h.Magic != Magic {
		return Header{}, fmt.Errorf("%w: magic 0x%08x", ErrInvalidHeader, h.Magic)
	}
	return h, nil
}

// Instruction is a single decoded instruction record.
type Instruction struct {
	Offset int      // byte offset of the instruction's first word
	Op     Op
	Words  []uint32 // all words, including the leading count|opcode word
}

// Module is a SPIR-V module split into its header and instruction
// records. Operand words are kept raw.
type Module struct {
	Header       Header
	Instructions []Instruction
}

// Parse splits a SPIR-V binary into its header and instructions. It
// checks framing only: the magic number, that the byte length is a
// whole number of words, and that each instruction's word count is
// nonzero and within the module.
func Parse(module []byte) (*Module, error) {
	h, err := ParseHeader(module)
	if err != nil {
		return nil, err
	}
	if len(module)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrMalformedStream, len(module))
	}

	words := make([]uint32, len(module)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(module[i*4:])
	}

	m := &Module{Header: h}
	for pos := HeaderWords; pos < len(words); {
		count, op := SplitOpWord(words[pos])
		if count == 0 {
			return nil, fmt.Errorf("%w: zero word count at offset %d", ErrMalformedStream, pos*4)
		}
		if pos+int(count) > len(words) {
			return nil, fmt.Errorf("%w: instruction at offset %d wants %d words, %d remain",
				ErrMalformedStream, pos*4, count, len(words)-pos)
		}
		m.Instructions = append(m.Instructions, Instruction{
			Offset: pos * 4,
			Op:     op,
			Words:  words[pos : pos+int(count)],
		})
		pos += int(count)
	}
	return m, nil
}
