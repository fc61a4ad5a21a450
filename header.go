package smolv

import (
	"encoding/binary"
	"fmt"
)

// SMOL-V container constants.
const (
	// Magic is the SMOL-V magic number ("SMOL" read as a little-endian word).
	Magic uint32 = 0x534D4F4C

	// MinVersion and MaxVersion bound the accepted SPIR-V version word.
	MinVersion uint32 = 0x00010000
	MaxVersion uint32 = 0x00010300

	// HeaderSize is the container header length in bytes: six
	// little-endian words.
	HeaderSize = 24
)

// Header is the SMOL-V container header. Version, Generator, Bound and
// Schema are copied into the decoded SPIR-V header unchanged;
// DecodedSize is the byte length of the decoded module.
type Header struct {
	Version     uint32
	Generator   uint32
	Bound       uint32
	Schema      uint32
	DecodedSize uint32
}

// ParseHeader reads and checks the SMOL-V container header. It fails
// when the input is shorter than HeaderSize, does not start with the
// magic, or carries a SPIR-V version word outside the supported range.
// Nothing past the header is read.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, HeaderSize, len(data))
	}
	if m := binary.LittleEndian.Uint32(data[0:]); m != Magic {
		return Header{}, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, m)
	}
	h := Header{
		Version:     binary.LittleEndian.Uint32(data[4:]),
		Generator:   binary.LittleEndian.Uint32(data[8:]),
		Bound:       binary.LittleEndian.Uint32(data[12:]),
		Schema:      binary.LittleEndian.Uint32(data[16:]),
		DecodedSize: binary.LittleEndian.Uint32(data[20:]),
	}
	if h.Version < MinVersion || h.Version > MaxVersion {
		return Header{}, fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, h.Version)
	}
	return h, nil
}
