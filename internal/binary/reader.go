package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when a read would pass the end of the input.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// Reader walks a byte slice with position tracking and SMOL-V specific
// read methods. Reads never touch memory past the slice; a short read
// reports ErrUnexpectedEOF instead.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over the given bytes.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, pos: 0}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Skip advances the position by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if r.Remaining() < n {
		return ErrUnexpectedEOF
	}
	r.pos += n
	return nil
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadWord reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadWord() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadVarint reads an unsigned little-endian base-128 encoded uint32.
// Seven value bits per byte, high bit set on all but the last byte.
// There is no bound on the number of continuation bytes; chunks past
// the value width shift out of range and are discarded.
func (r *Reader) ReadVarint() (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// ParseError represents a decode failure with position information.
type ParseError struct {
	Err      error
	Section  string
	Position int
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("smolv: %s at position %d: %v", e.Section, e.Position, e.Err)
	}
	return fmt.Sprintf("smolv: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(section string, err error) error {
	return &ParseError{
		Position: r.pos,
		Section:  section,
		Err:      err,
	}
}
