package binary

import (
	"encoding/binary"
	"errors"
)

// ErrBufferFull is returned when a write would pass the end of the
// destination buffer.
var ErrBufferFull = errors.New("output buffer full")

// Writer emits little-endian 32-bit words into a fixed destination
// buffer. It never grows the buffer; a write past the end reports
// ErrBufferFull and leaves the buffer contents intact.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter creates a Writer over the given destination buffer.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf, pos: 0}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.pos
}

// Bytes returns the written prefix of the destination buffer.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.pos]
}

// WriteWord writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteWord(v uint32) error {
	if len(w.buf)-w.pos < 4 {
		return ErrBufferFull
	}
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
	return nil
}
