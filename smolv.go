package smolv

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrInvalidMagic is returned when the input does not start with
	// the SMOL-V magic number.
	ErrInvalidMagic = errors.New("invalid SMOL-V magic number")

	// ErrInvalidVersion is returned when the header's SPIR-V version
	// word is outside the supported range.
	ErrInvalidVersion = errors.New("unsupported SPIR-V version word")

	// ErrTruncated is returned when the input ends in the middle of
	// the header, a varint, or a raw operand word.
	ErrTruncated = errors.New("truncated SMOL-V input")

	// ErrBufferTooSmall is returned by DecodeInto when the destination
	// cannot hold the declared decoded size. Nothing is written.
	ErrBufferTooSmall = errors.New("output buffer smaller than declared size")

	// ErrSizeMismatch is returned when the decoded byte count differs
	// from the size the header declares.
	ErrSizeMismatch = errors.New("decoded size does not match header")
)

// DecodedSize returns the decoded byte size a SMOL-V stream declares,
// without decoding it. It returns 0 when the header is invalid; a
// valid stream never declares zero, since a decoded module contains at
// least its own header.
func DecodedSize(data []byte) int {
	h, err := ParseHeader(data)
	if err != nil {
		return 0
	}
	return int(h.DecodedSize)
}

// Decode decompresses a SMOL-V stream into a freshly allocated SPIR-V
// module of exactly the declared size.
func Decode(data []byte) ([]byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, h.DecodedSize)
	if err := decodeStream(data, h, out); err != nil {
		debugf("decode failed: %v", err)
		return nil, err
	}
	Logger().Debug("decoded stream",
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", len(out)))
	return out, nil
}

// DecodeInto decompresses a SMOL-V stream into out, which must hold at
// least the declared decoded size. It fails with ErrBufferTooSmall
// before any decoding work when out is too short. On success the
// decoded module occupies out[:DecodedSize(data)].
func DecodeInto(data, out []byte) error {
	h, err := ParseHeader(data)
	if err != nil {
		return err
	}
	if len(out) < int(h.DecodedSize) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, h.DecodedSize, len(out))
	}
	return decodeStream(data, h, out[:h.DecodedSize])
}
