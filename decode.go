package smolv

import (
	"errors"
	"fmt"

	"github.com/shaderkit/smolv/internal/binary"
	"github.com/shaderkit/smolv/spirv"
)

// decoder holds the per-call decode state. Both ID baselines start at
// zero for every stream.
type decoder struct {
	r *binary.Reader
	w *binary.Writer

	// prevResult is the most recent result ID, the baseline for result
	// deltas and relative ID operands.
	prevResult uint32

	// prevDecorate is the most recent decoration target, the baseline
	// for Decorate and MemberDecorate targets.
	prevDecorate uint32
}

// decodeStream decodes everything after the container header into out,
// which must be exactly h.DecodedSize bytes. data is the full input
// including the header, so positions in errors are file offsets.
func decodeStream(data []byte, h Header, out []byte) error {
	d := &decoder{
		r: binary.NewReader(data),
		w: binary.NewWriter(out),
	}
	if err := d.r.Skip(HeaderSize); err != nil {
		return d.wrap("header", err)
	}

	for _, word := range [...]uint32{spirv.Magic, h.Version, h.Generator, h.Bound, h.Schema} {
		if err := d.put("header", word); err != nil {
			return err
		}
	}

	for d.r.Remaining() > 0 {
		if err := d.instruction(); err != nil {
			return err
		}
	}

	if d.w.Len() != int(h.DecodedSize) {
		return fmt.Errorf("%w: decoded %d bytes, header declares %d",
			ErrSizeMismatch, d.w.Len(), h.DecodedSize)
	}
	return nil
}

// instruction decodes one instruction: the packed length+opcode
// varint, then each operand according to the opcode's shape.
func (d *decoder) instruction() error {
	v, err := d.varint("instruction")
	if err != nil {
		return err
	}
	wireLen, wireOp := unpackLenOp(v)

	op := remapOp(wireOp)
	wasSwizzle := op == opVectorShuffleCompact
	instrLen := decodeLen(op, wireLen)
	if wasSwizzle {
		op = spirv.OpVectorShuffle
	}
	info, _ := spirv.Lookup(op)

	if err := d.put("instruction", spirv.OpWord(instrLen, op)); err != nil {
		return err
	}
	remain := int(instrLen) - 1

	if info.HasType {
		id, err := d.varint("type id")
		if err != nil {
			return err
		}
		if err := d.put("type id", id); err != nil {
			return err
		}
		remain--
	}

	if info.HasResult {
		delta, err := d.varint("result id")
		if err != nil {
			return err
		}
		d.prevResult += uint32(zigzagDecode(delta))
		if err := d.put("result id", d.prevResult); err != nil {
			return err
		}
		remain--
	}

	if op == spirv.OpDecorate || op == spirv.OpMemberDecorate {
		delta, err := d.varint("decoration target")
		if err != nil {
			return err
		}
		d.prevDecorate += delta
		if err := d.put("decoration target", d.prevDecorate); err != nil {
			return err
		}
		remain--
	}

	for i := 0; i < info.RelIDs && remain > 0; i++ {
		v, err := d.varint("relative id")
		if err != nil {
			return err
		}
		id := d.prevResult - v
		if info.ZigzagIDs {
			id = d.prevResult - uint32(zigzagDecode(v))
		}
		if err := d.put("relative id", id); err != nil {
			return err
		}
		remain--
	}

	switch {
	case wasSwizzle && instrLen <= 9:
		// Up to four 2-bit components in one byte, most significant
		// first. Component count follows from the instruction length.
		b, err := d.r.ReadByte()
		if err != nil {
			return d.wrap("swizzle", err)
		}
		for i, shift := range [...]uint{6, 4, 2, 0} {
			if instrLen > uint32(5+i) {
				if err := d.put("swizzle", uint32(b>>shift)&3); err != nil {
					return err
				}
			}
		}

	case info.VarRest:
		for ; remain > 0; remain-- {
			v, err := d.varint("operand")
			if err != nil {
				return err
			}
			if err := d.put("operand", v); err != nil {
				return err
			}
		}

	default:
		for ; remain > 0; remain-- {
			word, err := d.r.ReadWord()
			if err != nil {
				return d.wrap("operand", err)
			}
			if err := d.put("operand", word); err != nil {
				return err
			}
		}
	}
	return nil
}

// varint reads one varint operand, translating reader failures into
// the decode error taxonomy.
func (d *decoder) varint(section string) (uint32, error) {
	v, err := d.r.ReadVarint()
	if err != nil {
		return 0, d.wrap(section, err)
	}
	return v, nil
}

// put writes one output word.
func (d *decoder) put(section string, word uint32) error {
	if err := d.w.WriteWord(word); err != nil {
		return d.wrap(section, err)
	}
	return nil
}

// wrap attaches the input position and maps reader and writer
// failures onto the package sentinels: an exhausted input is a
// truncated stream, an exhausted output produced more bytes than the
// header declared.
func (d *decoder) wrap(section string, err error) error {
	switch {
	case errors.Is(err, binary.ErrUnexpectedEOF):
		err = ErrTruncated
	case errors.Is(err, binary.ErrBufferFull):
		err = ErrSizeMismatch
	}
	return d.r.WrapError(section, err)
}
