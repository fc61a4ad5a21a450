package smolv

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/shaderkit/smolv/spirv"
)

// This file holds the test-only encoder: the exact inverse of the
// decoder, used to drive round-trip tests. It is not part of the
// public API.

// zigzagEncode interleaves a signed delta into the unsigned form:
// 0, -1, 1, -2 encode to 0, 1, 2, 3.
func zigzagEncode(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// packLenOp packs a word count and opcode into the wire varint value.
func packLenOp(wordCount uint32, op spirv.Op) uint32 {
	return (wordCount>>4)<<20 | (uint32(op)>>4)<<8 | (wordCount&0xF)<<4 | uint32(op)&0xF
}

// encodeLen is the inverse of decodeLen.
func encodeLen(op spirv.Op, wordCount uint32) uint32 {
	n := wordCount - 1
	switch op {
	case spirv.OpVectorShuffle, opVectorShuffleCompact:
		n -= 4
	case spirv.OpDecorate:
		n -= 2
	case spirv.OpLoad, spirv.OpAccessChain:
		n -= 3
	}
	return n
}

func writeVarint(buf *bytes.Buffer, v uint32) {
	for v >= 0x80 {
		buf.WriteByte(byte(v) | 0x80)
		v >>= 7
	}
	buf.WriteByte(byte(v))
}

func writeWord(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// compactable reports whether a VectorShuffle can use the compact
// form: at most four components, each small enough for two bits.
func compactable(ins spirv.Instruction) bool {
	if ins.Op != spirv.OpVectorShuffle || len(ins.Words) < 5 || len(ins.Words) > 9 {
		return false
	}
	for _, c := range ins.Words[5:] {
		if c > 3 {
			return false
		}
	}
	return true
}

// encodeModule compresses a SPIR-V module with the mirror image of the
// decode loop.
func encodeModule(t *testing.T, module []byte) []byte {
	t.Helper()

	m, err := spirv.Parse(module)
	if err != nil {
		t.Fatalf("parse test module: %v", err)
	}

	var buf bytes.Buffer
	writeWord(&buf, Magic)
	writeWord(&buf, m.Header.Version)
	writeWord(&buf, m.Header.Generator)
	writeWord(&buf, m.Header.Bound)
	writeWord(&buf, m.Header.Schema)
	writeWord(&buf, uint32(len(module)))

	var prevResult, prevDecorate uint32
	for _, ins := range m.Instructions {
		op := ins.Op
		words := ins.Words

		wireOp := op
		compact := compactable(ins)
		if compact {
			wireOp = opVectorShuffleCompact
		}
		writeVarint(&buf, packLenOp(encodeLen(wireOp, uint32(len(words))), remapOp(wireOp)))

		info, _ := spirv.Lookup(op)
		idx := 1

		if info.HasType {
			writeVarint(&buf, words[idx])
			idx++
		}
		if info.HasResult {
			writeVarint(&buf, zigzagEncode(int32(words[idx]-prevResult)))
			prevResult = words[idx]
			idx++
		}
		if op == spirv.OpDecorate || op == spirv.OpMemberDecorate {
			writeVarint(&buf, words[idx]-prevDecorate)
			prevDecorate = words[idx]
			idx++
		}
		for i := 0; i < info.RelIDs && idx < len(words); i++ {
			if info.ZigzagIDs {
				writeVarint(&buf, zigzagEncode(int32(prevResult-words[idx])))
			} else {
				writeVarint(&buf, prevResult-words[idx])
			}
			idx++
		}

		switch {
		case compact:
			var b byte
			for i, c := range words[5:] {
				b |= byte(c) << (6 - 2*uint(i))
			}
			buf.WriteByte(b)

		case info.VarRest:
			for ; idx < len(words); idx++ {
				writeVarint(&buf, words[idx])
			}

		default:
			for ; idx < len(words); idx++ {
				writeWord(&buf, words[idx])
			}
		}
	}
	return buf.Bytes()
}
