package smolv

import "github.com/shaderkit/smolv/spirv"

// opVectorShuffleCompact is the pseudo-opcode marking the compact
// swizzle form of OpVectorShuffle: both vector operands followed by up
// to four 2-bit components packed into a single byte. It exists only
// on the wire and never appears in decoded output.
const opVectorShuffleCompact spirv.Op = 13

// remapTable swaps frequent opcodes with rarely used low values so the
// packed length+opcode varint fits one byte for most instructions. The
// table is its own inverse; encoding and decoding apply the same swap.
// Name (5), MemberName (6), and ExtInst (12) are already low and keep
// their slots, as does the compact shuffle pseudo-opcode (13). Slot 9
// is unused in SPIR-V and has no opcode constant.
var remapTable = map[spirv.Op]spirv.Op{
	spirv.OpNop: spirv.OpDecorate, spirv.OpDecorate: spirv.OpNop,
	spirv.OpUndef: spirv.OpLoad, spirv.OpLoad: spirv.OpUndef,
	spirv.OpSourceContinued: spirv.OpStore, spirv.OpStore: spirv.OpSourceContinued,
	spirv.OpSource: spirv.OpAccessChain, spirv.OpAccessChain: spirv.OpSource,
	spirv.OpSourceExtension: spirv.OpVectorShuffle, spirv.OpVectorShuffle: spirv.OpSourceExtension,
	spirv.OpString: spirv.OpMemberDecorate, spirv.OpMemberDecorate: spirv.OpString,
	spirv.OpLine: spirv.OpLabel, spirv.OpLabel: spirv.OpLine,
	9: spirv.OpVariable, spirv.OpVariable: 9,
	spirv.OpExtension: spirv.OpFMul, spirv.OpFMul: spirv.OpExtension,
	spirv.OpExtInstImport: spirv.OpFAdd, spirv.OpFAdd: spirv.OpExtInstImport,
	spirv.OpMemoryModel: spirv.OpTypePointer, spirv.OpTypePointer: spirv.OpMemoryModel,
	spirv.OpEntryPoint: spirv.OpFNegate, spirv.OpFNegate: spirv.OpEntryPoint,
}

// remapOp applies the opcode swap table in either direction.
func remapOp(op spirv.Op) spirv.Op {
	if to, ok := remapTable[op]; ok {
		return to
	}
	return op
}

// unpackLenOp splits the packed length+opcode varint value. The low
// nibbles of both fields sit in the low byte so that short
// instructions with low opcodes pack into a single varint byte.
func unpackLenOp(v uint32) (wordCount uint32, op spirv.Op) {
	wordCount = (v>>20)<<4 | (v>>4)&0xF
	op = spirv.Op((v>>4)&0xFFF0 | v&0xF)
	return wordCount, op
}

// decodeLen widens a wire word count back to the true count. Every
// instruction sheds one word on the wire; the opcodes below, whose
// minimum lengths are known, shed more.
func decodeLen(op spirv.Op, wireLen uint32) uint32 {
	n := wireLen + 1
	switch op {
	case spirv.OpVectorShuffle, opVectorShuffleCompact:
		n += 4
	case spirv.OpDecorate:
		n += 2
	case spirv.OpLoad, spirv.OpAccessChain:
		n += 3
	}
	return n
}
