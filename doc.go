// Package smolv decodes SMOL-V compressed shader bytecode back into
// standard SPIR-V binary modules.
//
// SMOL-V is a compact encoding of SPIR-V designed to shrink shader
// bytecode before general-purpose compression. It packs each
// instruction's word count and opcode into one varint, swaps frequent
// opcodes into one-byte values, stores result IDs as deltas against
// the previous result, decoration targets as deltas against the
// previous decoration target, and many ID operands relative to the
// current result baseline. Decoding reverses all of that byte for
// byte: the output is the exact SPIR-V module that was encoded.
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	smolv/           Root package: the SMOL-V decoder
//	├── spirv/       SPIR-V opcode tables, operand shapes, module parsing
//	├── stats/       Codec evaluation: per-opcode accounting, size comparisons
//	├── internal/    Binary reader/writer primitives
//	├── cmd/smolv    Command line unpacker and inspector
//	└── examples/    Usage examples
//
// # Quick Start
//
// Decode a SMOL-V blob back into SPIR-V:
//
//	data, err := os.ReadFile("shader.smolv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spirvBytes, err := smolv.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// When the destination buffer already exists, DecodedSize and
// DecodeInto avoid the allocation:
//
//	size := smolv.DecodedSize(data)
//	if size == 0 {
//	    log.Fatal("not a SMOL-V stream")
//	}
//	buf := make([]byte, size)
//	if err := smolv.DecodeInto(data, buf); err != nil {
//	    log.Fatal(err)
//	}
//
// # Container Format
//
// A SMOL-V stream starts with a 24-byte header of six little-endian
// words: the "SMOL" magic, the SPIR-V version word, the generator
// word, the ID bound, the schema word, and the decoded byte size. The
// four middle words are copied into the output header unchanged; the
// size word lets callers allocate the destination up front and is
// checked against the actual decoded length.
//
// # Error Handling
//
// Malformed input never panics and never reads or writes out of
// bounds. Failures are explicit errors: ErrInvalidMagic and
// ErrInvalidVersion for bad headers, ErrTruncated for input that ends
// mid-value, ErrBufferTooSmall for an undersized destination, and
// ErrSizeMismatch when the decoded byte count disagrees with the
// header. Decode errors carry the input position where decoding
// stopped.
//
// # Thread Safety
//
// Decoding keeps all state on the stack: nothing is retained between
// calls and the input is never modified. Any number of goroutines may
// decode concurrently, including into separate buffers over the same
// input. SetLogger is the exception; configure it before concurrent
// use.
package smolv
