// Package stats summarizes SPIR-V modules: per-opcode instruction
// counts and byte usage, and size comparisons between a module, its
// SMOL-V encoding, and zstd-compressed forms of both.
package stats

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/shaderkit/smolv/spirv"
)

// OpStat is the tally for a single opcode.
type OpStat struct {
	Op    spirv.Op
	Count int
	Bytes int
}

// Report holds per-opcode statistics for one module.
type Report struct {
	// Instructions is the total instruction count.
	Instructions int
	// Bytes is the module size including the header.
	Bytes int
	// Ops is sorted by byte usage, largest first.
	Ops []OpStat
}

// Calculate parses a SPIR-V module and tallies its instructions.
func Calculate(module []byte) (*Report, error) {
	m, err := spirv.Parse(module)
	if err != nil {
		return nil, err
	}

	tally := make(map[spirv.Op]OpStat)
	for _, ins := range m.Instructions {
		s := tally[ins.Op]
		s.Op = ins.Op
		s.Count++
		s.Bytes += len(ins.Words) * 4
		tally[ins.Op] = s
	}

	r := &Report{
		Instructions: len(m.Instructions),
		Bytes:        len(module),
		Ops:          make([]OpStat, 0, len(tally)),
	}
	for _, s := range tally {
		r.Ops = append(r.Ops, s)
	}
	sort.Slice(r.Ops, func(i, j int) bool {
		a, b := r.Ops[i], r.Ops[j]
		if a.Bytes != b.Bytes {
			return a.Bytes > b.Bytes
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Op < b.Op
	})

	debugf("calculated stats: %d instructions, %d distinct ops", r.Instructions, len(r.Ops))
	return r, nil
}

// WriteText renders the report as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d instructions, %d bytes\n\n", r.Instructions, r.Bytes); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-28s %7s %9s %6s\n", "op", "count", "bytes", "%"); err != nil {
		return err
	}
	for _, s := range r.Ops {
		pct := float64(s.Bytes) * 100 / float64(r.Bytes)
		if _, err := fmt.Fprintf(w, "%-28s %7d %9d %5.1f%%\n", s.Op, s.Count, s.Bytes, pct); err != nil {
			return err
		}
	}
	return nil
}

// Sizes compares the footprint of one module across encodings.
type Sizes struct {
	SPIRV     int
	SMOLV     int
	SPIRVZstd int
	SMOLVZstd int
}

var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
)

func encoder() *zstd.Encoder {
	zstdOnce.Do(func() {
		zstdEnc, _ = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderConcurrency(1))
	})
	return zstdEnc
}

// CompareSizes measures a SPIR-V module against its SMOL-V encoding,
// raw and after zstd compression.
func CompareSizes(module, encoded []byte) Sizes {
	enc := encoder()
	s := Sizes{
		SPIRV:     len(module),
		SMOLV:     len(encoded),
		SPIRVZstd: len(enc.EncodeAll(module, nil)),
		SMOLVZstd: len(enc.EncodeAll(encoded, nil)),
	}
	Logger().Debug("compared sizes",
		zap.Int("spirv", s.SPIRV),
		zap.Int("smolv", s.SMOLV),
		zap.Int("spirv_zstd", s.SPIRVZstd),
		zap.Int("smolv_zstd", s.SMOLVZstd))
	return s
}

func pct(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) * 100 / float64(of)
}

func (s Sizes) String() string {
	return fmt.Sprintf("SPIR-V: %d bytes, SMOL-V: %d bytes (%.1f%%), SPIR-V+zstd: %d bytes, SMOL-V+zstd: %d bytes (%.1f%%)",
		s.SPIRV, s.SMOLV, pct(s.SMOLV, s.SPIRV),
		s.SPIRVZstd, s.SMOLVZstd, pct(s.SMOLVZstd, s.SPIRV))
}
