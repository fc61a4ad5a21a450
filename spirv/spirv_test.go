package spirv_test

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/shaderkit/smolv/spirv"
)

func wordsToBytes(words []uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

// testModule is a tiny but well-formed module: header, OpCapability
// Shader, OpTypeVoid %1, OpNop.
func testModule() []byte {
	return wordsToBytes([]uint32{
		spirv.Magic, 0x00010000, 0x00070000, 4, 0,
		2<<16 | uint32(spirv.OpCapability), 1,
		2<<16 | uint32(spirv.OpTypeVoid), 1,
		1<<16 | uint32(spirv.OpNop),
	})
}

func TestOpWordRoundTrip(t *testing.T) {
	tests := []struct {
		count uint32
		op    spirv.Op
	}{
		{1, spirv.OpNop},
		{4, spirv.OpLoad},
		{2, spirv.OpLabel},
		{0xFFFF, spirv.Op(0xFFFF)},
	}

	for _, tt := range tests {
		w := spirv.OpWord(tt.count, tt.op)
		count, op := spirv.SplitOpWord(w)
		if count != tt.count || op != tt.op {
			t.Errorf("OpWord(%d, %v): split to (%d, %v)", tt.count, tt.op, count, op)
		}
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   spirv.Op
		want string
	}{
		{spirv.OpLoad, "OpLoad"},
		{spirv.OpVectorShuffle, "OpVectorShuffle"},
		{spirv.OpModuleProcessed, "OpModuleProcessed"},
		{spirv.Op(13), "Op(13)"},
		{spirv.Op(9999), "Op(9999)"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String(): got %q, want %q", uint32(tt.op), got, tt.want)
		}
	}
}

func TestLookupShapes(t *testing.T) {
	tests := []struct {
		op   spirv.Op
		want spirv.OpInfo
	}{
		{spirv.OpLoad, spirv.OpInfo{Name: "Load", HasResult: true, HasType: true, RelIDs: 1, VarRest: true}},
		{spirv.OpStore, spirv.OpInfo{Name: "Store", RelIDs: 2, VarRest: true}},
		{spirv.OpDecorate, spirv.OpInfo{Name: "Decorate", VarRest: true}},
		{spirv.OpTypeFloat, spirv.OpInfo{Name: "TypeFloat", HasResult: true, VarRest: true}},
		{spirv.OpPhi, spirv.OpInfo{Name: "Phi", HasResult: true, HasType: true, RelIDs: 9, ZigzagIDs: true}},
		{spirv.OpBranch, spirv.OpInfo{Name: "Branch", RelIDs: 1, ZigzagIDs: true}},
		{spirv.OpLabel, spirv.OpInfo{Name: "Label", HasResult: true}},
		{spirv.OpFunctionEnd, spirv.OpInfo{Name: "FunctionEnd"}},
	}

	for _, tt := range tests {
		got, ok := spirv.Lookup(tt.op)
		if !ok {
			t.Errorf("Lookup(%v): not found", tt.op)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%v): got %+v, want %+v", tt.op, got, tt.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	// Reserved gaps and values past the core set have no shape.
	for _, op := range []spirv.Op{9, 13, 18, 40, 76, 225, 242, 331, 5000} {
		if _, ok := spirv.Lookup(op); ok {
			t.Errorf("Lookup(%d): expected not found", uint32(op))
		}
	}
}

func TestParseHeader(t *testing.T) {
	h, err := spirv.ParseHeader(testModule())
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	want := spirv.Header{Magic: spirv.Magic, Version: 0x00010000, Generator: 0x00070000, Bound: 4, Schema: 0}
	if h != want {
		t.Errorf("header: got %+v, want %+v", h, want)
	}
}

func TestParseHeaderInvalid(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		_, err := spirv.ParseHeader([]byte{0x03, 0x02, 0x23, 0x07})
		if !errors.Is(err, spirv.ErrInvalidHeader) {
			t.Errorf("expected ErrInvalidHeader, got %v", err)
		}
	})

	t.Run("bad magic", func(t *testing.T) {
		mod := testModule()
		mod[3] = 0xFF
		_, err := spirv.ParseHeader(mod)
		if !errors.Is(err, spirv.ErrInvalidHeader) {
			t.Errorf("expected ErrInvalidHeader, got %v", err)
		}
	})
}

func TestParse(t *testing.T) {
	m, err := spirv.Parse(testModule())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(m.Instructions) != 3 {
		t.Fatalf("instructions: got %d, want 3", len(m.Instructions))
	}

	wantOps := []spirv.Op{spirv.OpCapability, spirv.OpTypeVoid, spirv.OpNop}
	wantOffsets := []int{20, 28, 36}
	for i, ins := range m.Instructions {
		if ins.Op != wantOps[i] {
			t.Errorf("instruction %d: op %v, want %v", i, ins.Op, wantOps[i])
		}
		if ins.Offset != wantOffsets[i] {
			t.Errorf("instruction %d: offset %d, want %d", i, ins.Offset, wantOffsets[i])
		}
	}

	if got := m.Instructions[0].Words[1]; got != 1 {
		t.Errorf("capability operand: got %d, want 1", got)
	}
}

func TestParseMalformed(t *testing.T) {
	t.Run("zero word count", func(t *testing.T) {
		mod := wordsToBytes([]uint32{spirv.Magic, 0x00010000, 0, 1, 0, 0})
		_, err := spirv.Parse(mod)
		if !errors.Is(err, spirv.ErrMalformedStream) {
			t.Errorf("expected ErrMalformedStream, got %v", err)
		}
	})

	t.Run("instruction past end", func(t *testing.T) {
		mod := wordsToBytes([]uint32{spirv.Magic, 0x00010000, 0, 1, 0, 5<<16 | uint32(spirv.OpNop)})
		_, err := spirv.Parse(mod)
		if !errors.Is(err, spirv.ErrMalformedStream) {
			t.Errorf("expected ErrMalformedStream, got %v", err)
		}
	})

	t.Run("ragged length", func(t *testing.T) {
		mod := append(testModule(), 0x00)
		_, err := spirv.Parse(mod)
		if !errors.Is(err, spirv.ErrMalformedStream) {
			t.Errorf("expected ErrMalformedStream, got %v", err)
		}
	})
}

func TestListing(t *testing.T) {
	out, err := spirv.Listing(testModule())
	if err != nil {
		t.Fatalf("Listing: %v", err)
	}

	for _, want := range []string{"SPIR-V 1.0", "bound 4", "OpCapability", "OpTypeVoid", "OpNop"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("listing lines: got %d, want 4", len(lines))
	}
}
