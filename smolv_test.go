package smolv_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/shaderkit/smolv"
)

// goldenEncoded is a hand-assembled stream: header declaring a 28-byte
// module, followed by a single OpCapability Shader instruction.
var goldenEncoded = []byte{
	0x4C, 0x4F, 0x4D, 0x53, // magic "SMOL"
	0x00, 0x00, 0x01, 0x00, // version 1.0
	0x00, 0x00, 0x07, 0x00, // generator
	0x02, 0x00, 0x00, 0x00, // bound
	0x00, 0x00, 0x00, 0x00, // schema
	0x1C, 0x00, 0x00, 0x00, // decoded size 28
	0x91, 0x02, // length 2, OpCapability
	0x01, // Shader
}

var goldenDecoded = []byte{
	0x03, 0x02, 0x23, 0x07, // SPIR-V magic
	0x00, 0x00, 0x01, 0x00,
	0x00, 0x00, 0x07, 0x00,
	0x02, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x11, 0x00, 0x02, 0x00, // OpCapability
	0x01, 0x00, 0x00, 0x00,
}

func TestParseHeader(t *testing.T) {
	h, err := smolv.ParseHeader(goldenEncoded)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Version != 0x00010000 {
		t.Errorf("Version: got %#x", h.Version)
	}
	if h.Generator != 0x00070000 {
		t.Errorf("Generator: got %#x", h.Generator)
	}
	if h.Bound != 2 {
		t.Errorf("Bound: got %d", h.Bound)
	}
	if h.Schema != 0 {
		t.Errorf("Schema: got %d", h.Schema)
	}
	if h.DecodedSize != 28 {
		t.Errorf("DecodedSize: got %d", h.DecodedSize)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	corrupt := func(offset int, v uint32) []byte {
		data := bytes.Clone(goldenEncoded)
		binary.LittleEndian.PutUint32(data[offset:], v)
		return data
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"nil", nil, smolv.ErrTruncated},
		{"empty", []byte{}, smolv.ErrTruncated},
		{"partial magic", goldenEncoded[:3], smolv.ErrTruncated},
		{"header short one byte", goldenEncoded[:23], smolv.ErrTruncated},
		{"wrong magic", corrupt(0, 0x07230203), smolv.ErrInvalidMagic},
		{"zero magic", corrupt(0, 0), smolv.ErrInvalidMagic},
		{"version below range", corrupt(4, 0x00000100), smolv.ErrInvalidVersion},
		{"version above range", corrupt(4, 0x00010400), smolv.ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := smolv.ParseHeader(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseHeaderVersionRange(t *testing.T) {
	for _, v := range []uint32{0x00010000, 0x00010100, 0x00010200, 0x00010300} {
		data := bytes.Clone(goldenEncoded)
		binary.LittleEndian.PutUint32(data[4:], v)
		if _, err := smolv.ParseHeader(data); err != nil {
			t.Errorf("version %#x rejected: %v", v, err)
		}
	}
}

func TestDecodedSize(t *testing.T) {
	if got := smolv.DecodedSize(goldenEncoded); got != 28 {
		t.Errorf("got %d, want 28", got)
	}

	for _, data := range [][]byte{
		nil,
		goldenEncoded[:10],
		goldenDecoded, // SPIR-V magic, not SMOL-V
	} {
		if got := smolv.DecodedSize(data); got != 0 {
			t.Errorf("DecodedSize(%x): got %d, want 0", data, got)
		}
	}
}

func TestDecodeGolden(t *testing.T) {
	out, err := smolv.Decode(goldenEncoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out, goldenDecoded) {
		t.Fatalf("got  % x\nwant % x", out, goldenDecoded)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("header truncated", func(t *testing.T) {
		_, err := smolv.Decode(goldenEncoded[:20])
		if !errors.Is(err, smolv.ErrTruncated) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("payload truncated", func(t *testing.T) {
		_, err := smolv.Decode(goldenEncoded[:25])
		if err == nil {
			t.Error("expected error")
		}
	})

	t.Run("declared size zero", func(t *testing.T) {
		data := bytes.Clone(goldenEncoded)
		binary.LittleEndian.PutUint32(data[20:], 0)
		_, err := smolv.Decode(data)
		if !errors.Is(err, smolv.ErrSizeMismatch) {
			t.Errorf("got %v", err)
		}
	})
}

func TestDecodeInto(t *testing.T) {
	t.Run("exact buffer", func(t *testing.T) {
		buf := make([]byte, 28)
		if err := smolv.DecodeInto(goldenEncoded, buf); err != nil {
			t.Fatalf("DecodeInto: %v", err)
		}
		if !bytes.Equal(buf, goldenDecoded) {
			t.Error("output mismatch")
		}
	})

	t.Run("oversized buffer", func(t *testing.T) {
		buf := make([]byte, 40)
		for i := range buf {
			buf[i] = 0xAA
		}
		if err := smolv.DecodeInto(goldenEncoded, buf); err != nil {
			t.Fatalf("DecodeInto: %v", err)
		}
		if !bytes.Equal(buf[:28], goldenDecoded) {
			t.Error("output mismatch")
		}
		for i := 28; i < len(buf); i++ {
			if buf[i] != 0xAA {
				t.Fatalf("byte %d past the module was overwritten", i)
			}
		}
	})

	t.Run("undersized buffer", func(t *testing.T) {
		err := smolv.DecodeInto(goldenEncoded, make([]byte, 27))
		if !errors.Is(err, smolv.ErrBufferTooSmall) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("nil buffer", func(t *testing.T) {
		err := smolv.DecodeInto(goldenEncoded, nil)
		if !errors.Is(err, smolv.ErrBufferTooSmall) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("invalid stream", func(t *testing.T) {
		err := smolv.DecodeInto(goldenDecoded, make([]byte, 64))
		if !errors.Is(err, smolv.ErrInvalidMagic) {
			t.Errorf("got %v", err)
		}
	})
}

func TestErrorPositions(t *testing.T) {
	// Cut mid-instruction so the failure carries a stream position.
	_, err := smolv.Decode(goldenEncoded[:25])
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, smolv.ErrTruncated) {
		t.Errorf("got %v", err)
	}
	if !strings.Contains(err.Error(), "position") {
		t.Errorf("error does not report a position: %v", err)
	}
}
