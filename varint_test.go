package smolv

import "testing"

func TestZigzagDecode(t *testing.T) {
	tests := []struct {
		encoded uint32
		want    int32
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{4, 2},
		{0xFFFFFFFE, 0x7FFFFFFF},
		{0xFFFFFFFF, -0x80000000},
	}

	for _, tt := range tests {
		if got := zigzagDecode(tt.encoded); got != tt.want {
			t.Errorf("zigzagDecode(%d): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestZigzagRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 2, -2, 63, -64, 1000, -1000, 0x7FFFFFFF, -0x80000000}

	for _, v := range values {
		if got := zigzagDecode(zigzagEncode(v)); got != v {
			t.Errorf("zigzag round trip of %d: got %d", v, got)
		}
	}

	for _, u := range []uint32{0, 1, 2, 3, 100, 0xFFFFFFFF} {
		if got := zigzagEncode(zigzagDecode(u)); got != u {
			t.Errorf("zigzag round trip of encoded %d: got %d", u, got)
		}
	}
}
