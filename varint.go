package smolv

// zigzagDecode maps the interleaved unsigned form back to a signed
// delta: 0, 1, 2, 3 decode to 0, -1, 1, -2.
func zigzagDecode(u uint32) int32 {
	if u&1 != 0 {
		return ^int32(u >> 1)
	}
	return int32(u >> 1)
}
