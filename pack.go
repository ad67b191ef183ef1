package markerpack

const (
	// LowBits is the width of the low field of a packed word.
	LowBits = 14

	// LowMask selects the low field. The top 2 bits of s2 never survive it.
	LowMask = 1<<LowBits - 1
)

// PackMarkers packs two 16-bit values into a single 32-bit word.
//
// s1 is widened to 32 bits before it is shifted, so all 16 of its bits land in
// bits [29:14] and none are lost. s2 is masked to its low 14 bits, which go to
// bits [13:0]. Bits [31:30] of the result are always zero.
//
// PackMarkers never fails. Dropping the top 2 bits of s2 is the layout, not an error.
//
// Example:
//
//	packed := PackMarkers(1, 0x3FFF)
//	// packed == 0x7FFF
func PackMarkers(s1, s2 uint16) uint32 {
	return uint32(s1)<<LowBits | uint32(s2)&LowMask
}

// UnpackMarkers splits a packed word back into its two fields.
//
// Returns:
//   - bits [29:14] (as uint16)
//   - bits [13:0] (as uint16)
//
// This reverses PackMarkers for every s2 that fits in 14 bits.
func UnpackMarkers(packed uint32) (s1, s2 uint16) {
	s1 = uint16(packed >> LowBits)
	s2 = uint16(packed & LowMask)
	return
}
