package wide

import "math/bits"

const (
	digitBits = 32
	digitBase = 1 << digitBits
	digitMask = digitBase - 1
)

// LeadingZeros64 returns the number of leading zero bits in x; the result is 64 for x == 0
func LeadingZeros64(x uint64) uint {
	return uint(bits.LeadingZeros64(x))
}
