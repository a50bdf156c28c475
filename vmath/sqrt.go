package vmath

// Sqrt returns the Q32.32 square root truncated toward zero
// The root is extracted digit by digit from the 96-bit value a<<32, which makes the raw
// result exactly floor(sqrt(a·2^32)) with no iteration count to tune
func Sqrt(a Fixed) (Fixed, error) {
	if a <= 0 {
		return 0, domainf("sqrt %s", a)
	}

	// a<<32 as hi:lo, hi holds at most 31 significant bits
	hi := uint64(a) >> (64 - Shift)
	lo := uint64(a) << Shift

	var rem, root uint64
	// 96 bits consumed two at a time, most significant pair first
	for i := 47; i >= 0; i-- {
		shift := uint(2 * i)
		var pair uint64
		if shift >= 64 {
			pair = (hi >> (shift - 64)) & 3
		} else {
			pair = (lo >> shift) & 3
		}

		rem = rem<<2 | pair
		probe := root<<2 | 1
		root <<= 1
		if rem >= probe {
			rem -= probe
			root |= 1
		}
	}
	return Fixed(root), nil
}
