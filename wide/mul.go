package wide

import "math/bits"

// Mul64 returns the 128-bit product of a and b as (hi, lo), built from four 32-bit digit
// products
func Mul64(a, b uint64) (hi, lo uint64) {
	a1, a0 := a>>digitBits, a&digitMask
	b1, b0 := b>>digitBits, b&digitMask

	w0 := a0 * b0
	t := a1*b0 + w0>>digitBits
	w1 := t & digitMask
	w2 := t >> digitBits
	w1 += a0 * b1

	hi = a1*b1 + w2 + w1>>digitBits
	lo = a * b
	return hi, lo
}

// HighProductLimit bounds the product of the integer digits in MulQ32
// A product of 30 or more bits leaves no headroom for the cross terms and the sign
const HighProductLimit = 1 << 29

// MulQ32 returns floor(a*b / 2^32) for unsigned Q32.32 magnitudes
// Decomposition: (ah*bh)<<32 + ah*bl + al*bh + (al*bl)>>32
// ok is false when ah*bh uses 30 or more bits, or when the sum does not fit in 64 bits
func MulQ32(a, b uint64) (result uint64, ok bool) {
	ah, al := a>>digitBits, a&digitMask
	bh, bl := b>>digitBits, b&digitMask

	hh := ah * bh
	if hh >= HighProductLimit {
		return 0, false
	}

	var carry uint64
	result = hh << digitBits
	result, carry = bits.Add64(result, ah*bl, 0)
	if carry != 0 {
		return 0, false
	}
	result, carry = bits.Add64(result, al*bh, 0)
	if carry != 0 {
		return 0, false
	}
	result, carry = bits.Add64(result, (al*bl)>>digitBits, 0)
	if carry != 0 {
		return 0, false
	}
	return result, true
}
