package wide

import (
	"github.com/cockroachdb/errors"
)

// Div128By64 divides the 128-bit value hi:lo by d using Knuth's Algorithm D with base 2^32
// digits, returning the 64-bit quotient and the remainder
// Precondition: hi < d (the quotient must fit in 64 bits), which also rules out d == 0
// Violations are programmer error and panic
func Div128By64(hi, lo, d uint64) (quo, rem uint64) {
	q, r, s := divNormalized(hi, lo, d)
	return q, r >> s
}

// Div128By64Quo is Div128By64 without the remainder un-normalization step
func Div128By64Quo(hi, lo, d uint64) uint64 {
	q, _, _ := divNormalized(hi, lo, d)
	return q
}

// divNormalized returns the quotient, the remainder still scaled by 2^s, and s
func divNormalized(hi, lo, d uint64) (quo, rem uint64, s uint) {
	if d == 0 {
		panic(errors.AssertionFailedf("wide: division by zero"))
	}
	if hi >= d {
		panic(errors.AssertionFailedf("wide: quotient overflow, dividend high word %#x >= divisor %#x", hi, d))
	}

	// Normalize: shift divisor until its top bit is set, shift dividend by the same amount
	s = LeadingZeros64(d)
	d <<= s

	// Divisor digits
	dn1 := d >> digitBits
	dn0 := d & digitMask

	// Dividend: top 64 bits plus two lower digits
	// Go defines x>>64 == 0 for unsigned x, so s == 0 needs no special case
	un32 := hi<<s | lo>>(64-s)
	un10 := lo << s
	un1 := un10 >> digitBits
	un0 := un10 & digitMask

	// First quotient digit from the top two dividend digits
	q1 := un32 / dn1
	rhat := un32 - q1*dn1
	for q1 >= digitBase || q1*dn0 > digitBase*rhat+un1 {
		q1--
		rhat += dn1
		if rhat >= digitBase {
			break
		}
	}

	// Multiply and subtract
	un21 := un32*digitBase + un1 - q1*d

	// Second quotient digit
	q0 := un21 / dn1
	rhat = un21 - q0*dn1
	for q0 >= digitBase || q0*dn0 > digitBase*rhat+un0 {
		q0--
		rhat += dn1
		if rhat >= digitBase {
			break
		}
	}

	rem = un21*digitBase + un0 - q0*d
	return q1*digitBase + q0, rem, s
}
