package vmath

import (
	"github.com/lixenwraith/fixkernel/wide"
)

// Mode selects how Add and Sub treat signed wraparound
type Mode uint8

const (
	// Checked reports wraparound as ErrOverflow
	Checked Mode = iota
	// Wrapping returns the two's complement wrapped result
	Wrapping
)

func (m Mode) String() string {
	switch m {
	case Checked:
		return "checked"
	case Wrapping:
		return "wrapping"
	}
	return "unknown"
}

// Add returns a+b
func (m Mode) Add(a, b Fixed) (Fixed, error) {
	s := a + b
	// Overflow only when both operands share a sign the sum does not
	if m == Checked && (a < 0) == (b < 0) && (s < 0) != (a < 0) {
		return 0, overflowf("add %s + %s", a, b)
	}
	return s, nil
}

// Sub returns a-b
func (m Mode) Sub(a, b Fixed) (Fixed, error) {
	d := a - b
	if m == Checked && (a < 0) != (b < 0) && (d < 0) != (a < 0) {
		return 0, overflowf("sub %s - %s", a, b)
	}
	return d, nil
}

// Sum folds Add over vals; empty input sums to zero
func (m Mode) Sum(vals []Fixed) (Fixed, error) {
	var acc Fixed
	for _, v := range vals {
		var err error
		if acc, err = m.Add(acc, v); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// Add is Checked.Add
func Add(a, b Fixed) (Fixed, error) { return Checked.Add(a, b) }

// Sub is Checked.Sub
func Sub(a, b Fixed) (Fixed, error) { return Checked.Sub(a, b) }

// Sum is Checked.Sum
func Sum(vals []Fixed) (Fixed, error) { return Checked.Sum(vals) }

func AddWrap(a, b Fixed) Fixed { return a + b }

func SubWrap(a, b Fixed) Fixed { return a - b }

// Mul returns the Q32.32 product, fraction bits beyond 2^-32 truncated toward zero
// ErrOverflow when the product of the integer parts uses 30 or more bits, so the largest
// square is 23170²
func Mul(a, b Fixed) (Fixed, error) {
	p, ok := mul(a, b)
	if !ok {
		return 0, overflowf("mul %s * %s", a, b)
	}
	return p, nil
}

func mul(a, b Fixed) (Fixed, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// Q32.32 * Q32.32 = Q64.64, keep bits 32..95
	// MulQ32 rejects integer-digit products of 30 or more bits
	p, ok := wide.MulQ32(magnitude(a), magnitude(b))
	if !ok || p>>63 != 0 {
		return 0, false
	}
	return applySign(p, SignDiff(a, b)), true
}

// mulTrunc is mul for call sites whose operand ranges cannot overflow
func mulTrunc(a, b Fixed) Fixed {
	p, _ := mul(a, b)
	return p
}

// Div returns a/b, truncated toward zero
func Div(a, b Fixed) (Fixed, error) {
	if b == 0 {
		return 0, divideByZerof("div %s / 0", a)
	}
	ua, ub := magnitude(a), magnitude(b)

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> Shift
	lo := ua << Shift

	// Quotient would need more than 64 bits
	if hi >= ub {
		return 0, overflowf("div %s / %s", a, b)
	}

	q := wide.Div128By64Quo(hi, lo, ub)
	// Top bit set does not fit the signed result, MinFixed included
	if q>>63 != 0 {
		return 0, overflowf("div %s / %s", a, b)
	}
	return applySign(q, SignDiff(a, b)), nil
}

// MulDiv computes (a * b) / c with 128-bit intermediate
// Useful for ratio calculations without precision loss
func MulDiv(a, b, c Fixed) (Fixed, error) {
	if c == 0 {
		return 0, divideByZerof("muldiv %s * %s / 0", a, b)
	}
	uc := magnitude(c)
	hi, lo := wide.Mul64(magnitude(a), magnitude(b))
	if hi >= uc {
		return 0, overflowf("muldiv %s * %s / %s", a, b, c)
	}
	q := wide.Div128By64Quo(hi, lo, uc)
	if q>>63 != 0 {
		return 0, overflowf("muldiv %s * %s / %s", a, b, c)
	}
	return applySign(q, SignDiff(SignDiff(a, b), c)), nil
}

// Lerp returns a + (b-a)*t
func Lerp(a, b, t Fixed) (Fixed, error) {
	d, err := Sub(b, a)
	if err != nil {
		return 0, err
	}
	if d, err = Mul(d, t); err != nil {
		return 0, err
	}
	return Add(a, d)
}
