package vmath

import (
	"math"
)

// Fixed is a Q32.32 fixed-point number
type Fixed int64

// Q32.32 Fixed Point constants
const (
	Shift          = 32
	One      Fixed = 1 << Shift
	Half     Fixed = 1 << (Shift - 1)
	FracMask Fixed = One - 1
	Epsilon  Fixed = 1
	MaxFixed Fixed = math.MaxInt64
	MinFixed Fixed = math.MinInt64

	ScaleF = float64(One)
)

// Angle constants, nearest Q32.32 value of the real constant
const (
	Pi        Fixed = 13493037705
	HalfPi    Fixed = 6746518852
	QuarterPi Fixed = 3373259426
	TwoPi     Fixed = 26986075409

	degToRad Fixed = 74961321     // π/180
	radToDeg Fixed = 246083499208 // 180/π
)

// --- Conversion ---

func FromInt(i int32) Fixed { return Fixed(int64(i) << Shift) }

// ToInt floors toward negative infinity (arithmetic shift)
func ToInt(f Fixed) int32 { return int32(f >> Shift) }

// FromFloat scales by 2^32 and truncates toward zero
// Out of range and NaN inputs give an unspecified value; use FromFloatChecked for untrusted input
func FromFloat(f float64) Fixed { return Fixed(f * ScaleF) }

func ToFloat(f Fixed) float64 { return float64(f) / ScaleF }

// FromFloatChecked is FromFloat with ErrOverflow for NaN, infinities and values outside the
// representable range
func FromFloatChecked(f float64) (Fixed, error) {
	scaled := f * ScaleF
	// 2^63 is exact in float64; int64 accepts [-2^63, 2^63)
	if math.IsNaN(scaled) || scaled >= -math.MinInt64 || scaled < math.MinInt64 {
		return 0, overflowf("convert %g", f)
	}
	return Fixed(scaled), nil
}

// --- Comparison ---

// Compare returns -1, 0 or +1; the raw ordering matches the real-number ordering
func Compare(a, b Fixed) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func Less(a, b Fixed) bool           { return a < b }
func Greater(a, b Fixed) bool        { return a > b }
func LessOrEqual(a, b Fixed) bool    { return a <= b }
func GreaterOrEqual(a, b Fixed) bool { return a >= b }
func Equal(a, b Fixed) bool          { return a == b }
func NotEqual(a, b Fixed) bool       { return a != b }

// --- Rounding ---

// Floor clears the fraction bits
func Floor(f Fixed) Fixed { return f &^ FracMask }

// Ceil wraps for inputs above MaxFixed-FracMask
func Ceil(f Fixed) Fixed { return (f + FracMask) &^ FracMask }

// Fract keeps the fraction bits; the result is always in [0, 1)
func Fract(f Fixed) Fixed { return f & FracMask }

// Round rounds half up
func Round(f Fixed) Fixed { return (f + Half) &^ FracMask }

// --- Sign and magnitude ---

func Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

func Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

// Clamp limits f to [lo, hi]
func Clamp(f, lo, hi Fixed) Fixed {
	return Max(lo, Min(f, hi))
}

// Abs returns absolute value; Abs(MinFixed) wraps to MinFixed
func Abs(f Fixed) Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Neg wraps for MinFixed
func Neg(f Fixed) Fixed { return -f }

// Sign returns -One or One, zero counts as positive
func Sign(f Fixed) Fixed {
	if f < 0 {
		return -One
	}
	return One
}

// SignDiff returns the product of the signs of a and b
func SignDiff(a, b Fixed) Fixed {
	if (a < 0) != (b < 0) {
		return -One
	}
	return One
}

// magnitude returns |f| as uint64; exact for MinFixed
func magnitude(f Fixed) uint64 {
	if f < 0 {
		return uint64(-f)
	}
	return uint64(f)
}

// applySign re-signs an unsigned magnitude by a SignDiff result
func applySign(m uint64, sign Fixed) Fixed {
	if sign < 0 {
		return -Fixed(m)
	}
	return Fixed(m)
}

// --- Angles ---

func DegToRad(deg Fixed) (Fixed, error) { return Mul(deg, degToRad) }

func RadToDeg(rad Fixed) (Fixed, error) { return Mul(rad, radToDeg) }
