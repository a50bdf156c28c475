package vmath

import (
	"math"
)

// Mod returns a reduced by b into (-b, b]: positive a lands in (0, b], negative a in (-b, 0]
// The result equals repeated subtraction or addition of b, computed in constant time
func Mod(a, b Fixed) (Fixed, error) {
	if b <= 0 {
		return 0, domainf("mod %s by %s", a, b)
	}
	r := a % b
	if r == 0 && a > 0 {
		r = b
	}
	return r, nil
}

// reduceAngle maps x into [0, 2π)
func reduceAngle(x Fixed) Fixed {
	r, _ := Mod(x, TwoPi)
	if r < 0 {
		r += TwoPi
	}
	if r >= TwoPi {
		r -= TwoPi
	}
	return r
}

// SinCos returns sin(x) and cos(x) from one range reduction
// [0, 2π) splits into four quadrants, each mapped onto the first-quadrant table:
//
//	q0: ( sin t,  cos t)
//	q1: ( cos t, -sin t)
//	q2: (-sin t, -cos t)
//	q3: (-cos t,  sin t)
func SinCos(x Fixed) (sin, cos Fixed) {
	r := reduceAngle(x)

	q := r / HalfPi
	// TwoPi is one unit above 4·HalfPi
	if q > 3 {
		q = 3
	}
	t := r - q*HalfPi

	sinT := quadrantSin(t)
	cosT := quadrantSin(HalfPi - t)

	switch q {
	case 0:
		return sinT, cosT
	case 1:
		return cosT, -sinT
	case 2:
		return -sinT, -cosT
	default:
		return -cosT, sinT
	}
}

// Sin returns sine of an angle in radians
func Sin(x Fixed) Fixed {
	s, _ := SinCos(x)
	return s
}

// Cos returns cosine of an angle in radians
func Cos(x Fixed) Fixed {
	_, c := SinCos(x)
	return c
}

// Tan returns sin/cos through the same reduction; ErrDivideByZero when the cosine term is 0
// TwoPi is one raw unit above 4·HalfPi, so a pole reached from below zero (e.g. -HalfPi)
// reduces to one unit past 3·HalfPi; the cosine term there is 2^-32 and the divide reports
// ErrOverflow instead
func Tan(x Fixed) (Fixed, error) {
	s, c := SinCos(x)
	if c == 0 {
		return 0, divideByZerof("tan %s", x)
	}
	return Div(s, c)
}

// --- Inverse trigonometry ---
// These round-trip through float64 math and are not bit-reproducible across platforms

func Asin(x Fixed) (Fixed, error) {
	if x < -One || x > One {
		return 0, domainf("asin %s", x)
	}
	return FromFloat(math.Asin(ToFloat(x))), nil
}

func Acos(x Fixed) (Fixed, error) {
	if x < -One || x > One {
		return 0, domainf("acos %s", x)
	}
	return FromFloat(math.Acos(ToFloat(x))), nil
}

func Atan(x Fixed) Fixed {
	return FromFloat(math.Atan(ToFloat(x)))
}

// Atan2 returns the angle of (x, y) in (-π, π]
func Atan2(y, x Fixed) Fixed {
	return FromFloat(math.Atan2(ToFloat(y), ToFloat(x)))
}
