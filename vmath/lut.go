package vmath

import (
	"github.com/cockroachdb/errors"
)

//go:generate go run ../cmd/lutgen --segments=256 --out sin_table.go

// UnitSin evaluates the quadratic spline for x in [0, π/2)
// Callers reduce the argument first; values outside the range panic
func UnitSin(x Fixed) Fixed {
	if x < 0 || x >= HalfPi {
		panic(errors.AssertionFailedf("vmath: UnitSin argument %s outside [0, π/2)", x))
	}

	// floor(x / π · 2 · SinSegments) on raw values, exact since x < HalfPi
	idx := uint64(x) * SinSegments / uint64(HalfPi)
	if idx >= SinSegments {
		panic(errors.AssertionFailedf("vmath: UnitSin segment %d out of range", idx))
	}

	c := &sinCoeffs[idx]
	// a + x·(b + c·x); every magnitude is below 8 so the products cannot overflow
	y := c[0] + mulTrunc(x, c[1]+mulTrunc(c[2], x))

	// Interpolation error may step a few units past the ends of [0, 1]
	return Clamp(y, 0, One)
}

// quadrantSin is UnitSin with the interval closed at π/2 and non-positive input pinned to 0
// Range reduction produces t within one raw unit outside [0, π/2)
func quadrantSin(t Fixed) Fixed {
	if t <= 0 {
		return 0
	}
	if t >= HalfPi {
		return One
	}
	return UnitSin(t)
}
