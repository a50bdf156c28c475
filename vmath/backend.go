package vmath

import (
	"math"
)

// Backend is the numeric engine behind the kernel's scalar primitives
// Both implementations take and return Fixed, only the internal computation differs
type Backend interface {
	Name() string
	Add(a, b Fixed) (Fixed, error)
	Sub(a, b Fixed) (Fixed, error)
	Mul(a, b Fixed) (Fixed, error)
	Div(a, b Fixed) (Fixed, error)
	Mod(a, b Fixed) (Fixed, error)
	Sqrt(a Fixed) (Fixed, error)
	SinCos(a Fixed) (sin, cos Fixed)
	Tan(a Fixed) (Fixed, error)
}

// FixedBackend runs the deterministic integer algorithms
// The zero value uses Checked mode
type FixedBackend struct {
	Mode Mode
}

func (b FixedBackend) Name() string { return "fixed/" + b.Mode.String() }

func (b FixedBackend) Add(x, y Fixed) (Fixed, error) { return b.Mode.Add(x, y) }
func (b FixedBackend) Sub(x, y Fixed) (Fixed, error) { return b.Mode.Sub(x, y) }
func (FixedBackend) Mul(x, y Fixed) (Fixed, error)   { return Mul(x, y) }
func (FixedBackend) Div(x, y Fixed) (Fixed, error)   { return Div(x, y) }
func (FixedBackend) Mod(x, y Fixed) (Fixed, error)   { return Mod(x, y) }
func (FixedBackend) Sqrt(x Fixed) (Fixed, error)     { return Sqrt(x) }
func (FixedBackend) SinCos(x Fixed) (sin, cos Fixed) { return SinCos(x) }
func (FixedBackend) Tan(x Fixed) (Fixed, error)      { return Tan(x) }

// FloatBackend routes every primitive through IEEE-754 float64 for comparison against a
// reference; results are converted back to Fixed and are not bit-reproducible
type FloatBackend struct{}

func (FloatBackend) Name() string { return "float" }

func (FloatBackend) Add(x, y Fixed) (Fixed, error) {
	return floatResult("add", ToFloat(x)+ToFloat(y))
}

func (FloatBackend) Sub(x, y Fixed) (Fixed, error) {
	return floatResult("sub", ToFloat(x)-ToFloat(y))
}

func (FloatBackend) Mul(x, y Fixed) (Fixed, error) {
	return floatResult("mul", ToFloat(x)*ToFloat(y))
}

func (FloatBackend) Div(x, y Fixed) (Fixed, error) {
	if y == 0 {
		return 0, divideByZerof("div %s / 0", x)
	}
	return floatResult("div", ToFloat(x)/ToFloat(y))
}

func (FloatBackend) Mod(x, y Fixed) (Fixed, error) {
	if y <= 0 {
		return 0, domainf("mod %s by %s", x, y)
	}
	return floatResult("mod", math.Mod(ToFloat(x), ToFloat(y)))
}

func (FloatBackend) Sqrt(x Fixed) (Fixed, error) {
	if x <= 0 {
		return 0, domainf("sqrt %s", x)
	}
	return floatResult("sqrt", math.Sqrt(ToFloat(x)))
}

func (FloatBackend) SinCos(x Fixed) (sin, cos Fixed) {
	s, c := math.Sincos(ToFloat(x))
	return FromFloat(s), FromFloat(c)
}

func (FloatBackend) Tan(x Fixed) (Fixed, error) {
	s, c := math.Sincos(ToFloat(x))
	if c == 0 {
		return 0, divideByZerof("tan %s", x)
	}
	return floatResult("tan", s/c)
}

func floatResult(op string, f float64) (Fixed, error) {
	v, err := FromFloatChecked(f)
	if err != nil {
		return 0, overflowf("%s result %g", op, f)
	}
	return v, nil
}
