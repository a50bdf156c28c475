package vmath

import (
	"github.com/cockroachdb/errors"
)

// Kernel runs the vector and matrix algorithms on top of a numeric backend
// Kernel[FixedBackend] is deterministic; Kernel[FloatBackend] is the float64 reference;
// Kernel[Backend] selects either at runtime
type Kernel[B Backend] struct {
	B B
}

func NewKernel[B Backend](b B) Kernel[B] {
	return Kernel[B]{B: b}
}

// std backs the package-level vector and matrix functions: fixed-point, Checked mode
var std = Kernel[FixedBackend]{}

// Default returns the kernel used by package-level functions and Vec3/Vec4/Mat4 methods
func Default() Kernel[FixedBackend] { return std }

// calc threads the first error through a chain of backend operations
// After a failure every operation returns 0 and the original error is kept
type calc[B Backend] struct {
	b   B
	err error
}

func (c *calc[B]) keep(v Fixed, err error) Fixed {
	if err != nil {
		c.err = err
		return 0
	}
	return v
}

func (c *calc[B]) add(x, y Fixed) Fixed {
	if c.err != nil {
		return 0
	}
	return c.keep(c.b.Add(x, y))
}

func (c *calc[B]) sub(x, y Fixed) Fixed {
	if c.err != nil {
		return 0
	}
	return c.keep(c.b.Sub(x, y))
}

func (c *calc[B]) mul(x, y Fixed) Fixed {
	if c.err != nil {
		return 0
	}
	return c.keep(c.b.Mul(x, y))
}

func (c *calc[B]) div(x, y Fixed) Fixed {
	if c.err != nil {
		return 0
	}
	return c.keep(c.b.Div(x, y))
}

// det2 returns a·d - b·c
func (c *calc[B]) det2(a, b, cc, d Fixed) Fixed {
	return c.sub(c.mul(a, d), c.mul(b, cc))
}

func (k Kernel[B]) calc() *calc[B] {
	return &calc[B]{b: k.B}
}

// DegToRad converts through the backend multiply
func (k Kernel[B]) DegToRad(deg Fixed) (Fixed, error) {
	return k.B.Mul(deg, degToRad)
}

func checkLen(op string, n int, vs ...[]Fixed) {
	for _, v := range vs {
		if len(v) != n {
			panic(errors.AssertionFailedf("vmath: %s length mismatch %d != %d", op, len(v), n))
		}
	}
}
