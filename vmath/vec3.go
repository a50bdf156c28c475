package vmath

// Vec3 is a 3D vector in Q32.32 fixed-point
type Vec3 [3]Fixed

func V3(x, y, z Fixed) Vec3 { return Vec3{x, y, z} }

// V3Int builds a vector from integer components
func V3Int(x, y, z int32) Vec3 { return Vec3{FromInt(x), FromInt(y), FromInt(z)} }

func (v Vec3) X() Fixed { return v[0] }
func (v Vec3) Y() Fixed { return v[1] }
func (v Vec3) Z() Fixed { return v[2] }

// Vec4 extends v with w
func (v Vec3) Vec4(w Fixed) Vec4 { return Vec4{v[0], v[1], v[2], w} }

func (v Vec3) Add(w Vec3) (Vec3, error) { return std.Add3(v, w) }
func (v Vec3) Sub(w Vec3) (Vec3, error) { return std.Sub3(v, w) }

// Mul multiplies element-wise
func (v Vec3) Mul(w Vec3) (Vec3, error) { return std.Mul3(v, w) }

// Div divides element-wise
func (v Vec3) Div(w Vec3) (Vec3, error) { return std.Div3(v, w) }

func (v Vec3) Scale(s Fixed) (Vec3, error) { return std.Scale3(v, s) }
func (v Vec3) Dot(w Vec3) (Fixed, error)   { return std.Dot(v[:], w[:]) }
func (v Vec3) NormSquared() (Fixed, error) { return std.NormSquared(v[:]) }
func (v Vec3) Norm() (Fixed, error)        { return std.Norm(v[:]) }
func (v Vec3) Normalize() (Vec3, error)    { return std.Normalize3(v) }
func (v Vec3) Cross(w Vec3) (Vec3, error)  { return std.Cross(v, w) }
func (v Vec3) Angle(w Vec3) (Fixed, error) { return std.Angle(v, w) }

func (k Kernel[B]) Add3(a, b Vec3) (out Vec3, err error) {
	if err = k.VecAdd(out[:], a[:], b[:]); err != nil {
		return Vec3{}, err
	}
	return out, nil
}

func (k Kernel[B]) Sub3(a, b Vec3) (out Vec3, err error) {
	if err = k.VecSub(out[:], a[:], b[:]); err != nil {
		return Vec3{}, err
	}
	return out, nil
}

func (k Kernel[B]) Mul3(a, b Vec3) (out Vec3, err error) {
	if err = k.VecMul(out[:], a[:], b[:]); err != nil {
		return Vec3{}, err
	}
	return out, nil
}

func (k Kernel[B]) Div3(a, b Vec3) (out Vec3, err error) {
	if err = k.VecDiv(out[:], a[:], b[:]); err != nil {
		return Vec3{}, err
	}
	return out, nil
}

func (k Kernel[B]) Scale3(v Vec3, s Fixed) (out Vec3, err error) {
	if err = k.VecScale(out[:], v[:], s); err != nil {
		return Vec3{}, err
	}
	return out, nil
}

func (k Kernel[B]) Normalize3(v Vec3) (out Vec3, err error) {
	if err = k.Normalize(out[:], v[:]); err != nil {
		return Vec3{}, err
	}
	return out, nil
}

// Cross returns a × b
func (k Kernel[B]) Cross(a, b Vec3) (Vec3, error) {
	c := k.calc()
	out := Vec3{
		c.det2(a[1], a[2], b[1], b[2]),
		c.det2(a[2], a[0], b[2], b[0]),
		c.det2(a[0], a[1], b[0], b[1]),
	}
	if c.err != nil {
		return Vec3{}, c.err
	}
	return out, nil
}

// Angle returns acos(a·b / (|a|·|b|)) in radians
// Inherits the float64 round trip of Acos
func (k Kernel[B]) Angle(a, b Vec3) (Fixed, error) {
	dot, err := k.Dot(a[:], b[:])
	if err != nil {
		return 0, err
	}
	na, err := k.Norm(a[:])
	if err != nil {
		return 0, err
	}
	nb, err := k.Norm(b[:])
	if err != nil {
		return 0, err
	}
	denom, err := k.B.Mul(na, nb)
	if err != nil {
		return 0, err
	}
	if denom == 0 {
		return 0, divideByZerof("angle with zero vector")
	}
	ratio, err := k.B.Div(dot, denom)
	if err != nil {
		return 0, err
	}
	// Rounding can push |ratio| a few units past one
	return Acos(Clamp(ratio, -One, One))
}
