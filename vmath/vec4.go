package vmath

// Vec4 is a 4D vector in Q32.32 fixed-point, used for homogeneous coordinates
type Vec4 [4]Fixed

func V4(x, y, z, w Fixed) Vec4 { return Vec4{x, y, z, w} }

func (v Vec4) X() Fixed { return v[0] }
func (v Vec4) Y() Fixed { return v[1] }
func (v Vec4) Z() Fixed { return v[2] }
func (v Vec4) W() Fixed { return v[3] }

// Vec3 drops w without a perspective divide
func (v Vec4) Vec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

func (v Vec4) Add(w Vec4) (Vec4, error)    { return std.Add4(v, w) }
func (v Vec4) Sub(w Vec4) (Vec4, error)    { return std.Sub4(v, w) }
func (v Vec4) Mul(w Vec4) (Vec4, error)    { return std.Mul4(v, w) }
func (v Vec4) Div(w Vec4) (Vec4, error)    { return std.Div4(v, w) }
func (v Vec4) Scale(s Fixed) (Vec4, error) { return std.Scale4(v, s) }
func (v Vec4) Dot(w Vec4) (Fixed, error)   { return std.Dot(v[:], w[:]) }
func (v Vec4) NormSquared() (Fixed, error) { return std.NormSquared(v[:]) }
func (v Vec4) Norm() (Fixed, error)        { return std.Norm(v[:]) }
func (v Vec4) Normalize() (Vec4, error)    { return std.Normalize4(v) }

func (k Kernel[B]) Add4(a, b Vec4) (out Vec4, err error) {
	if err = k.VecAdd(out[:], a[:], b[:]); err != nil {
		return Vec4{}, err
	}
	return out, nil
}

func (k Kernel[B]) Sub4(a, b Vec4) (out Vec4, err error) {
	if err = k.VecSub(out[:], a[:], b[:]); err != nil {
		return Vec4{}, err
	}
	return out, nil
}

func (k Kernel[B]) Mul4(a, b Vec4) (out Vec4, err error) {
	if err = k.VecMul(out[:], a[:], b[:]); err != nil {
		return Vec4{}, err
	}
	return out, nil
}

func (k Kernel[B]) Div4(a, b Vec4) (out Vec4, err error) {
	if err = k.VecDiv(out[:], a[:], b[:]); err != nil {
		return Vec4{}, err
	}
	return out, nil
}

func (k Kernel[B]) Scale4(v Vec4, s Fixed) (out Vec4, err error) {
	if err = k.VecScale(out[:], v[:], s); err != nil {
		return Vec4{}, err
	}
	return out, nil
}

func (k Kernel[B]) Normalize4(v Vec4) (out Vec4, err error) {
	if err = k.Normalize(out[:], v[:]); err != nil {
		return Vec4{}, err
	}
	return out, nil
}
