package vmath

// Transform builders return fresh matrices; angles are in degrees

// Translate places v in the last column
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3], m[7], m[11] = v[0], v[1], v[2]
	return m
}

func Scale(v Vec3) Mat4 {
	return Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, One,
	}
}

// Skew returns the cross-product matrix of v: Skew(v)·w == v × w
// The homogeneous row and column are zero
func Skew(v Vec3) Mat4 {
	x, y, z := v[0], v[1], v[2]
	return Mat4{
		0, -z, y, 0,
		z, 0, -x, 0,
		-y, x, 0, 0,
		0, 0, 0, 0,
	}
}

func (k Kernel[B]) sinCosDeg(deg Fixed) (sin, cos Fixed, err error) {
	rad, err := k.DegToRad(deg)
	if err != nil {
		return 0, 0, err
	}
	sin, cos = k.B.SinCos(rad)
	return sin, cos, nil
}

func (k Kernel[B]) RotateX(deg Fixed) (Mat4, error) {
	s, c, err := k.sinCosDeg(deg)
	if err != nil {
		return Mat4{}, err
	}
	return Mat4{
		One, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, One,
	}, nil
}

func (k Kernel[B]) RotateY(deg Fixed) (Mat4, error) {
	s, c, err := k.sinCosDeg(deg)
	if err != nil {
		return Mat4{}, err
	}
	return Mat4{
		c, 0, s, 0,
		0, One, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, One,
	}, nil
}

func (k Kernel[B]) RotateZ(deg Fixed) (Mat4, error) {
	s, c, err := k.sinCosDeg(deg)
	if err != nil {
		return Mat4{}, err
	}
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, One, 0,
		0, 0, 0, One,
	}, nil
}

// RotateZXY applies euler Z first, then X, then Y: Ry·Rx·Rz
// The order is fixed to match the transform hierarchy
func (k Kernel[B]) RotateZXY(euler Vec3) (Mat4, error) {
	rx, err := k.RotateX(euler[0])
	if err != nil {
		return Mat4{}, err
	}
	ry, err := k.RotateY(euler[1])
	if err != nil {
		return Mat4{}, err
	}
	rz, err := k.RotateZ(euler[2])
	if err != nil {
		return Mat4{}, err
	}
	rxz, err := k.MatMul(rx, rz)
	if err != nil {
		return Mat4{}, err
	}
	return k.MatMul(ry, rxz)
}

// AxisAngle builds the rotation about axis by deg with Rodrigues' formula:
// I + sin·K + (1-cos)·K², K the skew matrix of the normalized axis
// A zero axis is ErrDivideByZero
func (k Kernel[B]) AxisAngle(axis Vec3, deg Fixed) (Mat4, error) {
	n, err := k.Normalize3(axis)
	if err != nil {
		return Mat4{}, err
	}
	s, c, err := k.sinCosDeg(deg)
	if err != nil {
		return Mat4{}, err
	}

	kk := Skew(n)
	kk2, err := k.MatMul(kk, kk)
	if err != nil {
		return Mat4{}, err
	}
	versin, err := k.B.Sub(One, c)
	if err != nil {
		return Mat4{}, err
	}

	sk, err := k.MatScale(kk, s)
	if err != nil {
		return Mat4{}, err
	}
	vk2, err := k.MatScale(kk2, versin)
	if err != nil {
		return Mat4{}, err
	}
	m, err := k.MatAdd(Identity(), sk)
	if err != nil {
		return Mat4{}, err
	}
	return k.MatAdd(m, vk2)
}

// TRS composes RotateZXY(rotation)·(Translate(translation)·Scale(scale))
func (k Kernel[B]) TRS(translation, rotation, scale Vec3) (Mat4, error) {
	r, err := k.RotateZXY(rotation)
	if err != nil {
		return Mat4{}, err
	}
	ts, err := k.MatMul(Translate(translation), Scale(scale))
	if err != nil {
		return Mat4{}, err
	}
	return k.MatMul(r, ts)
}

func RotateX(deg Fixed) (Mat4, error)              { return std.RotateX(deg) }
func RotateY(deg Fixed) (Mat4, error)              { return std.RotateY(deg) }
func RotateZ(deg Fixed) (Mat4, error)              { return std.RotateZ(deg) }
func RotateZXY(euler Vec3) (Mat4, error)           { return std.RotateZXY(euler) }
func AxisAngle(axis Vec3, deg Fixed) (Mat4, error) { return std.AxisAngle(axis, deg) }
func TRS(translation, rotation, scale Vec3) (Mat4, error) {
	return std.TRS(translation, rotation, scale)
}
