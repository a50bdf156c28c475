package vmath

// Mat4 is a 4x4 matrix stored row-major: element (r, c) is m[r*4+c]
// Column vectors: a transform M maps p to M·p
type Mat4 [16]Fixed

func Identity() Mat4 {
	return Mat4{
		One, 0, 0, 0,
		0, One, 0, 0,
		0, 0, One, 0,
		0, 0, 0, One,
	}
}

func (m Mat4) At(r, c int) Fixed { return m[r*4+c] }

func (m Mat4) Row(r int) Vec4 {
	return Vec4{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

func (m Mat4) Column(c int) Vec4 {
	return Vec4{m[c], m[4+c], m[8+c], m[12+c]}
}

func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

func (m Mat4) Mul(b Mat4) (Mat4, error)            { return std.MatMul(m, b) }
func (m Mat4) MulScalar(s Fixed) (Mat4, error)     { return std.MatScale(m, s) }
func (m Mat4) Add(b Mat4) (Mat4, error)            { return std.MatAdd(m, b) }
func (m Mat4) MulVec4(v Vec4) (Vec4, error)        { return std.MatMulVec4(m, v) }
func (m Mat4) TransformPoint(p Vec3) (Vec3, error) { return std.TransformPoint(m, p) }
func (m Mat4) TransformDir(d Vec3) (Vec3, error)   { return std.TransformDir(m, d) }
func (m Mat4) Determinant() (Fixed, error)         { return std.Determinant(m) }
func (m Mat4) Inverse() (Mat4, error)              { return std.Inverse(m) }

// MatMul returns a·b, each element the dot product of a row of a and a column of b
func (k Kernel[B]) MatMul(a, b Mat4) (Mat4, error) {
	var out Mat4
	for i := 0; i < 4; i++ {
		row := a.Row(i)
		for j := 0; j < 4; j++ {
			col := b.Column(j)
			v, err := k.Dot(row[:], col[:])
			if err != nil {
				return Mat4{}, err
			}
			out[i*4+j] = v
		}
	}
	return out, nil
}

func (k Kernel[B]) MatScale(m Mat4, s Fixed) (out Mat4, err error) {
	if err = k.VecScale(out[:], m[:], s); err != nil {
		return Mat4{}, err
	}
	return out, nil
}

func (k Kernel[B]) MatAdd(a, b Mat4) (out Mat4, err error) {
	if err = k.VecAdd(out[:], a[:], b[:]); err != nil {
		return Mat4{}, err
	}
	return out, nil
}

// MatMulVec4 returns m·v
func (k Kernel[B]) MatMulVec4(m Mat4, v Vec4) (Vec4, error) {
	var out Vec4
	for i := 0; i < 4; i++ {
		row := m.Row(i)
		x, err := k.Dot(row[:], v[:])
		if err != nil {
			return Vec4{}, err
		}
		out[i] = x
	}
	return out, nil
}

// TransformPoint applies m to p with w = 1; affine matrices need no divide
func (k Kernel[B]) TransformPoint(m Mat4, p Vec3) (Vec3, error) {
	v, err := k.MatMulVec4(m, p.Vec4(One))
	return v.Vec3(), err
}

// TransformDir applies m to d with w = 0, ignoring translation
func (k Kernel[B]) TransformDir(m Mat4, d Vec3) (Vec3, error) {
	v, err := k.MatMulVec4(m, d.Vec4(0))
	return v.Vec3(), err
}

// minors holds the twelve 2x2 sub-determinants of the top two and bottom two rows
// Every term of the 4x4 Laplace expansion factors through them
type minors struct {
	b00, b01, b02, b03, b04, b05 Fixed
	b06, b07, b08, b09, b10, b11 Fixed
}

func (c *calc[B]) minors(m *Mat4) minors {
	return minors{
		b00: c.det2(m[0], m[1], m[4], m[5]),
		b01: c.det2(m[0], m[2], m[4], m[6]),
		b02: c.det2(m[0], m[3], m[4], m[7]),
		b03: c.det2(m[1], m[2], m[5], m[6]),
		b04: c.det2(m[1], m[3], m[5], m[7]),
		b05: c.det2(m[2], m[3], m[6], m[7]),
		b06: c.det2(m[8], m[9], m[12], m[13]),
		b07: c.det2(m[8], m[10], m[12], m[14]),
		b08: c.det2(m[8], m[11], m[12], m[15]),
		b09: c.det2(m[9], m[10], m[13], m[14]),
		b10: c.det2(m[9], m[11], m[13], m[15]),
		b11: c.det2(m[10], m[11], m[14], m[15]),
	}
}

// det is the 24-term expansion grouped by minors
func (c *calc[B]) det(s *minors) Fixed {
	d := c.mul(s.b00, s.b11)
	d = c.sub(d, c.mul(s.b01, s.b10))
	d = c.add(d, c.mul(s.b02, s.b09))
	d = c.add(d, c.mul(s.b03, s.b08))
	d = c.sub(d, c.mul(s.b04, s.b07))
	return c.add(d, c.mul(s.b05, s.b06))
}

// plus3 returns x·p - y·q + z·r
func (c *calc[B]) plus3(x, p, y, q, z, r Fixed) Fixed {
	return c.add(c.sub(c.mul(x, p), c.mul(y, q)), c.mul(z, r))
}

// minus3 returns x·p - y·q - z·r
func (c *calc[B]) minus3(x, p, y, q, z, r Fixed) Fixed {
	return c.sub(c.sub(c.mul(x, p), c.mul(y, q)), c.mul(z, r))
}

// Determinant uses closed-form cofactor expansion, no pivoting
// Each 2x2 minor is truncated before the outer products, so low bits follow the grouping
func (k Kernel[B]) Determinant(m Mat4) (Fixed, error) {
	c := k.calc()
	s := c.minors(&m)
	d := c.det(&s)
	return d, c.err
}

// Inverse returns the adjugate scaled by 1/det; ErrSingularMatrix when det == 0
func (k Kernel[B]) Inverse(m Mat4) (Mat4, error) {
	c := k.calc()
	s := c.minors(&m)
	d := c.det(&s)
	if c.err != nil {
		return Mat4{}, c.err
	}
	if d == 0 {
		return Mat4{}, ErrSingularMatrix
	}
	inv := c.div(One, d)

	adj := Mat4{
		c.plus3(m[5], s.b11, m[6], s.b10, m[7], s.b09),
		c.minus3(m[2], s.b10, m[1], s.b11, m[3], s.b09),
		c.plus3(m[13], s.b05, m[14], s.b04, m[15], s.b03),
		c.minus3(m[10], s.b04, m[9], s.b05, m[11], s.b03),
		c.minus3(m[6], s.b08, m[4], s.b11, m[7], s.b07),
		c.plus3(m[0], s.b11, m[2], s.b08, m[3], s.b07),
		c.minus3(m[14], s.b02, m[12], s.b05, m[15], s.b01),
		c.plus3(m[8], s.b05, m[10], s.b02, m[11], s.b01),
		c.plus3(m[4], s.b10, m[5], s.b08, m[7], s.b06),
		c.minus3(m[1], s.b08, m[0], s.b10, m[3], s.b06),
		c.plus3(m[12], s.b04, m[13], s.b02, m[15], s.b00),
		c.minus3(m[9], s.b02, m[8], s.b04, m[11], s.b00),
		c.minus3(m[5], s.b07, m[4], s.b09, m[6], s.b06),
		c.plus3(m[0], s.b09, m[1], s.b07, m[2], s.b06),
		c.minus3(m[13], s.b01, m[12], s.b03, m[14], s.b00),
		c.plus3(m[8], s.b03, m[9], s.b01, m[10], s.b00),
	}
	for i := range adj {
		adj[i] = c.mul(adj[i], inv)
	}
	if c.err != nil {
		return Mat4{}, c.err
	}
	return adj, nil
}
