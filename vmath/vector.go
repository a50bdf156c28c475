package vmath

// Slice operations over a fixed-length sequence of Fixed
// Results go to caller-owned dst, which may alias an input; dst is unspecified on error
// Length mismatches are programmer error and panic

func (k Kernel[B]) zip(op string, dst, a, b []Fixed, f func(x, y Fixed) (Fixed, error)) error {
	checkLen(op, len(dst), a, b)
	for i := range dst {
		v, err := f(a[i], b[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func (k Kernel[B]) VecAdd(dst, a, b []Fixed) error { return k.zip("add", dst, a, b, k.B.Add) }
func (k Kernel[B]) VecSub(dst, a, b []Fixed) error { return k.zip("sub", dst, a, b, k.B.Sub) }
func (k Kernel[B]) VecMul(dst, a, b []Fixed) error { return k.zip("mul", dst, a, b, k.B.Mul) }
func (k Kernel[B]) VecDiv(dst, a, b []Fixed) error { return k.zip("div", dst, a, b, k.B.Div) }

// VecScale multiplies every element of v by s
func (k Kernel[B]) VecScale(dst, v []Fixed, s Fixed) error {
	checkLen("scale", len(dst), v)
	for i := range dst {
		x, err := k.B.Mul(v[i], s)
		if err != nil {
			return err
		}
		dst[i] = x
	}
	return nil
}

// Dot returns the sum of element-wise products
func (k Kernel[B]) Dot(a, b []Fixed) (Fixed, error) {
	checkLen("dot", len(a), b)
	c := k.calc()
	var acc Fixed
	for i := range a {
		acc = c.add(acc, c.mul(a[i], b[i]))
	}
	return acc, c.err
}

func (k Kernel[B]) NormSquared(v []Fixed) (Fixed, error) {
	return k.Dot(v, v)
}

// Norm returns the Euclidean length; the zero vector has length zero
func (k Kernel[B]) Norm(v []Fixed) (Fixed, error) {
	sq, err := k.NormSquared(v)
	if err != nil || sq == 0 {
		return 0, err
	}
	return k.B.Sqrt(sq)
}

// Normalize writes v/|v| to dst; ErrDivideByZero for a zero-length vector
func (k Kernel[B]) Normalize(dst, v []Fixed) error {
	checkLen("normalize", len(dst), v)
	n, err := k.Norm(v)
	if err != nil {
		return err
	}
	if n == 0 {
		return divideByZerof("normalize zero vector")
	}
	for i := range dst {
		x, err := k.B.Div(v[i], n)
		if err != nil {
			return err
		}
		dst[i] = x
	}
	return nil
}

func VecAdd(dst, a, b []Fixed) error         { return std.VecAdd(dst, a, b) }
func VecSub(dst, a, b []Fixed) error         { return std.VecSub(dst, a, b) }
func VecMul(dst, a, b []Fixed) error         { return std.VecMul(dst, a, b) }
func VecDiv(dst, a, b []Fixed) error         { return std.VecDiv(dst, a, b) }
func VecScale(dst, v []Fixed, s Fixed) error { return std.VecScale(dst, v, s) }
func Dot(a, b []Fixed) (Fixed, error)        { return std.Dot(a, b) }
func NormSquared(v []Fixed) (Fixed, error)   { return std.NormSquared(v) }
func Norm(v []Fixed) (Fixed, error)          { return std.Norm(v) }
func Normalize(dst, v []Fixed) error         { return std.Normalize(dst, v) }
