package main

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/lixenwraith/fixkernel/vmath"
)

// accuracyRow is one reference comparison
type accuracyRow struct {
	Op       string  `csv:"op"`
	Input    string  `csv:"input"`
	Kernel   float64 `csv:"kernel"`
	Ref      float64 `csv:"reference"`
	AbsError float64 `csv:"abs_error"`
	Pass     bool    `csv:"pass"`
}

func newAccuracyRow(op, input string, got, ref float64, tol vmath.Fixed) accuracyRow {
	e := math.Abs(got - ref)
	return accuracyRow{Op: op, Input: input, Kernel: got, Ref: ref, AbsError: e, Pass: e <= vmath.ToFloat(tol)}
}

// xorshift keeps sample sets identical between runs
type xorshift uint64

func (x *xorshift) next() uint64 {
	v := uint64(*x)
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*x = xorshift(v)
	return v
}

func (x *xorshift) between(lo, hi vmath.Fixed) vmath.Fixed {
	return lo + vmath.Fixed(x.next()%uint64(hi-lo))
}

func sqrtAccuracy(k vmath.Kernel[vmath.Backend], tol vmath.Fixed) []accuracyRow {
	var rows []accuracyRow
	for _, d := range []int32{1, 2, 4, 9, 100, 500, 1000, 65536, 1 << 30} {
		got, err := k.B.Sqrt(vmath.FromInt(d))
		if err != nil {
			continue
		}
		rows = append(rows, newAccuracyRow("sqrt", vmath.FromInt(d).String(), vmath.ToFloat(got), math.Sqrt(float64(d)), tol))
	}
	return rows
}

func trigAccuracy(k vmath.Kernel[vmath.Backend], tol vmath.Fixed) []accuracyRow {
	var rows []accuracyRow
	for _, deg := range []int32{0, 1, 30, 45, 60, 89, 90, 135, 180, 270, 359, -45, 3600} {
		rad, err := k.DegToRad(vmath.FromInt(deg))
		if err != nil {
			continue
		}
		s, c := k.B.SinCos(rad)
		x := vmath.ToFloat(rad)
		in := vmath.FromInt(deg).String() + "deg"
		rows = append(rows,
			newAccuracyRow("sin", in, vmath.ToFloat(s), math.Sin(x), tol),
			newAccuracyRow("cos", in, vmath.ToFloat(c), math.Cos(x), tol),
		)
	}
	return rows
}

func toDense(m vmath.Mat4) *mat.Dense {
	data := make([]float64, 16)
	for i, v := range m {
		data[i] = vmath.ToFloat(v)
	}
	return mat.NewDense(4, 4, data)
}

// randomMat returns a well-conditioned matrix: entries in [-1, 1) plus 4 on the diagonal
func randomMat(r *xorshift) vmath.Mat4 {
	var m vmath.Mat4
	for i := range m {
		m[i] = r.between(-vmath.One, vmath.One)
	}
	for i := 0; i < 4; i++ {
		m[i*5] += vmath.FromInt(4)
	}
	return m
}

// matrixAccuracy compares determinants against gonum and reports the inverse residual
// max|m·inv - I|
func matrixAccuracy(k vmath.Kernel[vmath.Backend], tol vmath.Fixed, n int) []accuracyRow {
	r := xorshift(0x2545f4914f6cdd1d)
	var rows []accuracyRow
	for i := 0; i < n; i++ {
		m := randomMat(&r)
		in := "rand#" + vmath.FromInt(int32(i)).String()

		d, err := k.Determinant(m)
		if err == nil {
			rows = append(rows, newAccuracyRow("det", in, vmath.ToFloat(d), mat.Det(toDense(m)), tol))
		}

		inv, err := k.Inverse(m)
		if err != nil {
			continue
		}
		prod, err := k.MatMul(m, inv)
		if err != nil {
			continue
		}
		var worst float64
		id := vmath.Identity()
		for j := range prod {
			worst = math.Max(worst, math.Abs(vmath.ToFloat(prod[j]-id[j])))
		}
		rows = append(rows, newAccuracyRow("inverse", in, worst, 0, tol))
	}
	return rows
}
