package vmath

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomMat returns a diagonally dominant matrix with entries in [-1, 1] plus 4 on the
// diagonal, comfortably invertible
func randomMat(r *fixedRand) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = r.between(-One, One)
	}
	for i := 0; i < 4; i++ {
		m[i*4+i] += FromInt(4)
	}
	return m
}

func toDense(m Mat4) *mat.Dense {
	data := make([]float64, 16)
	for i, v := range m {
		data[i] = ToFloat(v)
	}
	return mat.NewDense(4, 4, data)
}

func TestMat4Accessors(t *testing.T) {
	var m Mat4
	for i := range m {
		m[i] = FromInt(int32(i))
	}
	require.Equal(t, V4(FromInt(4), FromInt(5), FromInt(6), FromInt(7)), m.Row(1))
	require.Equal(t, V4(FromInt(2), FromInt(6), FromInt(10), FromInt(14)), m.Column(2))
	require.Equal(t, FromInt(9), m.At(2, 1))

	tr := m.Transpose()
	require.Equal(t, m.Row(3), tr.Column(3))
	require.Equal(t, FromInt(9), tr.At(1, 2))
	require.Equal(t, m, tr.Transpose())
}

func TestMat4MulIdentity(t *testing.T) {
	r := newFixedRand(43)
	for i := 0; i < 200; i++ {
		var m Mat4
		for j := range m {
			m[j] = r.between(-FromInt(100), FromInt(100))
		}
		got, err := m.Mul(Identity())
		require.NoError(t, err)
		require.Equal(t, m, got)

		got, err = Identity().Mul(m)
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestMat4MulKnown(t *testing.T) {
	a := Translate(V3Int(1, 2, 3))
	b := Scale(V3Int(2, 2, 2))

	ab, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, Mat4{
		FromInt(2), 0, 0, One,
		0, FromInt(2), 0, FromInt(2),
		0, 0, FromInt(2), FromInt(3),
		0, 0, 0, One,
	}, ab)

	ba, err := b.Mul(a)
	require.NoError(t, err)
	require.Equal(t, Mat4{
		FromInt(2), 0, 0, FromInt(2),
		0, FromInt(2), 0, FromInt(4),
		0, 0, FromInt(2), FromInt(6),
		0, 0, 0, One,
	}, ba)
}

func TestMat4AddScale(t *testing.T) {
	m := must[Mat4](t)
	sum := m(Identity().Add(Identity()))
	require.Equal(t, m(Identity().MulScalar(FromInt(2))), sum)

	_, err := Mat4{MaxFixed}.Add(Mat4{One})
	require.True(t, errors.Is(err, ErrOverflow))
	_, err = Mat4{MaxFixed}.MulScalar(FromInt(2))
	require.True(t, errors.Is(err, ErrOverflow))
}

func TestDeterminant(t *testing.T) {
	d, err := Identity().Determinant()
	require.NoError(t, err)
	require.Equal(t, One, d)

	d, err = Scale(V3Int(2, 3, 4)).Determinant()
	require.NoError(t, err)
	require.Equal(t, FromInt(24), d)

	d, err = Scale(V3Int(0, 1, 1)).Determinant()
	require.NoError(t, err)
	require.Equal(t, Fixed(0), d)

	r := newFixedRand(47)
	for i := 0; i < 200; i++ {
		m := randomMat(r)
		d, err := m.Determinant()
		require.NoError(t, err)
		requireNear(t, FromFloat(mat.Det(toDense(m))), d, mathTol)
	}
}

func TestInverse(t *testing.T) {
	r := newFixedRand(53)
	for i := 0; i < 200; i++ {
		m := randomMat(r)
		inv, err := m.Inverse()
		require.NoError(t, err)

		prod, err := m.Mul(inv)
		require.NoError(t, err)
		requireNearMat(t, Identity(), prod, mathTol)

		var ref mat.Dense
		require.NoError(t, ref.Inverse(toDense(m)))
		for j := range inv {
			want := ref.At(j/4, j%4)
			require.InDelta(t, want, ToFloat(inv[j]), 1e-6)
		}
	}
}

func TestInverseTransforms(t *testing.T) {
	m, err := TRS(V3Int(3, -2, 7), V3Int(30, 45, 60), V3(FromInt(2), Half, FromInt(3)))
	require.NoError(t, err)
	inv, err := m.Inverse()
	require.NoError(t, err)

	p := V3Int(5, 6, -1)
	q, err := m.TransformPoint(p)
	require.NoError(t, err)
	back, err := inv.TransformPoint(q)
	require.NoError(t, err)
	requireNearVec3(t, p, back, mathTol)
}

func TestInverseSingular(t *testing.T) {
	_, err := Scale(V3Int(0, 1, 1)).Inverse()
	require.True(t, errors.Is(err, ErrSingularMatrix))

	_, err = Mat4{}.Inverse()
	require.True(t, errors.Is(err, ErrSingularMatrix))

	_, err = Skew(V3Int(1, 2, 3)).Inverse()
	require.True(t, errors.Is(err, ErrSingularMatrix))
}

func TestTranslateOrigin(t *testing.T) {
	p, err := Translate(V3Int(1, 2, 3)).TransformPoint(Vec3{})
	require.NoError(t, err)
	require.Equal(t, V3Int(1, 2, 3), p)

	d, err := Translate(V3Int(1, 2, 3)).TransformDir(V3Int(1, 0, 0))
	require.NoError(t, err)
	require.Equal(t, V3Int(1, 0, 0), d)

	v, err := Translate(V3Int(1, 2, 3)).MulVec4(V4(0, 0, 0, One))
	require.NoError(t, err)
	require.Equal(t, V4(One, FromInt(2), FromInt(3), One), v)
}

func TestRotations(t *testing.T) {
	m := must[Mat4](t)
	v := must[Vec3](t)
	ninety := FromInt(90)

	requireNearVec3(t, V3Int(0, 1, 0), v(m(RotateZ(ninety)).TransformPoint(V3Int(1, 0, 0))), lutTol)
	requireNearVec3(t, V3Int(0, 0, 1), v(m(RotateX(ninety)).TransformPoint(V3Int(0, 1, 0))), lutTol)
	requireNearVec3(t, V3Int(1, 0, 0), v(m(RotateY(ninety)).TransformPoint(V3Int(0, 0, 1))), lutTol)
	requireNearVec3(t, V3Int(-1, 0, 0), v(m(RotateZ(FromInt(180))).TransformPoint(V3Int(1, 0, 0))), lutTol)

	for _, deg := range []int32{0, 17, 90, 135, -60, 720} {
		for _, rot := range []func(Fixed) (Mat4, error){RotateX, RotateY, RotateZ} {
			d, err := m(rot(FromInt(deg))).Determinant()
			require.NoError(t, err)
			requireNear(t, One, d, lutTol, "deg %d", deg)
		}
	}

	require.Equal(t, Identity(), m(RotateZXY(Vec3{})))
}

func TestRotateZXYOrder(t *testing.T) {
	m := must[Mat4](t)
	euler := V3Int(30, -45, 60)

	want := m(m(RotateY(euler.Y())).Mul(m(m(RotateX(euler.X())).Mul(m(RotateZ(euler.Z()))))))
	require.Equal(t, want, m(RotateZXY(euler)))

	// Z applies first: x-axis goes to y under Z(90), then X(90) sends y to z
	p, err := m(RotateZXY(V3Int(90, 0, 90))).TransformPoint(V3Int(1, 0, 0))
	require.NoError(t, err)
	requireNearVec3(t, V3Int(0, 0, 1), p, lutTol)
}

func TestSkew(t *testing.T) {
	a, b := V3Int(1, 2, 3), V3(Half, FromInt(-4), FromInt(2))
	cross, err := a.Cross(b)
	require.NoError(t, err)
	got, err := Skew(a).TransformDir(b)
	require.NoError(t, err)
	require.Equal(t, cross, got)
}

func TestAxisAngle(t *testing.T) {
	m := must[Mat4](t)

	requireNearMat(t, m(RotateZ(FromInt(90))), m(AxisAngle(V3Int(0, 0, 5), FromInt(90))), mathTol)
	requireNearMat(t, m(RotateX(FromInt(-30))), m(AxisAngle(V3Int(2, 0, 0), FromInt(-30))), mathTol)

	// The axis is fixed by its own rotation
	axis := V3Int(1, 1, 1)
	p, err := m(AxisAngle(axis, FromInt(77))).TransformPoint(axis)
	require.NoError(t, err)
	requireNearVec3(t, axis, p, mathTol)

	// 120° about (1,1,1) cycles the basis vectors
	p, err = m(AxisAngle(axis, FromInt(120))).TransformPoint(V3Int(1, 0, 0))
	require.NoError(t, err)
	requireNearVec3(t, V3Int(0, 1, 0), p, mathTol)

	_, err = AxisAngle(Vec3{}, FromInt(10))
	require.True(t, errors.Is(err, ErrDivideByZero))
}

func TestTRS(t *testing.T) {
	m := must[Mat4](t)
	tr, rot, sc := V3Int(1, 2, 3), V3Int(10, 20, 30), V3Int(2, 3, 4)

	want := m(m(RotateZXY(rot)).Mul(m(Translate(tr).Mul(Scale(sc)))))
	require.Equal(t, want, m(TRS(tr, rot, sc)))

	// Without rotation: p -> t + s·p
	p, err := m(TRS(tr, Vec3{}, sc)).TransformPoint(V3Int(1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, V3Int(3, 5, 7), p)
}

func TestMat4FloatReference(t *testing.T) {
	m := must[Mat4](t)
	k := NewKernel(FloatBackend{})
	r := newFixedRand(59)
	for i := 0; i < 50; i++ {
		a, b := randomMat(r), randomMat(r)
		fixed := m(a.Mul(b))
		float := m(k.MatMul(a, b))
		requireNearMat(t, float, fixed, 1<<8)

		var ref mat.Dense
		ref.Mul(toDense(a), toDense(b))
		for j := range fixed {
			require.InDelta(t, ref.At(j/4, j%4), ToFloat(fixed[j]), 1e-7)
		}
	}
}
