package vmath

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestBackendNames(t *testing.T) {
	require.Equal(t, "fixed/checked", FixedBackend{}.Name())
	require.Equal(t, "fixed/wrapping", FixedBackend{Mode: Wrapping}.Name())
	require.Equal(t, "float", FloatBackend{}.Name())
}

// The float backend tracks the fixed one to within a few ulps on well-conditioned inputs
func TestBackendAgreement(t *testing.T) {
	backends := []Backend{FixedBackend{}, FloatBackend{}}
	r := newFixedRand(61)
	for i := 0; i < 2000; i++ {
		a := r.between(-FromInt(1000), FromInt(1000))
		b := r.between(One, FromInt(100))

		var got [2][6]Fixed
		for j, be := range backends {
			m := must[Fixed](t)
			got[j][0] = m(be.Add(a, b))
			got[j][1] = m(be.Sub(a, b))
			got[j][2] = m(be.Mul(a, b))
			got[j][3] = m(be.Div(a, b))
			got[j][4] = m(be.Sqrt(b))
			got[j][5], _ = be.SinCos(a)
		}
		for op := range got[0] {
			requireNear(t, got[1][op], got[0][op], lutTol, "a=%s b=%s op=%d", a, b, op)
		}
	}
}

func TestBackendErrors(t *testing.T) {
	for _, be := range []Backend{FixedBackend{}, FloatBackend{}} {
		t.Run(be.Name(), func(t *testing.T) {
			_, err := be.Div(One, 0)
			require.True(t, errors.Is(err, ErrDivideByZero))

			_, err = be.Mod(One, 0)
			require.True(t, errors.Is(err, ErrDomain))

			_, err = be.Sqrt(-One)
			require.True(t, errors.Is(err, ErrDomain))

			_, err = be.Mul(MaxFixed, FromInt(2))
			require.True(t, errors.Is(err, ErrOverflow))

			_, err = be.Add(MaxFixed, One)
			require.True(t, errors.Is(err, ErrOverflow))
		})
	}
}

func TestWrappingBackend(t *testing.T) {
	k := NewKernel(FixedBackend{Mode: Wrapping})
	out := make([]Fixed, 1)
	require.NoError(t, k.VecAdd(out, []Fixed{MaxFixed}, []Fixed{Epsilon}))
	require.Equal(t, MinFixed, out[0])

	// Only add and sub wrap; multiply still reports overflow
	_, err := k.B.Mul(MaxFixed, FromInt(2))
	require.True(t, errors.Is(err, ErrOverflow))
}

func TestRuntimeKernel(t *testing.T) {
	kernels := map[string]Kernel[Backend]{
		"fixed": NewKernel[Backend](FixedBackend{}),
		"float": NewKernel[Backend](FloatBackend{}),
	}
	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			m, err := k.RotateZ(FromInt(90))
			require.NoError(t, err)
			p, err := k.TransformPoint(m, V3Int(1, 0, 0))
			require.NoError(t, err)
			requireNearVec3(t, V3Int(0, 1, 0), p, lutTol)

			d, err := k.Determinant(Scale(V3Int(2, 3, 4)))
			require.NoError(t, err)
			requireNear(t, FromInt(24), d, Epsilon)

			_, err = k.Inverse(Mat4{})
			require.True(t, errors.Is(err, ErrSingularMatrix))
		})
	}
}

// The fixed kernel is bit-reproducible: the same inputs give the same bits on every call
func TestFixedDeterminism(t *testing.T) {
	run := func() Mat4 {
		m, err := TRS(V3(Half, FromInt(-3), FromInt(9)), V3Int(33, -71, 12), V3(FromInt(2), Half, One))
		require.NoError(t, err)
		inv, err := m.Inverse()
		require.NoError(t, err)
		return inv
	}
	first := run()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, run())
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := FromFloat(123.456), FromFloat(-0.789)
	for i := 0; i < b.N; i++ {
		x, _ = Mul(x|1, y)
		if x == 0 {
			x = One
		}
	}
}

func BenchmarkDiv(b *testing.B) {
	x, y := FromFloat(123.456), FromFloat(7.25)
	var sink Fixed
	for i := 0; i < b.N; i++ {
		sink, _ = Div(x+Fixed(i), y)
	}
	_ = sink
}

func BenchmarkSin(b *testing.B) {
	var sink Fixed
	for i := 0; i < b.N; i++ {
		sink += Sin(Fixed(i) << 20)
	}
	_ = sink
}

func BenchmarkMat4Mul(b *testing.B) {
	m, err := TRS(V3Int(1, 2, 3), V3Int(10, 20, 30), V3Int(1, 1, 1))
	if err != nil {
		b.Fatal(err)
	}
	b.Run("fixed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = m.Mul(m)
		}
	})
	b.Run("float", func(b *testing.B) {
		k := NewKernel(FloatBackend{})
		for i := 0; i < b.N; i++ {
			_, _ = k.MatMul(m, m)
		}
	})
}
