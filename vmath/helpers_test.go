package vmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// lutTol bounds the spline error plus angle reduction rounding, ~2^-20
	lutTol Fixed = 1 << 12
	// mathTol bounds accumulated truncation in matrix chains, ~2^-16
	mathTol Fixed = 1 << 16
)

func requireNear(t *testing.T, want, got, tol Fixed, msgAndArgs ...interface{}) {
	t.Helper()
	d := got - want
	if d < 0 {
		d = -d
	}
	if d > tol {
		require.Failf(t, "values differ", "want %s got %s (diff %s > %s) %v", want, got, d, tol, msgAndArgs)
	}
}

func requireNearVec3(t *testing.T, want, got Vec3, tol Fixed) {
	t.Helper()
	for i := range want {
		requireNear(t, want[i], got[i], tol, "component", i)
	}
}

func requireNearMat(t *testing.T, want, got Mat4, tol Fixed) {
	t.Helper()
	for i := range want {
		requireNear(t, want[i], got[i], tol, "element", i)
	}
}

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

// fixedRand is a xorshift generator with a fixed seed so failures reproduce
type fixedRand struct {
	state uint64
}

func newFixedRand(seed uint64) *fixedRand {
	if seed == 0 {
		seed = 1
	}
	return &fixedRand{state: seed}
}

func (r *fixedRand) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// between returns a value uniformly spread over [lo, hi)
func (r *fixedRand) between(lo, hi Fixed) Fixed {
	return lo + Fixed(r.next()%uint64(hi-lo))
}
