package physics

import (
	"github.com/lixenwraith/fixkernel/vmath"
)

// Body is a point mass with a collision radius
// All fields are Q32.32; Mass must be positive for collision response
type Body struct {
	Pos    vmath.Vec3
	Vel    vmath.Vec3
	Mass   vmath.Fixed
	Radius vmath.Fixed
}

// Integrate performs semi-implicit Euler: v = v + a*dt; p = p + v*dt
// On error the body is left unchanged
func Integrate(b *Body, accel vmath.Vec3, dt vmath.Fixed) error {
	dv, err := accel.Scale(dt)
	if err != nil {
		return err
	}
	vel, err := b.Vel.Add(dv)
	if err != nil {
		return err
	}
	dp, err := vel.Scale(dt)
	if err != nil {
		return err
	}
	pos, err := b.Pos.Add(dp)
	if err != nil {
		return err
	}
	b.Vel, b.Pos = vel, pos
	return nil
}

// ApplyImpulse adds a velocity delta (momentum transfer)
func ApplyImpulse(b *Body, dv vmath.Vec3) error {
	vel, err := b.Vel.Add(dv)
	if err != nil {
		return err
	}
	b.Vel = vel
	return nil
}

// Momentum returns Mass*Vel
func (b *Body) Momentum() (vmath.Vec3, error) {
	return b.Vel.Scale(b.Mass)
}

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec3, maxSpeed vmath.Fixed) (bool, error) {
	magSq, err := vel.NormSquared()
	if err != nil {
		return false, err
	}
	maxSq, err := vmath.Mul(maxSpeed, maxSpeed)
	if err != nil {
		return false, err
	}
	if magSq <= maxSq {
		return false, nil
	}

	mag, err := vmath.Sqrt(magSq)
	if err != nil {
		return false, err
	}
	ratio, err := vmath.Div(maxSpeed, mag)
	if err != nil {
		return false, err
	}
	capped, err := vel.Scale(ratio)
	if err != nil {
		return false, err
	}
	*vel = capped
	return true, nil
}

// divScalar divides each component by s
func divScalar(v vmath.Vec3, s vmath.Fixed) (vmath.Vec3, error) {
	return v.Div(vmath.Vec3{s, s, s})
}
