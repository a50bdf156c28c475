package physics

import (
	"github.com/lixenwraith/fixkernel/vmath"
)

// OrbitalVelocity returns the speed of a circular orbit
// attraction: centripetal acceleration at unit distance (G*M equivalent)
// v = sqrt(attraction * radius); a non-positive product yields 0
func OrbitalVelocity(attraction, radius vmath.Fixed) (vmath.Fixed, error) {
	ar, err := vmath.Mul(attraction, radius)
	if err != nil {
		return 0, err
	}
	if ar <= 0 {
		return 0, nil
	}
	return vmath.Sqrt(ar)
}

// OrbitalInsert returns the velocity for circular orbit insertion of a body at rel,
// relative to the center, turning counter-clockwise about axis
// A body at the center or on the axis gets zero velocity
func OrbitalInsert(rel, axis vmath.Vec3, attraction vmath.Fixed) (vmath.Vec3, error) {
	radius, err := rel.Norm()
	if err != nil || radius == 0 {
		return vmath.Vec3{}, err
	}
	speed, err := OrbitalVelocity(attraction, radius)
	if err != nil {
		return vmath.Vec3{}, err
	}

	// Tangent is perpendicular to both the axis and the radius
	tangent, err := axis.Cross(rel)
	if err != nil {
		return vmath.Vec3{}, err
	}
	if tangent == (vmath.Vec3{}) {
		return vmath.Vec3{}, nil
	}
	tangent, err = tangent.Normalize()
	if err != nil {
		return vmath.Vec3{}, err
	}
	return tangent.Scale(speed)
}

// OrbitPosition returns center + radius·(cos θ, sin θ, 0) for θ in degrees
func OrbitPosition(center vmath.Vec3, radius, deg vmath.Fixed) (vmath.Vec3, error) {
	rad, err := vmath.DegToRad(deg)
	if err != nil {
		return vmath.Vec3{}, err
	}
	s, c := vmath.SinCos(rad)
	off, err := vmath.V3(c, s, 0).Scale(radius)
	if err != nil {
		return vmath.Vec3{}, err
	}
	return center.Add(off)
}
