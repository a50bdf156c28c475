package physics

import (
	"github.com/lixenwraith/fixkernel/vmath"
)

// separationMargin is the extra gap left between spheres after SeparateOverlap3D
const separationMargin = vmath.One / 16

// GravitationalAccel3D returns the acceleration on a body at posA toward posB
// g: gravitational constant, massB: attracting body mass
// Distance is clamped to at least 1 to avoid the singularity
func GravitationalAccel3D(posA, posB vmath.Vec3, massB, g vmath.Fixed) (vmath.Vec3, error) {
	delta, err := posB.Sub(posA)
	if err != nil {
		return vmath.Vec3{}, err
	}
	distSq, err := delta.NormSquared()
	if err != nil {
		return vmath.Vec3{}, err
	}
	if distSq < vmath.One {
		distSq = vmath.One
	}

	// accel = G * massB / distSq, along delta/dist
	dist, err := vmath.Sqrt(distSq)
	if err != nil {
		return vmath.Vec3{}, err
	}
	gm, err := vmath.Mul(g, massB)
	if err != nil {
		return vmath.Vec3{}, err
	}
	accelMag, err := vmath.Div(gm, distSq)
	if err != nil {
		return vmath.Vec3{}, err
	}
	dir, err := divScalar(delta, dist)
	if err != nil {
		return vmath.Vec3{}, err
	}
	return dir.Scale(accelMag)
}

// GravitationalAccelWithRepulsion3D combines gravity with a soft core
// Beyond repulsionRadius: inverse-square attraction
// Within repulsionRadius: linear repulsion, strongest at the center
func GravitationalAccelWithRepulsion3D(posA, posB vmath.Vec3, massB, g, repulsionRadius, repulsionStrength vmath.Fixed) (vmath.Vec3, error) {
	delta, err := posB.Sub(posA)
	if err != nil {
		return vmath.Vec3{}, err
	}
	dist, err := delta.Norm()
	if err != nil {
		return vmath.Vec3{}, err
	}
	if dist >= repulsionRadius || dist == 0 {
		return GravitationalAccel3D(posA, posB, massB, g)
	}

	// strength * (1 - dist/radius), pointing away from posB
	frac, err := vmath.Div(dist, repulsionRadius)
	if err != nil {
		return vmath.Vec3{}, err
	}
	push, err := vmath.Mul(repulsionStrength, vmath.One-frac)
	if err != nil {
		return vmath.Vec3{}, err
	}
	dir, err := divScalar(delta, dist)
	if err != nil {
		return vmath.Vec3{}, err
	}
	return dir.Scale(-push)
}

// contactNormal returns the unit vector from a to b and the distance
// A zero distance returns a zero normal
func contactNormal(a, b vmath.Vec3) (n vmath.Vec3, dist vmath.Fixed, err error) {
	delta, err := b.Sub(a)
	if err != nil {
		return n, 0, err
	}
	dist, err = delta.Norm()
	if err != nil || dist == 0 {
		return n, dist, err
	}
	n, err = divScalar(delta, dist)
	return n, dist, err
}

// ElasticCollision3D applies the collision impulse to both bodies in place
// Returns false when the bodies coincide or are already separating
// restitution: 1 is perfectly elastic, 0 perfectly inelastic
func ElasticCollision3D(a, b *Body, restitution vmath.Fixed) (bool, error) {
	n, dist, err := contactNormal(a.Pos, b.Pos)
	if err != nil || dist == 0 {
		return false, err
	}

	rel, err := a.Vel.Sub(b.Vel)
	if err != nil {
		return false, err
	}
	vn, err := rel.Dot(n)
	if err != nil {
		return false, err
	}
	// Separating
	if vn <= 0 {
		return false, nil
	}

	invA, err := vmath.Div(vmath.One, a.Mass)
	if err != nil {
		return false, err
	}
	invB, err := vmath.Div(vmath.One, b.Mass)
	if err != nil {
		return false, err
	}
	invSum, err := vmath.Add(invA, invB)
	if err != nil {
		return false, err
	}
	if invSum == 0 {
		return false, nil
	}

	// j = (1 + e) * vn / (1/mA + 1/mB)
	e, err := vmath.Add(vmath.One, restitution)
	if err != nil {
		return false, err
	}
	num, err := vmath.Mul(e, vn)
	if err != nil {
		return false, err
	}
	j, err := vmath.Div(num, invSum)
	if err != nil {
		return false, err
	}

	// Same impulse with opposite signs keeps momentum balanced to within truncation
	impulse, err := n.Scale(j)
	if err != nil {
		return false, err
	}
	dvA, err := divScalar(impulse, a.Mass)
	if err != nil {
		return false, err
	}
	dvB, err := divScalar(impulse, b.Mass)
	if err != nil {
		return false, err
	}
	velA, err := a.Vel.Sub(dvA)
	if err != nil {
		return false, err
	}
	velB, err := b.Vel.Add(dvB)
	if err != nil {
		return false, err
	}
	a.Vel, b.Vel = velA, velB
	return true, nil
}

// SeparateOverlap3D pushes overlapping spheres apart along the contact normal,
// splitting the correction by inverse mass
// Returns false when they do not overlap or coincide exactly
func SeparateOverlap3D(a, b *Body) (bool, error) {
	n, dist, err := contactNormal(a.Pos, b.Pos)
	if err != nil || dist == 0 {
		return false, err
	}
	minDist, err := vmath.Add(a.Radius, b.Radius)
	if err != nil {
		return false, err
	}
	if dist >= minDist {
		return false, nil
	}

	push, err := vmath.Add(minDist-dist, separationMargin)
	if err != nil {
		return false, err
	}
	total, err := vmath.Add(a.Mass, b.Mass)
	if err != nil {
		return false, err
	}
	// The lighter body moves further
	shareA, err := vmath.MulDiv(push, b.Mass, total)
	if err != nil {
		return false, err
	}
	shareB := push - shareA

	offA, err := n.Scale(shareA)
	if err != nil {
		return false, err
	}
	offB, err := n.Scale(shareB)
	if err != nil {
		return false, err
	}
	posA, err := a.Pos.Sub(offA)
	if err != nil {
		return false, err
	}
	posB, err := b.Pos.Add(offB)
	if err != nil {
		return false, err
	}
	a.Pos, b.Pos = posA, posB
	return true, nil
}

// ReflectAxis3D clamps one position component to [lo, hi] and reflects the velocity
// component when it points out of the range, scaled by restitution
func ReflectAxis3D(pos, vel *vmath.Fixed, lo, hi, restitution vmath.Fixed) (bool, error) {
	switch {
	case *pos < lo:
		*pos = lo
		if *vel < 0 {
			v, err := vmath.Mul(*vel, restitution)
			if err != nil {
				return true, err
			}
			*vel = -v
		}
		return true, nil
	case *pos > hi:
		*pos = hi
		if *vel > 0 {
			v, err := vmath.Mul(*vel, restitution)
			if err != nil {
				return true, err
			}
			*vel = -v
		}
		return true, nil
	}
	return false, nil
}

// ReflectBounds3D applies ReflectAxis3D to each axis of b against the box [lo, hi]
func ReflectBounds3D(b *Body, lo, hi vmath.Vec3, restitution vmath.Fixed) (bool, error) {
	hit := false
	for i := range b.Pos {
		r, err := ReflectAxis3D(&b.Pos[i], &b.Vel[i], lo[i], hi[i], restitution)
		if err != nil {
			return hit, err
		}
		hit = hit || r
	}
	return hit, nil
}
