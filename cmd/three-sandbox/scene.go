package main

import (
	"github.com/lixenwraith/fixkernel/physics"
	"github.com/lixenwraith/fixkernel/vmath"
)

// Part is one bouncing sphere
type Part struct {
	physics.Body
	Frozen bool
	Flash  vmath.Fixed // remaining flash seconds
}

var (
	boundsLo = vmath.V3(vmath.FromInt(-16), vmath.FromInt(-8), vmath.FromInt(3))
	boundsHi = vmath.V3(vmath.FromInt(16), vmath.FromInt(8), vmath.FromInt(32))

	restitution = vmath.MustParseFixed("0.8")
	partRadius  = vmath.MustParseFixed("2.8")
	massDefault = vmath.FromInt(5)
	massStep    = vmath.Half
	massMin     = vmath.MustParseFixed("0.5")
	massMax     = vmath.FromInt(20)
	flashDur    = vmath.MustParseFixed("0.2")
	spinStep    = vmath.FromInt(15) // degrees per second per key press
)

// cubeCorners are the unit cube vertices; cubeEdges index pairs of them
var (
	cubeCorners = func() [8]vmath.Vec3 {
		var c [8]vmath.Vec3
		for i := range c {
			c[i] = vmath.V3Int(int32(i&1)*2-1, int32(i>>1&1)*2-1, int32(i>>2&1)*2-1)
		}
		return c
	}()
	cubeEdges = [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

// Scene holds the simulated state: spheres in a box and a two-level spinning cube rig
type Scene struct {
	Parts [3]Part

	Rig  *physics.Node // orbits the box center
	Cube *physics.Node // spins about its own axes, child of Rig
	Spin vmath.Vec3    // cube angular velocity, degrees per second
}

func newScene() *Scene {
	s := &Scene{
		Parts: [3]Part{
			{Body: physics.Body{Pos: vmath.V3Int(-4, -2, 10), Vel: vmath.V3Int(5, 2, -3)}},
			{Body: physics.Body{Pos: vmath.V3(vmath.FromInt(3), vmath.MustParseFixed("1.5"), vmath.FromInt(18)), Vel: vmath.V3Int(-3, -4, 4)}},
			{Body: physics.Body{Pos: vmath.V3Int(0, 0, 24), Vel: vmath.V3(vmath.FromInt(2), vmath.MustParseFixed("3.5"), vmath.FromInt(-6))}},
		},
		Rig:  physics.NewNode("rig"),
		Cube: physics.NewNode("cube"),
		Spin: vmath.V3Int(20, 35, 10),
	}
	for i := range s.Parts {
		s.Parts[i].Mass = massDefault
		s.Parts[i].Radius = partRadius
	}

	s.Rig.Translation = vmath.V3Int(0, 0, 18)
	s.Cube.Translation = vmath.V3Int(9, 0, 0)
	s.Cube.Scale = vmath.V3Int(2, 2, 2)
	if err := s.Rig.Attach(s.Cube); err != nil {
		panic(err)
	}
	return s
}

// wrapDeg keeps an angle in degrees within (-360, 360], sign following v
func wrapDeg(v vmath.Fixed) vmath.Fixed {
	r, err := vmath.Mod(v, vmath.FromInt(360))
	if err != nil {
		return 0
	}
	return r
}

// step advances the simulation by dt seconds and returns the number of sphere collisions
func (s *Scene) step(dt vmath.Fixed) (hits int, err error) {
	for i := range s.Parts {
		p := &s.Parts[i]
		if p.Frozen {
			continue
		}
		if err := physics.Integrate(&p.Body, vmath.Vec3{}, dt); err != nil {
			return hits, err
		}
		if _, err := physics.ReflectBounds3D(&p.Body, boundsLo, boundsHi, restitution); err != nil {
			return hits, err
		}
	}

	for _, pair := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
		hit, err := s.collide(&s.Parts[pair[0]], &s.Parts[pair[1]])
		if err != nil {
			return hits, err
		}
		if hit {
			hits++
		}
	}

	for i := range s.Parts {
		if s.Parts[i].Flash > 0 {
			s.Parts[i].Flash = vmath.Max(0, s.Parts[i].Flash-dt)
		}
	}

	// Rig orbits about y, cube tumbles about all three axes
	orbit, err := vmath.Mul(vmath.FromInt(30), dt)
	if err != nil {
		return hits, err
	}
	s.Rig.Rotation[1] = wrapDeg(s.Rig.Rotation[1] + orbit)
	for i := range s.Cube.Rotation {
		d, err := vmath.Mul(s.Spin[i], dt)
		if err != nil {
			return hits, err
		}
		s.Cube.Rotation[i] = wrapDeg(s.Cube.Rotation[i] + d)
	}
	return hits, nil
}

// collide separates overlapping spheres and applies the impulse; frozen parts act as
// infinitely heavy by swapping in a huge mass for the call
func (s *Scene) collide(a, b *Part) (bool, error) {
	if a.Frozen && b.Frozen {
		return false, nil
	}
	ba, bb := a.Body, b.Body
	if a.Frozen {
		ba.Mass = massMax * 1000
	}
	if b.Frozen {
		bb.Mass = massMax * 1000
	}

	overlapped, err := physics.SeparateOverlap3D(&ba, &bb)
	if err != nil || !overlapped {
		return false, err
	}
	hit, err := physics.ElasticCollision3D(&ba, &bb, restitution)
	if err != nil {
		return false, err
	}

	if !a.Frozen {
		a.Pos, a.Vel = ba.Pos, ba.Vel
	}
	if !b.Frozen {
		b.Pos, b.Vel = bb.Pos, bb.Vel
	}
	if hit {
		a.Flash, b.Flash = flashDur, flashDur
	}
	return hit, nil
}

// cubeWorld returns the cube's corners in world space
func (s *Scene) cubeWorld() ([8]vmath.Vec3, error) {
	var out [8]vmath.Vec3
	w, err := s.Cube.World()
	if err != nil {
		return out, err
	}
	for i, c := range cubeCorners {
		if out[i], err = w.TransformPoint(c); err != nil {
			return out, err
		}
	}
	return out, nil
}
