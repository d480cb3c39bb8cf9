package geometry

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Plane is a w x h rectangle lying in the local z=0 plane, centered at
// the local origin.
type Plane struct {
	Width, Height float64
}

func NewPlane(width, height float64) *Plane { return &Plane{Width: width, Height: height} }

func (p *Plane) FirstHit(ray vecmath.Ray) (float64, bool) {
	if ray.Direction.Z == 0 {
		return 0, false
	}
	t := -ray.Origin.Z / ray.Direction.Z
	if t <= hitEpsilon {
		return 0, false
	}
	x := ray.Origin.X + ray.Direction.X*t
	y := ray.Origin.Y + ray.Direction.Y*t
	if x < -p.Width/2 || x > p.Width/2 || y < -p.Height/2 || y > p.Height/2 {
		return 0, false
	}
	return t, true
}

// NormalAt always returns the +z face; pkg/material flips the normal
// toward the incoming ray when needed, so a two-sided plane needs no
// special handling here.
func (p *Plane) NormalAt(vecmath.Vec3) vecmath.Vec3 {
	return vecmath.NewVec3(0, 0, 1)
}

func (p *Plane) SampleSurface(rng *rand.Rand) vecmath.Vec3 {
	x := (rng.Float64() - 0.5) * p.Width
	y := (rng.Float64() - 0.5) * p.Height
	return vecmath.NewVec3(x, y, 0)
}

// Area counts both faces of the plane, matching
// original_source/src/shape/plane.rs (a plane is two-sided and either
// face may be sampled as an emitter).
func (p *Plane) Area() float64 {
	return 2 * p.Width * p.Height
}
