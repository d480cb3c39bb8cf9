package geometry

import (
	"math"
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Cylinder is the lateral surface (caps excluded by design) of radius
// r and height h along the local z axis, centered at the local origin.
type Cylinder struct {
	Radius, Height float64
}

func NewCylinder(radius, height float64) *Cylinder {
	return &Cylinder{Radius: radius, Height: height}
}

func (cy *Cylinder) FirstHit(ray vecmath.Ray) (float64, bool) {
	ox, oy := ray.Origin.X, ray.Origin.Y
	dx, dy := ray.Direction.X, ray.Direction.Y

	a := dx*dx + dy*dy
	if a == 0 {
		return 0, false
	}
	b := 2 * (ox*dx + oy*dy)
	c := ox*ox + oy*oy - cy.Radius*cy.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	halfH := cy.Height / 2
	valid := func(t float64) bool {
		if t <= hitEpsilon {
			return false
		}
		z := ray.Origin.Z + t*ray.Direction.Z
		return z >= -halfH && z <= halfH
	}

	switch {
	case valid(t1) && valid(t2):
		return math.Min(t1, t2), true
	case valid(t1):
		return t1, true
	case valid(t2):
		return t2, true
	default:
		return 0, false
	}
}

func (cy *Cylinder) NormalAt(point vecmath.Vec3) vecmath.Vec3 {
	return vecmath.NewVec3(point.X, point.Y, 0).Normalize()
}

func (cy *Cylinder) SampleSurface(rng *rand.Rand) vecmath.Vec3 {
	angle := rng.Float64() * 2 * math.Pi
	z := (rng.Float64() - 0.5) * cy.Height
	return vecmath.NewVec3(math.Cos(angle)*cy.Radius, math.Sin(angle)*cy.Radius, z)
}

func (cy *Cylinder) Area() float64 {
	return 2 * math.Pi * cy.Radius * cy.Height
}
