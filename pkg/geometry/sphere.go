package geometry

import (
	"math"
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Sphere is a sphere of the given radius centered at the local origin.
type Sphere struct {
	Radius float64
}

func NewSphere(radius float64) *Sphere { return &Sphere{Radius: radius} }

// FirstHit solves the analytic quadratic for ray-sphere intersection
// and returns the nearest positive root.
func (s *Sphere) FirstHit(ray vecmath.Ray) (float64, bool) {
	oc := ray.Origin
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= hitEpsilon {
		root = (-halfB + sqrtD) / a
		if root <= hitEpsilon {
			return 0, false
		}
	}
	return root, true
}

func (s *Sphere) NormalAt(point vecmath.Vec3) vecmath.Vec3 {
	return point.Multiply(1.0 / s.Radius)
}

// SampleSurface draws a point uniformly on the sphere via a normalized
// Gaussian direction (Muller's method), matching
// original_source/src/shape/sphere.rs's StandardNormal approach.
func (s *Sphere) SampleSurface(rng *rand.Rand) vecmath.Vec3 {
	dir := vecmath.NewVec3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
	return dir.Multiply(s.Radius)
}

func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}
