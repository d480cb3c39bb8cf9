// Package geometry implements the local-frame shape primitives: sphere,
// plane, cuboid, cylinder, and an inverted-normal wrapper. Every shape
// answers its queries in its own local frame (sphere of the given
// radius centered at the origin, z=0
// rectangle, axis-aligned box centered at the origin, cylinder along
// z) — the world-frame placement lives one level up in pkg/object.
//
// Grounded on github.com/df07/go-progressive-raytracer's pkg/geometry
// (quadratic-solve style) and original_source/src/shape/*.rs for the
// exact local-frame equations.
package geometry

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Hit is what a shape reports for its closest forward intersection.
type Hit struct {
	T      float64
	Point  vecmath.Vec3
	Normal vecmath.Vec3
}

// Shape is the contract every geometric primitive satisfies in its own
// local frame.
type Shape interface {
	// FirstHit returns the smallest t > epsilon such that ray.At(t) lies
	// on the surface, or ok=false if no such t exists.
	FirstHit(ray vecmath.Ray) (t float64, ok bool)
	// NormalAt returns the outward unit normal at a point on the surface.
	NormalAt(point vecmath.Vec3) vecmath.Vec3
	// SampleSurface draws a point uniformly with respect to surface area.
	SampleSurface(rng *rand.Rand) vecmath.Vec3
	// Area returns the total surface area of the shape.
	Area() float64
}

// hitEpsilon is the minimum forward distance accepted for a hit, so a
// ray spawned just off a surface does not immediately re-hit it.
const hitEpsilon = 1e-6

// Intersect is a convenience wrapper that turns FirstHit + NormalAt
// into a full Hit record.
func Intersect(s Shape, ray vecmath.Ray) (Hit, bool) {
	t, ok := s.FirstHit(ray)
	if !ok {
		return Hit{}, false
	}
	point := ray.At(t)
	return Hit{T: t, Point: point, Normal: s.NormalAt(point)}, true
}
