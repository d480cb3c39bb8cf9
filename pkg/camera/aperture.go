// Package camera implements the perspective frustum camera and its
// aperture variants used to generate primary rays, grounded on
// original_source/src/camera.rs and src/aperture.rs and restated in
// the struct-with-constructor idiom of df07.../pkg/renderer/camera.go.
package camera

import (
	"math"
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Aperture perturbs a pinhole ray to model a finite lens: it offsets
// the ray's origin and re-aims it at the same point on the focal
// plane, producing depth-of-field blur away from that plane.
type Aperture interface {
	SampleRay(ray vecmath.Ray, focalLength float64, rng *rand.Rand) vecmath.Ray
}

// PinholeAperture passes the ray through unchanged — an infinitely
// small aperture, everything in perfect focus.
type PinholeAperture struct{}

func (PinholeAperture) SampleRay(ray vecmath.Ray, _ float64, _ *rand.Rand) vecmath.Ray {
	return ray
}

// offsetTowardFocalPoint re-derives a ray's direction so it still
// passes through the same point on the focal plane after its origin
// has been displaced by offset, the construction shared by every
// non-pinhole aperture in original_source/src/aperture.rs's default
// Aperture::sample_ray.
func offsetTowardFocalPoint(ray vecmath.Ray, focalLength float64, offset vecmath.Vec2) vecmath.Ray {
	focalPoint := ray.Origin.Add(ray.Direction.Multiply(focalLength))
	origin := ray.Origin.Add(vecmath.NewVec3(offset.X, offset.Y, 0))
	direction := focalPoint.Subtract(origin).Normalize()
	return vecmath.Ray{Origin: origin, Direction: direction}
}

// GaussianAperture scatters the ray origin by a 2D Gaussian of the
// given standard deviation, producing a soft circular bokeh.
type GaussianAperture struct {
	StdDev float64
}

func NewGaussianAperture(stdDev float64) GaussianAperture {
	return GaussianAperture{StdDev: stdDev}
}

func (a GaussianAperture) SampleRay(ray vecmath.Ray, focalLength float64, rng *rand.Rand) vecmath.Ray {
	offset := vecmath.NewVec2(rng.NormFloat64()*a.StdDev, rng.NormFloat64()*a.StdDev)
	return offsetTowardFocalPoint(ray, focalLength, offset)
}

// RegularPolygonAperture scatters the ray origin uniformly over a
// regular polygon (e.g. a hexagonal iris), matching
// original_source/src/aperture.rs's RegularPolygonAperture: pick a
// wedge, then interpolate between its two corner rays weighted by a
// uniform random fraction.
type RegularPolygonAperture struct {
	Radius float64
	Sides  int
}

func NewRegularPolygonAperture(radius float64, sides int) RegularPolygonAperture {
	return RegularPolygonAperture{Radius: radius, Sides: sides}
}

func (a RegularPolygonAperture) SampleRay(ray vecmath.Ray, focalLength float64, rng *rand.Rand) vecmath.Ray {
	section := rng.Intn(a.Sides)
	angleA := float64(section) * 2 * math.Pi / float64(a.Sides)
	angleB := float64(section+1) * 2 * math.Pi / float64(a.Sides)

	weight := rng.Float64()
	distance := math.Sqrt(rng.Float64()) * a.Radius

	vecA := vecmath.NewVec2(math.Cos(angleA), math.Sin(angleA)).Multiply(distance)
	vecB := vecmath.NewVec2(math.Cos(angleB), math.Sin(angleB)).Multiply(distance)
	offset := vecA.Lerp(vecB, weight)

	return offsetTowardFocalPoint(ray, focalLength, offset)
}
