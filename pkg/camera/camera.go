package camera

import (
	"math"
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Camera generates antialiased, aperture-perturbed primary rays for
// each pixel of a width x height image, placed in the scene by a
// world transform. Frustum extents are derived directly
// from the field of view instead of inverting a 4x4 projection matrix
// the way original_source/src/camera.rs's FrustrumData does, since a
// symmetric perspective frustum's near/far half-extents are a closed
// form of fov and aspect ratio.
type Camera struct {
	Width, Height int
	Transform     vecmath.Similarity
	Aperture      Aperture
	FocalLength   float64

	zNear, zFar                                                float64
	nearHalfWidth, nearHalfHeight, farHalfWidth, farHalfHeight float64
}

// New builds a camera with a symmetric perspective frustum of the
// given vertical field of view (degrees), clip planes, aperture, and
// focal distance, placed in the world by transform.
func New(width, height int, fovDegrees, zNear, zFar float64, aperture Aperture, focalLength float64, transform vecmath.Similarity) *Camera {
	aspect := float64(width) / float64(height)
	halfHeightPerUnit := math.Tan(fovDegrees * math.Pi / 180 / 2)
	halfWidthPerUnit := aspect * halfHeightPerUnit

	return &Camera{
		Width:           width,
		Height:          height,
		Transform:       transform,
		Aperture:        aperture,
		FocalLength:     focalLength,
		zNear:           zNear,
		zFar:            zFar,
		nearHalfWidth:   halfWidthPerUnit * zNear,
		nearHalfHeight:  halfHeightPerUnit * zNear,
		farHalfWidth:    halfWidthPerUnit * zFar,
		farHalfHeight:   halfHeightPerUnit * zFar,
	}
}

// GetRay returns a world-frame ray through pixel (xIndex, yIndex),
// jittered within the pixel for antialiasing and perturbed by the
// camera's aperture for depth of field.
func (c *Camera) GetRay(xIndex, yIndex int, rng *rand.Rand) vecmath.Ray {
	x := float64(xIndex) + rng.Float64() - 0.5
	y := float64(yIndex) + rng.Float64() - 0.5

	nx := 2*(x/float64(c.Width-1)) - 1
	ny := -2*(y/float64(c.Height-1)) + 1

	origin := vecmath.NewVec3(nx*c.nearHalfWidth, ny*c.nearHalfHeight, -c.zNear)
	farPoint := vecmath.NewVec3(nx*c.farHalfWidth, ny*c.farHalfHeight, -c.zFar)
	direction := farPoint.Subtract(origin).Normalize()

	localRay := c.Aperture.SampleRay(vecmath.Ray{Origin: origin, Direction: direction}, c.FocalLength, rng)

	return vecmath.Ray{
		Origin:    c.Transform.PointToWorld(localRay.Origin),
		Direction: c.Transform.DirectionToWorld(localRay.Direction).Normalize(),
	}
}
