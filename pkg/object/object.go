// Package object binds a local-frame geometry.Shape to a material and
// an affine-similarity placement, converting between world-frame rays
// and the shape's local-frame queries.
//
// Grounded on original_source/src/object.rs (cached inverse transform,
// local_intersection) and original_source/src/shape.rs's
// IntersectionInfo::transform_similarity for the world-frame rescaling.
package object

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/geometry"
	"github.com/kestrel-render/lumen/pkg/material"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// IntersectionInfo is the world-frame result of an Object query.
type IntersectionInfo struct {
	T        float64
	Position vecmath.Vec3
	Normal   vecmath.Vec3
}

// Object places one Shape in the world via a similarity transform and
// attaches one Material to it.
type Object struct {
	Shape     geometry.Shape
	Transform vecmath.Similarity
	Material  *material.Material
}

func New(shape geometry.Shape, transform vecmath.Similarity, mat *material.Material) *Object {
	return &Object{Shape: shape, Transform: transform, Material: mat}
}

// Hit transforms ray into local frame, queries the shape, and reports
// the result back in world frame. World distance equals the local
// distance scaled by the similarity's scale factor.
func (o *Object) Hit(ray vecmath.Ray) (IntersectionInfo, bool) {
	localRay := o.Transform.RayToLocal(ray)
	hit, ok := geometry.Intersect(o.Shape, localRay)
	if !ok {
		return IntersectionInfo{}, false
	}
	return IntersectionInfo{
		T:        hit.T * o.Transform.Scale,
		Position: o.Transform.PointToWorld(hit.Point),
		Normal:   o.Transform.NormalToWorld(hit.Normal),
	}, true
}

// Area returns the object's world-space surface area: local_area * s^2.
func (o *Object) Area() float64 {
	return o.Shape.Area() * o.Transform.Scale * o.Transform.Scale
}

// SampleSurfacePoint draws a world-frame point uniformly with respect
// to the object's world-space surface area.
func (o *Object) SampleSurfacePoint(rng *rand.Rand) vecmath.Vec3 {
	return o.Transform.PointToWorld(o.Shape.SampleSurface(rng))
}

// SamplePointAndNormal draws a world-frame surface point together with
// its outward world-frame normal, used by emitter ray generation.
func (o *Object) SamplePointAndNormal(rng *rand.Rand) (vecmath.Vec3, vecmath.Vec3) {
	localPoint := o.Shape.SampleSurface(rng)
	localNormal := o.Shape.NormalAt(localPoint)
	return o.Transform.PointToWorld(localPoint), o.Transform.NormalToWorld(localNormal)
}

// IsEmissive reports whether the object's material is a light source.
func (o *Object) IsEmissive() bool {
	return o.Material.IsEmissive()
}
