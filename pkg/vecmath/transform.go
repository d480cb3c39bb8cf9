package vecmath

import "math"

// Similarity is a rigid rotation, translation, and uniform scale. It
// preserves angles and distance ratios, so a local-frame intersection
// distance t becomes a world-frame distance of Scale*t.
//
// Grounded on original_source/src/object.rs's cached inverse transform,
// restated as an explicit rotation/translation/scale triple instead of
// a generic 4x4 matrix, since every transform this renderer needs is a
// similarity and never a general affine map.
type Similarity struct {
	Translation Vec3
	Rotation    Vec3 // Euler angles in radians, applied X then Y then Z
	Scale       float64
}

// Identity returns a similarity with no rotation/translation and unit scale.
func Identity() Similarity {
	return Similarity{Scale: 1}
}

func rotateXYZ(v, rotation Vec3) Vec3 {
	if rotation.X == 0 && rotation.Y == 0 && rotation.Z == 0 {
		return v
	}
	result := v
	if rotation.X != 0 {
		c, s := math.Cos(rotation.X), math.Sin(rotation.X)
		result = Vec3{result.X, result.Y*c - result.Z*s, result.Y*s + result.Z*c}
	}
	if rotation.Y != 0 {
		c, s := math.Cos(rotation.Y), math.Sin(rotation.Y)
		result = Vec3{result.X*c + result.Z*s, result.Y, -result.X*s + result.Z*c}
	}
	if rotation.Z != 0 {
		c, s := math.Cos(rotation.Z), math.Sin(rotation.Z)
		result = Vec3{result.X*c - result.Y*s, result.X*s + result.Y*c, result.Z}
	}
	return result
}

func inverseRotateXYZ(v, rotation Vec3) Vec3 {
	// Undo Z, then Y, then X — the inverse of a rotation composed
	// X -> Y -> Z is its transpose, applied in reverse order.
	result := v
	if rotation.Z != 0 {
		c, s := math.Cos(-rotation.Z), math.Sin(-rotation.Z)
		result = Vec3{result.X*c - result.Y*s, result.X*s + result.Y*c, result.Z}
	}
	if rotation.Y != 0 {
		c, s := math.Cos(-rotation.Y), math.Sin(-rotation.Y)
		result = Vec3{result.X*c + result.Z*s, result.Y, -result.X*s + result.Z*c}
	}
	if rotation.X != 0 {
		c, s := math.Cos(-rotation.X), math.Sin(-rotation.X)
		result = Vec3{result.X, result.Y*c - result.Z*s, result.Y*s + result.Z*c}
	}
	return result
}

// PointToWorld maps a local-frame point into world space.
func (s Similarity) PointToWorld(p Vec3) Vec3 {
	return rotateXYZ(p.Multiply(s.Scale), s.Rotation).Add(s.Translation)
}

// PointToLocal maps a world-frame point into local space — the inverse
// of PointToWorld.
func (s Similarity) PointToLocal(p Vec3) Vec3 {
	unrotated := inverseRotateXYZ(p.Subtract(s.Translation), s.Rotation)
	return unrotated.Multiply(1.0 / s.Scale)
}

// DirectionToWorld maps a local-frame direction into world space
// (no translation, no scale — directions are unaffected by uniform
// scale since only their length would change, and callers renormalize).
func (s Similarity) DirectionToWorld(d Vec3) Vec3 {
	return rotateXYZ(d, s.Rotation)
}

// DirectionToLocal is the inverse of DirectionToWorld.
func (s Similarity) DirectionToLocal(d Vec3) Vec3 {
	return inverseRotateXYZ(d, s.Rotation)
}

// NormalToWorld maps a local-frame unit normal into world space. For a
// similarity transform the inverse-transpose of the linear part is
// just the rotation itself (uniform scale cancels out up to a constant
// factor, which normalization removes).
func (s Similarity) NormalToWorld(n Vec3) Vec3 {
	return rotateXYZ(n, s.Rotation).Normalize()
}

// RayToLocal transforms a world-frame ray into the object's local
// frame. The returned direction is renormalized to unit length, so a
// local hit distance t corresponds to a world distance of Scale*t.
func (s Similarity) RayToLocal(r Ray) Ray {
	return Ray{
		Origin:    s.PointToLocal(r.Origin),
		Direction: s.DirectionToLocal(r.Direction).Normalize(),
	}
}
