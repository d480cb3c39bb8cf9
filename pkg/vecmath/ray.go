package vecmath

// Ray is a half-line: an origin point and a unit direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func NewRay(origin, direction Vec3) Ray { return Ray{Origin: origin, Direction: direction} }

// NewRayTo builds a ray from origin toward target, normalizing the
// direction.
func NewRayTo(origin, target Vec3) Ray {
	return NewRay(origin, target.Subtract(origin).Normalize())
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Multiply(t)) }

// Offset returns a copy of the ray whose origin is nudged by eps along
// dir, used at every ray spawn to avoid immediate self-intersection.
func (r Ray) Offset(dir Vec3, eps float64) Ray {
	return Ray{Origin: r.Origin.Add(dir.Multiply(eps)), Direction: r.Direction}
}

// SpawnEpsilon is the ray-offset distance used everywhere a new ray is
// spawned off a surface to avoid re-hitting it immediately.
const SpawnEpsilon = 1e-3

// VisibilitySlack is the extra distance tolerance applied at both ends
// of a visibility ray.
const VisibilitySlack = 2e-3
