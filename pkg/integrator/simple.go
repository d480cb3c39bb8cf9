package integrator

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// ForwardReflectance is a non-physical forward shader: it lights the
// nearest hit with a single fixed point light using a mirror-reflection
// dot product, ignoring every scene material and emitter. It exists
// purely to sanity-check geometry and camera setup against the full
// bidirectional integrator, grounded on
// original_source/src/renderer/simple_renderer.rs.
type ForwardReflectance struct {
	LightPosition vecmath.Vec3
}

// NewForwardReflectance builds a forward shader with a fixed point
// light at the given world position.
func NewForwardReflectance(lightPosition vecmath.Vec3) *ForwardReflectance {
	return &ForwardReflectance{LightPosition: lightPosition}
}

func (f *ForwardReflectance) Render(ray vecmath.Ray, s *scene.Scene, rng *rand.Rand) vecmath.Vec3 {
	hit, ok := s.ClosestHit(ray)
	if !ok {
		return vecmath.Vec3{}
	}

	reflection := reflectDirection(ray.Direction, hit.Info.Normal)
	lightDirection := f.LightPosition.Subtract(hit.Info.Position).Normalize()

	lightness := reflection.Dot(lightDirection)
	if lightness < 0 {
		lightness = 0
	}
	return vecmath.NewVec3(lightness, lightness, lightness)
}

func reflectDirection(v, n vecmath.Vec3) vecmath.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
