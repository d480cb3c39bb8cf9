// Package integrator implements the light-transport algorithms that
// turn a camera ray into a radiance estimate. Four strategies share
// one interface so the bidirectional path tracer can be A/B-tested
// against simpler forward renderers during development, grounded on
// original_source/src/renderer/mod.rs's Renderer trait and the
// teacher's pkg/integrator.Integrator.
package integrator

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Integrator computes a radiance estimate for a single camera ray.
// Implementations must be safe to call concurrently from multiple
// sample-rendering goroutines sharing one *rand.Rand per goroutine.
type Integrator interface {
	Render(ray vecmath.Ray, s *scene.Scene, rng *rand.Rand) vecmath.Vec3
}
