package integrator

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// UnidirectionalPathTracer is a naive forward path tracer: it follows
// a single camera ray through successive material interactions,
// accumulating emission weighted by the running color filter, with no
// explicit light-subpath connection and therefore no multiple
// importance sampling. It is a physically meaningful but
// high-variance alternative to RecursiveBDPT, grounded on
// original_source/src/renderer/backward_renderer.rs's
// BackwardRenderer.
type UnidirectionalPathTracer struct {
	MaxBounces int
}

// NewUnidirectionalPathTracer builds a path tracer bounded to
// maxBounces material interactions per camera ray. Unlike
// RecursiveBDPT it never queries Scene.PickEmitter, so it renders a
// zero-emitter scene as pure black without complaint.
func NewUnidirectionalPathTracer(maxBounces int) *UnidirectionalPathTracer {
	return &UnidirectionalPathTracer{MaxBounces: maxBounces}
}

func (u *UnidirectionalPathTracer) Render(ray vecmath.Ray, s *scene.Scene, rng *rand.Rand) vecmath.Vec3 {
	colorFilter := vecmath.NewVec3(1, 1, 1)
	emission := vecmath.Vec3{}
	currentRay := ray

	for bounce := 0; bounce < u.MaxBounces; bounce++ {
		hit, ok := s.ClosestHit(currentRay)
		if !ok {
			break
		}

		interaction := hit.Object.Material.Interact(currentRay, hit.Info.Position, hit.Info.Normal, rng)
		emission = emission.Add(interaction.Emission.MultiplyVec(colorFilter))
		colorFilter = colorFilter.MultiplyVec(interaction.ColorFilter)

		if !interaction.HasOutgoing {
			break
		}
		currentRay = interaction.Outgoing
	}

	return emission
}
