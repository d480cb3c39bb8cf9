package integrator

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// DepthVisualizer returns the raw hit distance broadcast across all
// three color channels, or zero on a miss. This is
// original_source/src/renderer/depth_renderer.rs's DepthRenderMode::Raw;
// its DepthRenderMode::Normalized sibling needs visibility into every
// pixel at once, which a single Render call doesn't have, so it lives
// as postprocess.NormalizeDepth instead, applied to the whole buffer
// after rendering completes.
type DepthVisualizer struct{}

func NewDepthVisualizer() *DepthVisualizer { return &DepthVisualizer{} }

func (d *DepthVisualizer) Render(ray vecmath.Ray, s *scene.Scene, rng *rand.Rand) vecmath.Vec3 {
	hit, ok := s.ClosestHit(ray)
	if !ok {
		return vecmath.Vec3{}
	}
	return vecmath.NewVec3(hit.Info.T, hit.Info.T, hit.Info.T)
}
