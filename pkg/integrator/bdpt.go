package integrator

import (
	"fmt"
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/material"
	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// pathVertex is one step of a light subpath: where it landed, the
// direction it arrived from, which material it hit, and the radiance
// accumulated along the subpath up to and including this vertex.
// Grounded on original_source/src/renderer/recursive_bdpt.rs's
// PathVertex.
type pathVertex struct {
	Position            vecmath.Vec3
	Normal              vecmath.Vec3
	Incoming            vecmath.Vec3
	Material            *material.Material
	AccumulatedEmission vecmath.Vec3
}

// RecursiveBDPT is a bidirectional path tracer: it builds one light
// subpath, then walks the camera path recursively, at every camera
// vertex blending a continuation sample with explicit connections to
// every light-subpath vertex using a simplified current-vertex-density
// MIS weight rather than full multi-technique balance/power weighting.
type RecursiveBDPT struct {
	MaxBounces int
}

// NewRecursiveBDPT builds a bidirectional path tracer bounded to
// maxBounces recursive camera-path steps and an equal-length light
// subpath. Unlike ForwardReflectance and DepthVisualizer, every camera
// vertex makes an explicit connection to a sampled light-subpath
// vertex, so s must have at least one emissive object; a scene with
// none is rejected here rather than at scene construction, since a
// zero-emitter scene is otherwise a perfectly valid (if entirely
// black) subject for those other integrators.
func NewRecursiveBDPT(s *scene.Scene, maxBounces int) (*RecursiveBDPT, error) {
	if !s.HasEmitters() {
		return nil, fmt.Errorf("integrator: bidirectional path tracing requires at least one emissive object")
	}
	return &RecursiveBDPT{MaxBounces: maxBounces}, nil
}

// sampleLightPath walks forward from a ray leaving an emitter,
// recording one vertex per bounce with the radiance accumulated so far
// folded in.
func (bd *RecursiveBDPT) sampleLightPath(ray vecmath.Ray, s *scene.Scene, emitterMaterial *material.Material, rng *rand.Rand) []pathVertex {
	emission := emitterMaterial.EmissionColor()

	path := []pathVertex{{
		Position:            ray.Origin,
		Normal:              ray.Direction,
		Incoming:            ray.Direction.Negate(),
		Material:            emitterMaterial,
		AccumulatedEmission: emission,
	}}

	currentRay := ray
	accumulated := emission
	for bounce := 0; bounce < bd.MaxBounces; bounce++ {
		hit, ok := s.ClosestHit(currentRay)
		if !ok {
			break
		}
		mat := hit.Object.Material
		interaction := mat.Interact(currentRay, hit.Info.Position, hit.Info.Normal, rng)

		accumulated = accumulated.MultiplyVec(interaction.ColorFilter).Add(interaction.Emission).Multiply(interaction.Density)

		path = append(path, pathVertex{
			Position:            hit.Info.Position,
			Normal:              interaction.Normal,
			Incoming:            currentRay.Direction,
			Material:            mat,
			AccumulatedEmission: accumulated,
		})

		if !interaction.HasOutgoing {
			break
		}
		currentRay = interaction.Outgoing
	}

	return path
}

// sampleCameraPath recurses along the camera path. At every hit it
// samples one continuation direction and also connects explicitly to
// every vertex of the light subpath, combining the two techniques with
// a current-vertex-density weighting: the continuation's own sampling
// density and each connection's camera-side likelihood are simply
// summed as weights and used to normalize the blended estimate (the
// light-side likelihood scales a connection's contribution but is not
// part of the weight), rather than computing full multi-technique path
// probabilities.
func (bd *RecursiveBDPT) sampleCameraPath(ray vecmath.Ray, s *scene.Scene, lightPath []pathVertex, rng *rand.Rand, bouncesLeft int) vecmath.Vec3 {
	if bouncesLeft == 0 {
		return vecmath.Vec3{}
	}
	hit, ok := s.ClosestHit(ray)
	if !ok {
		return vecmath.Vec3{}
	}

	currentPosition := hit.Info.Position
	currentNormal := hit.Info.Normal
	mat := hit.Object.Material

	interaction := mat.Interact(ray, currentPosition, currentNormal, rng)

	currentColor := vecmath.Vec3{}
	totalLikelihood := 0.0

	if interaction.HasOutgoing {
		backward := bd.sampleCameraPath(interaction.Outgoing, s, lightPath, rng, bouncesLeft-1)
		currentColor = currentColor.Add(backward.Multiply(interaction.Density))
		totalLikelihood += interaction.Density

		for _, lv := range lightPath {
			if !s.Visible(currentPosition, lv.Position) {
				continue
			}
			lightColor := lv.AccumulatedEmission

			connection := currentPosition.Subtract(lv.Position).Normalize()

			lightImportance := lv.Material.Evaluate(lv.Incoming, connection, lv.Normal)
			if lightImportance <= 0 {
				continue
			}

			rayImportance := mat.Evaluate(connection, ray.Direction.Negate(), currentNormal)
			if rayImportance <= 0 {
				continue
			}

			currentColor = currentColor.Add(lightColor.Multiply(rayImportance * lightImportance))
			totalLikelihood += rayImportance
		}
	}

	if totalLikelihood > 0 {
		currentColor = currentColor.Multiply(1.0 / totalLikelihood)
	}
	currentColor = currentColor.MultiplyVec(interaction.ColorFilter)
	currentColor = currentColor.Add(mat.EmissionColor())
	return currentColor
}

// Render draws one light subpath from a randomly picked emitter and
// walks the camera path against it.
func (bd *RecursiveBDPT) Render(ray vecmath.Ray, s *scene.Scene, rng *rand.Rand) vecmath.Vec3 {
	emitter := s.PickEmitter(rng)
	lightRay := scene.EmitterRay(emitter, rng)
	lightPath := bd.sampleLightPath(lightRay, s, emitter.Material, rng)

	return bd.sampleCameraPath(ray, s, lightPath, rng, bd.MaxBounces)
}
