// Package scene holds a scene's object list and serves the three
// queries the integrator needs: nearest hit, visibility, and emitter
// selection. A Scene does not hold the camera; the camera is a separate
// value that is passed to the renderer alongside the Scene.
//
// Grounded on github.com/df07/go-progressive-raytracer's pkg/scene/scene.go
// for the linear-iteration nearest-hit shape and
// original_source/src/scene.rs for the exact epsilon handling and
// alias-table emitter distribution.
package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/object"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Scene is immutable for the duration of a render: every field here
// is read-only once New returns successfully, so it is safe to share
// across rendering goroutines without synchronization.
type Scene struct {
	Objects        []*object.Object
	emitterIndices []int
	emitterAlias   *AliasTable
}

// New validates the object list and builds the emitter alias table.
// A scene with no emissive objects is not itself an error: a camera
// that never queries an emitter (a forward shader, a depth visualizer)
// can render one just fine, producing a black buffer wherever nothing
// is hit. Only a zero-area emitter is rejected here, since that is a
// malformed object irrespective of which integrator runs. Integrators
// that require at least one emitter (explicit light-subpath
// connections) validate that for themselves at construction — see
// RecursiveBDPT.
func New(objects []*object.Object) (*Scene, error) {
	var emitterIndices []int
	var emitterAreas []float64
	for i, obj := range objects {
		if !obj.IsEmissive() {
			continue
		}
		area := obj.Area()
		if area <= 0 {
			return nil, fmt.Errorf("scene: emissive object %d has non-positive area %g", i, area)
		}
		emitterIndices = append(emitterIndices, i)
		emitterAreas = append(emitterAreas, area)
	}

	return &Scene{
		Objects:        objects,
		emitterIndices: emitterIndices,
		emitterAlias:   NewAliasTable(emitterAreas),
	}, nil
}

// HasEmitters reports whether the scene contains at least one
// emissive object.
func (s *Scene) HasEmitters() bool {
	return len(s.emitterIndices) > 0
}

// Hit is the nearest-hit result, carrying the hit object so its
// material can be consulted.
type Hit struct {
	Object *object.Object
	Info   object.IntersectionInfo
}

// ClosestHit performs linear iteration over every object, keeping the
// closest non-negative intersection. O(N_objects).
func (s *Scene) ClosestHit(ray vecmath.Ray) (Hit, bool) {
	var best Hit
	found := false
	closestT := 0.0

	for _, obj := range s.Objects {
		info, ok := obj.Hit(ray)
		if !ok || info.T < 0 {
			continue
		}
		if !found || info.T < closestT {
			best = Hit{Object: obj, Info: info}
			closestT = info.T
			found = true
		}
	}
	return best, found
}

// Visible reports whether b is visible from a: a ray cast from
// a+eps*dir toward b finds no hit closer than |b-a|+2*eps, an epsilon
// pair that absorbs floating-point offset error at both endpoints.
func (s *Scene) Visible(a, b vecmath.Vec3) bool {
	diff := b.Subtract(a)
	distance := diff.Length()
	if distance == 0 {
		return true
	}
	dir := diff.Multiply(1.0 / distance)

	ray := vecmath.Ray{
		Origin:    a.Add(dir.Multiply(vecmath.SpawnEpsilon)),
		Direction: dir,
	}

	hit, ok := s.ClosestHit(ray)
	if !ok {
		return true
	}
	return hit.Info.T > distance+vecmath.VisibilitySlack
}

// PickEmitter samples one emissive object with probability
// proportional to its world-space area, or nil if the scene has no
// emitters. Callers that require an emitter should validate
// HasEmitters before rendering rather than checking this per call.
func (s *Scene) PickEmitter(rng *rand.Rand) *object.Object {
	idx := s.emitterAlias.Sample(rng)
	if idx < 0 {
		return nil
	}
	return s.Objects[s.emitterIndices[idx]]
}

// EmitterRay draws a uniform surface point on emitter and a
// cosine-weighted outgoing direction in the hemisphere of its outward
// normal, offset outward to avoid self-intersection.
func EmitterRay(emitter *object.Object, rng *rand.Rand) vecmath.Ray {
	point, normal := emitter.SamplePointAndNormal(rng)
	dir := cosineHemisphere(normal, rng)
	return vecmath.Ray{
		Origin:    point.Add(dir.Multiply(vecmath.SpawnEpsilon)),
		Direction: dir,
	}
}

// cosineHemisphere draws a cosine-weighted direction in the hemisphere
// of normal via Malley's method.
func cosineHemisphere(normal vecmath.Vec3, rng *rand.Rand) vecmath.Vec3 {
	u1, u2 := rng.Float64(), rng.Float64()
	r := math.Sqrt(u1)
	theta := 2 * math.Pi * u2
	x := r * math.Cos(theta)
	y := r * math.Sin(theta)
	z := math.Sqrt(math.Max(0, 1-u1))

	tangent, bitangent := orthonormalBasis(normal)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(z)).Normalize()
}

func orthonormalBasis(n vecmath.Vec3) (vecmath.Vec3, vecmath.Vec3) {
	var helper vecmath.Vec3
	if math.Abs(n.X) < 0.9 {
		helper = vecmath.NewVec3(1, 0, 0)
	} else {
		helper = vecmath.NewVec3(0, 1, 0)
	}
	tangent := n.Cross(helper).Normalize()
	bitangent := n.Cross(tangent)
	return tangent, bitangent
}
