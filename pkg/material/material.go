// Package material implements the tagged Emissive/Reflective material
// variant and its GGX-based sampling and evaluation routines, grounded
// on original_source/src/material.rs and restated in
// the interface shape of github.com/df07/go-progressive-raytracer's
// pkg/material (Scatter/EvaluateBRDF split into Interact/Evaluate).
package material

import (
	"math"
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/pdf"
	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Kind tags which variant a Material is.
type Kind int

const (
	KindEmissive Kind = iota
	KindReflective
)

// Material is a tagged variant: a pure light source (Emissive) or a
// microfacet-shaded reflective/transmissive surface (Reflective).
// Deliberately not unified behind a single BSDF interface — the
// integrator branches on Kind anyway.
type Material struct {
	Kind Kind

	// Emissive fields.
	Radiance vecmath.Vec3

	// Reflective fields.
	Color        ColorSource
	Roughness    float64
	Transmission float64
	IOR          float64
	ggxPDF       pdf.ProbabilityDensityFunction
}

// NewEmissive builds a pure light-emitting material.
func NewEmissive(radiance vecmath.Vec3) *Material {
	return &Material{Kind: KindEmissive, Radiance: radiance}
}

// mirrorRoughnessFloor is the threshold below which a reflective
// material is treated as a perfect mirror.
const mirrorRoughnessFloor = 1e-3

// ggxD evaluates the GGX microfacet distribution term tabulated into
// the material's PDF, with the mirror-floor special case from
// original_source/src/material.rs's ggx().
func ggxD(x, roughness float64) float64 {
	if roughness < mirrorRoughnessFloor {
		if x >= 0.9999 {
			return 1
		}
		return 0
	}
	r2 := roughness * roughness
	denom := x*x*(r2-1) + 1
	return r2 / (math.Pi * denom * denom)
}

// NewReflective builds a reflective/transmissive material with a
// precomputed GGX PDF table.
func NewReflective(color ColorSource, roughness, transmission, ior float64) *Material {
	r := math.Max(roughness, 0)
	m := &Material{
		Kind:         KindReflective,
		Color:        color,
		Roughness:    r,
		Transmission: clamp01(transmission),
		IOR:          ior,
	}
	m.ggxPDF = pdf.Build(func(x float64) float64 { return ggxD(x, r) }, 1000)
	return m
}

func clamp01(x float64) float64 { return math.Max(0, math.Min(1, x)) }

func (m *Material) IsEmissive() bool { return m.Kind == KindEmissive }
func (m *Material) IsMirror() bool   { return m.Kind == KindReflective && m.Roughness < mirrorRoughnessFloor }

// EmissionColor returns the material's own radiance, zero for anything
// that isn't a light source.
func (m *Material) EmissionColor() vecmath.Vec3 {
	if m.Kind == KindEmissive {
		return m.Radiance
	}
	return vecmath.Vec3{}
}

// reflect returns v reflected about a surface with normal n.
func reflect(v, n vecmath.Vec3) vecmath.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Interaction is the result of sampling an outgoing direction at a
// surface hit.
type Interaction struct {
	Outgoing    vecmath.Ray
	HasOutgoing bool
	Density     float64
	ColorFilter vecmath.Vec3
	Emission    vecmath.Vec3
	Normal      vecmath.Vec3 // possibly flipped toward the incoming ray
}

// Interact draws an outgoing direction and its sampling density given
// an incoming ray and the world-frame hit normal/position.
func (m *Material) Interact(incoming vecmath.Ray, hitPoint, hitNormal vecmath.Vec3, rng *rand.Rand) Interaction {
	if m.Kind == KindEmissive {
		return Interaction{
			ColorFilter: vecmath.NewVec3(1, 1, 1),
			Emission:    m.Radiance,
			HasOutgoing: false,
			Density:     1,
			Normal:      hitNormal,
		}
	}

	normal := hitNormal
	if normal.Dot(incoming.Direction) > 0 {
		normal = normal.Negate()
	}

	transmitted := rng.Float64() < m.Transmission

	desiredAngle, baseLikelihood := 1.0, 1.0
	if m.Roughness > 0 {
		sample := m.ggxPDF.Sample(rng)
		baseLikelihood = m.ggxPDF.Likelihood(sample)
		desiredAngle = sample
	}

	randomDirection := vecmath.NewVec3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).Normalize()
	perpendicular := normal.Cross(randomDirection)
	scatterNormal := perpendicular.Slerp(normal, desiredAngle)

	var outgoingDir vecmath.Vec3
	var likelihood float64
	if transmitted {
		if scatterNormal.Dot(incoming.Direction) >= 0 {
			outgoingDir = scatterNormal.Slerp(incoming.Direction, m.IOR)
		} else {
			outgoingDir = scatterNormal.Negate().Slerp(incoming.Direction, 1.0/m.IOR)
		}
		likelihood = baseLikelihood * m.Transmission
	} else {
		outgoingDir = reflect(incoming.Direction, scatterNormal)
		if outgoingDir.Dot(normal) < 0 {
			outgoingDir = reflect(outgoingDir, normal)
		}
		likelihood = baseLikelihood * (1 - m.Transmission)
	}
	outgoingDir = outgoingDir.Normalize()

	outgoingRay := vecmath.Ray{
		Origin:    hitPoint.Add(outgoingDir.Multiply(vecmath.SpawnEpsilon)),
		Direction: outgoingDir,
	}

	return Interaction{
		Outgoing:    outgoingRay,
		HasOutgoing: true,
		Density:     likelihood,
		ColorFilter: m.Color.Shade(hitPoint),
		Emission:    vecmath.Vec3{},
		Normal:      normal,
	}
}

// Evaluate returns the sampling likelihood for a given
// incoming/outgoing/normal triple.
func (m *Material) Evaluate(incoming, outgoing, normal vecmath.Vec3) float64 {
	if m.Kind == KindEmissive {
		return math.Max(0, outgoing.Dot(normal))
	}

	onReflectionSide := (normal.Dot(incoming) < 0) == (normal.Dot(outgoing) > 0)
	if onReflectionSide {
		halfVector := outgoing.Subtract(incoming).Normalize()
		if halfVector.Dot(normal) < 0 {
			halfVector = halfVector.Negate()
		}
		angleDot := halfVector.Dot(normal)
		return m.ggxPDF.Likelihood(angleDot) * (1 - m.Transmission)
	}

	var direction vecmath.Vec3
	if normal.Dot(incoming) >= 0 {
		direction = normal.Slerp(incoming, m.IOR)
	} else {
		direction = normal.Negate().Slerp(incoming, 1.0/m.IOR)
	}
	angleDot := direction.Dot(outgoing)
	return m.ggxPDF.Likelihood(angleDot) * m.Transmission
}
