package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kestrel-render/lumen/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestReflective_InteractStaysInUpperHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := NewReflective(NewSolidColor(vecmath.NewVec3(0.8, 0.8, 0.8)), 0.6, 0, 1.5)

	normal := vecmath.NewVec3(0, 1, 0)
	hitPoint := vecmath.NewVec3(0, 0, 0)

	for i := 0; i < 500; i++ {
		incoming := vecmath.NewRay(vecmath.Vec3{}, vecmath.NewVec3(rng.NormFloat64(), -math.Abs(rng.NormFloat64())-0.1, rng.NormFloat64()).Normalize())
		interaction := m.Interact(incoming, hitPoint, normal, rng)
		assert.True(t, interaction.HasOutgoing)
		assert.GreaterOrEqual(t, interaction.Outgoing.Direction.Dot(interaction.Normal), -1e-9)
	}
}

func TestReflective_EvaluateIntegratesNearOne(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := NewReflective(NewSolidColor(vecmath.NewVec3(1, 1, 1)), 0.5, 0, 1.5)
	normal := vecmath.NewVec3(0, 1, 0)
	incoming := vecmath.NewVec3(0.3, -0.9, 0.1).Normalize()

	// Monte Carlo estimate of the hemisphere integral of Evaluate
	// using uniform hemisphere samples.
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := uniformHemisphere(rng, normal)
		pdfUniform := 1.0 / (2 * math.Pi)
		sum += m.Evaluate(incoming, dir, normal) / pdfUniform
	}
	estimate := sum / n
	assert.InDelta(t, 1.0, estimate, 0.5, "rough GGX-derived density should integrate close to 1")
}

func uniformHemisphere(rng *rand.Rand, normal vecmath.Vec3) vecmath.Vec3 {
	for {
		v := vecmath.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if v.LengthSquared() > 1 || v.LengthSquared() == 0 {
			continue
		}
		v = v.Normalize()
		if v.Dot(normal) < 0 {
			v = v.Negate()
		}
		return v
	}
}

func TestMirror_EvaluateIsZeroAwayFromReflectionCone(t *testing.T) {
	m := NewReflective(NewSolidColor(vecmath.NewVec3(1, 1, 1)), 0, 0, 1.5)
	normal := vecmath.NewVec3(0, 1, 0)
	incoming := vecmath.NewVec3(0.3, -0.9, 0).Normalize()
	offCone := vecmath.NewVec3(0.9, 0.1, 0.3).Normalize()

	assert.Equal(t, 0.0, m.Evaluate(incoming, offCone, normal))
}

func TestEmissive_EvaluateIsLambertianLobe(t *testing.T) {
	m := NewEmissive(vecmath.NewVec3(5, 5, 5))
	normal := vecmath.NewVec3(0, 1, 0)

	assert.InDelta(t, 1.0, m.Evaluate(vecmath.Vec3{}, normal, normal), 1e-9)
	assert.Equal(t, 0.0, m.Evaluate(vecmath.Vec3{}, normal.Negate(), normal))
}

func TestEmissive_InteractTerminatesPath(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewEmissive(vecmath.NewVec3(2, 2, 2))
	interaction := m.Interact(vecmath.Ray{}, vecmath.Vec3{}, vecmath.NewVec3(0, 1, 0), rng)
	assert.False(t, interaction.HasOutgoing)
	assert.Equal(t, vecmath.NewVec3(2, 2, 2), interaction.Emission)
}
