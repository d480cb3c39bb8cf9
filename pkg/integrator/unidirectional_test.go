package integrator

import (
	"math/rand"
	"testing"

	"github.com/kestrel-render/lumen/pkg/material"
	"github.com/kestrel-render/lumen/pkg/object"
	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnidirectionalPathTracer_ProducesFiniteNonNegativeRadiance(t *testing.T) {
	s := litFloorScene(t)
	u := NewUnidirectionalPathTracer(6)
	rng := rand.New(rand.NewSource(9))

	ray := vecmath.NewRay(vecmath.NewVec3(0, 1, 5), vecmath.NewVec3(0, -0.1, -1).Normalize())
	for i := 0; i < 64; i++ {
		c := u.Render(ray, s, rng)
		assert.True(t, c.IsFinite(), "radiance must be finite")
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.GreaterOrEqual(t, c.Z, 0.0)
	}
}

func TestUnidirectionalPathTracer_MissIsZero(t *testing.T) {
	s := litFloorScene(t)
	u := NewUnidirectionalPathTracer(6)
	rng := rand.New(rand.NewSource(1))

	ray := vecmath.NewRay(vecmath.NewVec3(0, 1000, 0), vecmath.NewVec3(0, 1, 0))
	c := u.Render(ray, s, rng)
	assert.Equal(t, vecmath.Vec3{}, c)
}

func TestUnidirectionalPathTracer_DirectHitOnEmitterReturnsItsRadiance(t *testing.T) {
	light := sphereAt(vecmath.NewVec3(0, 0, -5), 1, material.NewEmissive(vecmath.NewVec3(3, 4, 5)))
	s, err := scene.New([]*object.Object{light})
	require.NoError(t, err)

	u := NewUnidirectionalPathTracer(6)
	rng := rand.New(rand.NewSource(2))
	ray := vecmath.NewRay(vecmath.Vec3{}, vecmath.NewVec3(0, 0, -1))

	c := u.Render(ray, s, rng)
	assert.Equal(t, vecmath.NewVec3(3, 4, 5), c)
}

func TestUnidirectionalPathTracer_ZeroEmitterSceneIsBlack(t *testing.T) {
	floor := sphereAt(vecmath.NewVec3(0, -1000, 0), 999, material.NewReflective(material.NewSolidColor(vecmath.NewVec3(0.7, 0.7, 0.7)), 0.8, 0, 1.5))
	s, err := scene.New([]*object.Object{floor})
	require.NoError(t, err)
	assert.False(t, s.HasEmitters())

	u := NewUnidirectionalPathTracer(6)
	rng := rand.New(rand.NewSource(3))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 1, 5), vecmath.NewVec3(0, -0.1, -1).Normalize())

	c := u.Render(ray, s, rng)
	assert.Equal(t, vecmath.Vec3{}, c)
}
