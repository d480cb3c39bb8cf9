package integrator

import (
	"math/rand"
	"testing"

	"github.com/kestrel-render/lumen/pkg/geometry"
	"github.com/kestrel-render/lumen/pkg/material"
	"github.com/kestrel-render/lumen/pkg/object"
	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphereAt(center vecmath.Vec3, radius float64, mat *material.Material) *object.Object {
	transform := vecmath.Identity()
	transform.Translation = center
	transform.Scale = radius
	return object.New(&geometry.Sphere{Radius: 1}, transform, mat)
}

// a simple two-sphere scene: a diffuse-ish floor lit by an overhead
// emitter, used to check the integrator produces finite, non-negative
// radiance and that it is brighter looking toward the light than away
// from it.
func litFloorScene(t *testing.T) *scene.Scene {
	t.Helper()
	light := sphereAt(vecmath.NewVec3(0, 5, 0), 1, material.NewEmissive(vecmath.NewVec3(20, 20, 20)))
	floor := sphereAt(vecmath.NewVec3(0, -1000, 0), 999, material.NewReflective(material.NewSolidColor(vecmath.NewVec3(0.7, 0.7, 0.7)), 0.8, 0, 1.5))
	s, err := scene.New([]*object.Object{light, floor})
	require.NoError(t, err)
	return s
}

func TestRecursiveBDPT_ProducesFiniteNonNegativeRadiance(t *testing.T) {
	s := litFloorScene(t)
	bd, err := NewRecursiveBDPT(s, 4)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(5))

	ray := vecmath.NewRay(vecmath.NewVec3(0, 1, 5), vecmath.NewVec3(0, -0.1, -1).Normalize())
	for i := 0; i < 64; i++ {
		c := bd.Render(ray, s, rng)
		assert.True(t, c.IsFinite(), "radiance must be finite")
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.GreaterOrEqual(t, c.Z, 0.0)
	}
}

func TestRecursiveBDPT_MissIsZero(t *testing.T) {
	s := litFloorScene(t)
	bd, err := NewRecursiveBDPT(s, 4)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	ray := vecmath.NewRay(vecmath.NewVec3(0, 1000, 0), vecmath.NewVec3(0, 1, 0))
	c := bd.Render(ray, s, rng)
	assert.Equal(t, vecmath.Vec3{}, c)
}

func TestNewRecursiveBDPT_RejectsNoEmitters(t *testing.T) {
	floor := sphereAt(vecmath.NewVec3(0, -1000, 0), 999, material.NewReflective(material.NewSolidColor(vecmath.NewVec3(0.7, 0.7, 0.7)), 0.8, 0, 1.5))
	s, err := scene.New([]*object.Object{floor})
	require.NoError(t, err)

	bd, err := NewRecursiveBDPT(s, 4)
	assert.Error(t, err)
	assert.Nil(t, bd)
}

func TestForwardReflectance_RendersZeroEmitterSceneFiniteAndNonNegative(t *testing.T) {
	floor := sphereAt(vecmath.NewVec3(0, -1000, 0), 999, material.NewReflective(material.NewSolidColor(vecmath.NewVec3(0.7, 0.7, 0.7)), 0.8, 0, 1.5))
	s, err := scene.New([]*object.Object{floor})
	require.NoError(t, err)
	assert.False(t, s.HasEmitters())

	f := NewForwardReflectance(vecmath.NewVec3(0, 0, -5))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 1, 5), vecmath.NewVec3(0, -0.1, -1).Normalize())
	c := f.Render(ray, s, nil)
	assert.True(t, c.IsFinite())
	assert.GreaterOrEqual(t, c.X, 0.0)
	assert.GreaterOrEqual(t, c.Y, 0.0)
	assert.GreaterOrEqual(t, c.Z, 0.0)
}

func TestForwardReflectance_MissIsZero(t *testing.T) {
	s := litFloorScene(t)
	f := NewForwardReflectance(vecmath.NewVec3(0, 0, -5))
	ray := vecmath.NewRay(vecmath.NewVec3(0, 1000, 0), vecmath.NewVec3(0, 1, 0))
	c := f.Render(ray, s, nil)
	assert.Equal(t, vecmath.Vec3{}, c)
}

func TestDepthVisualizer_ReturnsHitDistance(t *testing.T) {
	s := litFloorScene(t)
	d := NewDepthVisualizer()
	ray := vecmath.NewRay(vecmath.NewVec3(0, 1, 5), vecmath.NewVec3(0, -1, 0))
	c := d.Render(ray, s, nil)
	assert.Greater(t, c.X, 0.0)
	assert.Equal(t, c.X, c.Y)
	assert.Equal(t, c.Y, c.Z)
}
