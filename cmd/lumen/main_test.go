package main

import (
	"testing"

	"github.com/kestrel-render/lumen/pkg/geometry"
	"github.com/kestrel-render/lumen/pkg/material"
	"github.com/kestrel-render/lumen/pkg/object"
	"github.com/kestrel-render/lumen/pkg/render"
	"github.com/kestrel-render/lumen/pkg/scene"
	"github.com/kestrel-render/lumen/pkg/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func litScene(t *testing.T) *scene.Scene {
	t.Helper()
	transform := vecmath.Identity()
	transform.Translation = vecmath.NewVec3(0, 5, 0)
	emitter := object.New(&geometry.Sphere{Radius: 1}, transform, material.NewEmissive(vecmath.NewVec3(10, 10, 10)))
	s, err := scene.New([]*object.Object{emitter})
	require.NoError(t, err)
	return s
}

func darkScene(t *testing.T) *scene.Scene {
	t.Helper()
	transform := vecmath.Identity()
	obj := object.New(&geometry.Sphere{Radius: 1}, transform, material.NewReflective(material.NewSolidColor(vecmath.NewVec3(1, 1, 1)), 0.5, 0, 1.5))
	s, err := scene.New([]*object.Object{obj})
	require.NoError(t, err)
	return s
}

func TestBuildIntegrator(t *testing.T) {
	tests := []struct {
		name        string
		kind        string
		scene       *scene.Scene
		expectError bool
	}{
		{"bdpt", "bdpt", litScene(t), false},
		{"forward", "forward", darkScene(t), false},
		{"depth", "depth", darkScene(t), false},
		{"pathtrace", "pathtrace", darkScene(t), false},
		{"unknown", "raytrace", litScene(t), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integ, err := buildIntegrator(tt.kind, tt.scene, 4)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, integ)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, integ)
		})
	}
}

func TestBuildIntegrator_BDPTRejectsZeroEmitterScene(t *testing.T) {
	integ, err := buildIntegrator("bdpt", darkScene(t), 4)
	assert.Error(t, err)
	assert.Nil(t, integ)
}

func TestToImage_MatchesBufferDimensions(t *testing.T) {
	buf := render.NewBuffer(4, 3)
	buf.Set(0, 0, vecmath.NewVec3(1, 0, 0))

	img := toImage(buf)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	r, _, _, a := img.At(0, 0).RGBA()
	assert.Greater(t, r, uint32(0))
	assert.Equal(t, uint32(0xffff), a)
}

func TestResizeImage_ScalesDimensions(t *testing.T) {
	buf := render.NewBuffer(10, 10)
	img := toImage(buf)

	scaled := resizeImage(img, 0.5)
	assert.Equal(t, 5, scaled.Bounds().Dx())
	assert.Equal(t, 5, scaled.Bounds().Dy())
}
