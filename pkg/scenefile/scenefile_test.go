package scenefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `
camera:
  width: 64
  height: 48
  fov: 50
  aperture:
    kind: pinhole
  transform:
    translate: { x: 0, y: 1, z: 8 }

objects:
  - shape:
      kind: sphere
      radius: 1
    transform:
      translate: { x: 0, y: 5, z: 0 }
    material:
      kind: emissive
      radiance: { x: 15, y: 15, z: 15 }

  - shape:
      kind: cuboid
      width: 20
      height: 1
      depth: 20
    transform:
      translate: { x: 0, y: -1, z: 0 }
    material:
      kind: reflective
      roughness: 0.6
      ior: 1.5
      color:
        checker:
          colorA: { x: 0.9, y: 0.9, z: 0.9 }
          colorB: { x: 0.1, y: 0.1, z: 0.1 }
          scale: 2
`

func TestParse_ValidDocument(t *testing.T) {
	s, cam, err := Parse([]byte(validDocument))
	require.NoError(t, err)
	assert.Equal(t, 64, cam.Width)
	assert.Equal(t, 48, cam.Height)
	assert.Len(t, s.Objects, 2)
}

func TestParse_RejectsUnknownShapeKind(t *testing.T) {
	doc := `
camera: { width: 10, height: 10 }
objects:
  - shape: { kind: torus }
    material: { kind: emissive }
`
	_, _, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_RejectsUnknownMaterialKind(t *testing.T) {
	doc := `
camera: { width: 10, height: 10 }
objects:
  - shape: { kind: sphere, radius: 1 }
    material: { kind: glowing }
`
	_, _, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_AllowsNoEmitters(t *testing.T) {
	doc := `
camera: { width: 10, height: 10 }
objects:
  - shape: { kind: sphere, radius: 1 }
    material:
      kind: reflective
      color: { solid: { x: 1, y: 1, z: 1 } }
`
	s, _, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.False(t, s.HasEmitters())
}

func TestParse_RejectsBadResolution(t *testing.T) {
	doc := `
camera: { width: 0, height: 10 }
objects:
  - shape: { kind: sphere, radius: 1 }
    material: { kind: emissive }
`
	_, _, err := Parse([]byte(doc))
	assert.Error(t, err)
}
