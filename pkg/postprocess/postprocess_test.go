package postprocess

import (
	"testing"

	"github.com/kestrel-render/lumen/pkg/render"
	"github.com/kestrel-render/lumen/pkg/vecmath"
	"github.com/stretchr/testify/assert"
)

func TestSRGB_RoundTrips(t *testing.T) {
	for _, x := range []float64{0, 0.01, 0.1, 0.5, 0.9, 1} {
		assert.InDelta(t, x, DecodeSRGB(EncodeSRGB(x)), 1e-9)
	}
}

func TestReinhardToneMap_NeverExceedsOne(t *testing.T) {
	for _, x := range []float64{0, 1, 10, 1000, 1e9} {
		y := ReinhardToneMap(x)
		assert.GreaterOrEqual(t, y, 0.0)
		assert.Less(t, y, 1.0)
	}
}

func TestMedianFilter_RemovesIsolatedFirefly(t *testing.T) {
	buf := render.NewBuffer(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			buf.Set(x, y, vecmath.NewVec3(0.1, 0.1, 0.1))
		}
	}
	buf.Set(2, 2, vecmath.NewVec3(50, 50, 50))

	filtered := MedianFilter(buf, 1)
	assert.InDelta(t, 0.1, filtered.At(2, 2).X, 1e-9)
}

func TestMedianFilter_ZeroRadiusIsIdentity(t *testing.T) {
	buf := render.NewBuffer(3, 3)
	buf.Set(1, 1, vecmath.NewVec3(7, 8, 9))

	filtered := MedianFilter(buf, 0)
	assert.Equal(t, buf.At(1, 1), filtered.At(1, 1))
}

func TestNormalizeDepth_MapsNearAndFarToOneAndZero(t *testing.T) {
	buf := render.NewBuffer(2, 1)
	buf.Set(0, 0, vecmath.NewVec3(2, 2, 2))
	buf.Set(1, 0, vecmath.NewVec3(10, 10, 10))

	norm := NormalizeDepth(buf)
	assert.InDelta(t, 1.0, norm.At(0, 0).X, 1e-9)
	assert.InDelta(t, 0.0, norm.At(1, 0).X, 1e-9)
}

func TestNormalizeDepth_ConstantDepthIsAllZero(t *testing.T) {
	buf := render.NewBuffer(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			buf.Set(x, y, vecmath.NewVec3(5, 5, 5))
		}
	}

	norm := NormalizeDepth(buf)
	for _, p := range norm.Pixels {
		assert.Equal(t, vecmath.Vec3{}, p)
	}
}

func TestNormalizeDepth_NoHitsIsAllZero(t *testing.T) {
	buf := render.NewBuffer(2, 2)
	norm := NormalizeDepth(buf)
	for _, p := range norm.Pixels {
		assert.Equal(t, vecmath.Vec3{}, p)
	}
}
