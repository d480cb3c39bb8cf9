package material

import "github.com/kestrel-render/lumen/pkg/vecmath"

// ColorSource provides a (possibly spatially-varying) reflectance,
// evaluated at a local-frame surface point. Grounded on
// github.com/df07/go-progressive-raytracer's pkg/material/color_source.go
// and original_source/src/shader.rs.
type ColorSource interface {
	Shade(point vecmath.Vec3) vecmath.Vec3
}

// SolidColor is a ColorSource that ignores position.
type SolidColor struct {
	Color vecmath.Vec3
}

func NewSolidColor(c vecmath.Vec3) SolidColor { return SolidColor{Color: c} }

func (s SolidColor) Shade(vecmath.Vec3) vecmath.Vec3 { return s.Color }

// Checkerboard is the one procedural texture the core supports,
// grounded on original_source/src/shader.rs's Checkerboard.
type Checkerboard struct {
	ColorA, ColorB vecmath.Vec3
	Scale          float64
}

func NewCheckerboard(colorA, colorB vecmath.Vec3, scale float64) Checkerboard {
	return Checkerboard{ColorA: colorA, ColorB: colorB, Scale: scale}
}

func (c Checkerboard) Shade(point vecmath.Vec3) vecmath.Vec3 {
	s := point.Multiply(1.0 / c.Scale)
	parity := cellParity(s.X) != cellParity(s.Y)
	parity = parity != cellParity(s.Z)
	if parity {
		return c.ColorA
	}
	return c.ColorB
}

// cellParity returns whether floor(x) is even, offset to stay positive
// for any reasonable scene extent (mirrors the +10000 offset in
// original_source/src/shader.rs).
func cellParity(x float64) bool {
	const offset = 10000
	i := int64(x + offset)
	return i%2 == 0
}
