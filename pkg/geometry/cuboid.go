package geometry

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Cuboid is an axis-aligned box of the given extents centered at the
// local origin.
type Cuboid struct {
	Width, Height, Depth float64
}

func NewCuboid(width, height, depth float64) *Cuboid {
	return &Cuboid{Width: width, Height: height, Depth: depth}
}

type cuboidFace struct {
	axis      int // 0=x, 1=y, 2=z
	sign      float64
	halfA     float64 // half-extent along the other two axes, in order
	halfB     float64
	halfAlong float64 // half-extent along axis
}

func (c *Cuboid) faces() [6]cuboidFace {
	hw, hh, hd := c.Width/2, c.Height/2, c.Depth/2
	return [6]cuboidFace{
		{axis: 0, sign: 1, halfA: hh, halfB: hd, halfAlong: hw},
		{axis: 0, sign: -1, halfA: hh, halfB: hd, halfAlong: hw},
		{axis: 1, sign: 1, halfA: hw, halfB: hd, halfAlong: hh},
		{axis: 1, sign: -1, halfA: hw, halfB: hd, halfAlong: hh},
		{axis: 2, sign: 1, halfA: hw, halfB: hh, halfAlong: hd},
		{axis: 2, sign: -1, halfA: hw, halfB: hh, halfAlong: hd},
	}
}

func component(v vecmath.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// FirstHit tests all six face planes and keeps the smallest positive t
// whose hit point lies within the other two extents.
func (c *Cuboid) FirstHit(ray vecmath.Ray) (float64, bool) {
	best := 0.0
	found := false
	for _, f := range c.faces() {
		d := component(ray.Direction, f.axis)
		if d == 0 {
			continue
		}
		planePos := f.sign * f.halfAlong
		t := (planePos - component(ray.Origin, f.axis)) / d
		if t <= hitEpsilon || (found && t >= best) {
			continue
		}
		point := ray.At(t)
		ia, ib := otherAxes(f.axis)
		a, b := component(point, ia), component(point, ib)
		if a < -f.halfA || a > f.halfA || b < -f.halfB || b > f.halfB {
			continue
		}
		best = t
		found = true
	}
	return best, found
}

func (c *Cuboid) NormalAt(point vecmath.Vec3) vecmath.Vec3 {
	hw, hh, hd := c.Width/2, c.Height/2, c.Depth/2
	dx := hw - absf(point.X)
	dy := hh - absf(point.Y)
	dz := hd - absf(point.Z)

	switch {
	case dx <= dy && dx <= dz:
		return vecmath.NewVec3(signOf(point.X), 0, 0)
	case dy <= dx && dy <= dz:
		return vecmath.NewVec3(0, signOf(point.Y), 0)
	default:
		return vecmath.NewVec3(0, 0, signOf(point.Z))
	}
}

func (c *Cuboid) SampleSurface(rng *rand.Rand) vecmath.Vec3 {
	faces := c.faces()
	areas := make([]float64, len(faces))
	total := 0.0
	for i, f := range faces {
		areas[i] = 4 * f.halfA * f.halfB
		total += areas[i]
	}
	u := rng.Float64() * total
	idx := 0
	for i, a := range areas {
		if u < a {
			idx = i
			break
		}
		u -= a
		idx = i
	}
	f := faces[idx]
	a := (rng.Float64()*2 - 1) * f.halfA
	b := (rng.Float64()*2 - 1) * f.halfB
	ia, ib := otherAxes(f.axis)

	var comps [3]float64
	comps[f.axis] = f.sign * f.halfAlong
	comps[ia] = a
	comps[ib] = b
	return vecmath.NewVec3(comps[0], comps[1], comps[2])
}

func (c *Cuboid) Area() float64 {
	total := 0.0
	for _, f := range c.faces() {
		total += 4 * f.halfA * f.halfB
	}
	return total
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func signOf(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
