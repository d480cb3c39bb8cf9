package geometry

import (
	"math/rand"

	"github.com/kestrel-render/lumen/pkg/vecmath"
)

// Inverted delegates intersection, sampling, and area to the wrapped
// shape but negates the normal, so emission from inside a shell (or a
// containment enclosure) behaves correctly. Grounded on
// original_source/src/shape.rs's Inverted<S>.
type Inverted struct {
	Inner Shape
}

func NewInverted(inner Shape) *Inverted { return &Inverted{Inner: inner} }

func (i *Inverted) FirstHit(ray vecmath.Ray) (float64, bool) { return i.Inner.FirstHit(ray) }

func (i *Inverted) NormalAt(point vecmath.Vec3) vecmath.Vec3 {
	return i.Inner.NormalAt(point).Negate()
}

func (i *Inverted) SampleSurface(rng *rand.Rand) vecmath.Vec3 { return i.Inner.SampleSurface(rng) }

func (i *Inverted) Area() float64 { return i.Inner.Area() }
