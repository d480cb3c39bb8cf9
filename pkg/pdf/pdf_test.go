package pdf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionTable_RoundTrip(t *testing.T) {
	ft := BuildFunctionTable(func(x float64) float64 { return x * x }, 0, 1, 500)
	inverted := ft.Integrate().Invert()

	for _, x := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
		y := ft.Integrate().Apply(x)
		back := inverted.Apply(y)
		assert.InDelta(t, x, back, 5e-2)
	}
}

func TestProbabilityDensityFunction_IntegratesToOne(t *testing.T) {
	pdf := Build(func(x float64) float64 { return 2 * x }, 1000)
	assert.InDelta(t, 1.0, pdf.Integral(), 1e-2)
}

func TestProbabilityDensityFunction_SampleIsFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pdf := Build(func(x float64) float64 { return ggx(x, 0.4) }, 1000)

	for i := 0; i < 1000; i++ {
		s := pdf.Sample(rng)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
		l := pdf.Likelihood(s)
		assert.False(t, l != l, "likelihood must not be NaN")
	}
}

func ggx(x, roughness float64) float64 {
	r2 := roughness * roughness
	denom := x*x*(r2-1) + 1
	return r2 / (3.14159265358979 * denom * denom)
}
