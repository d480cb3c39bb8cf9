package pdf

import "math/rand"

// ProbabilityDensityFunction wraps a user-supplied density on [0,1],
// normalizing it, storing its CDF and inverse CDF for sampling, and
// the peak density for rescaling Evaluate into [0,1].
type ProbabilityDensityFunction struct {
	density    FunctionTable
	inverseCDF FunctionTable
	maxDensity float64
}

// Build tabulates f at numSteps points on [0,1], normalizes it to
// integrate to 1, and precomputes its inverse CDF for sampling.
func Build(f func(float64) float64, numSteps int) ProbabilityDensityFunction {
	unnormalized := BuildFunctionTable(f, 0, 1, numSteps)
	totalArea := unnormalized.Integrate().Apply(1)

	density := BuildFunctionTable(func(x float64) float64 { return f(x) / totalArea }, 0, 1, numSteps)
	cdf := density.Integrate()
	inverseCDF := cdf.Invert()

	maxDensity := density.Ys[0]
	for _, y := range density.Ys {
		if y > maxDensity {
			maxDensity = y
		}
	}

	return ProbabilityDensityFunction{density: density, inverseCDF: inverseCDF, maxDensity: maxDensity}
}

// Likelihood returns the normalized density at value, rescaled into
// [0,1] by the peak density.
func (pdf ProbabilityDensityFunction) Likelihood(value float64) float64 {
	if value < pdf.density.Start || value > pdf.density.End {
		return 0
	}
	if pdf.maxDensity == 0 {
		return 0
	}
	return pdf.density.Apply(value) / pdf.maxDensity
}

// Sample draws a value distributed according to the density via
// inverse-CDF sampling.
func (pdf ProbabilityDensityFunction) Sample(rng *rand.Rand) float64 {
	return pdf.inverseCDF.Apply(rng.Float64())
}

// Integral returns ∫f over the table's domain post-normalization,
// which should equal 1 within numerical error — exposed for tests.
func (pdf ProbabilityDensityFunction) Integral() float64 {
	return pdf.density.Integrate().Apply(pdf.density.End)
}
