package scene

import "math/rand"

// AliasTable is a Vose/Walker O(1) weighted-index sampler: O(n) setup,
// O(1) per draw. Grounded on original_source/src/scene.rs's use of
// rand_distr::WeightedAliasIndex for emitter selection. No library in
// the retrieved pack implements this directly; the closest pack
// relative is
// github.com/df07/go-progressive-raytracer's WeightedLightSampler,
// which walks a cumulative distribution in O(n) per draw instead.
type AliasTable struct {
	prob  []float64
	alias []int
}

// NewAliasTable builds an alias table from non-negative weights. The
// probability of index i being drawn is weights[i] / sum(weights).
func NewAliasTable(weights []float64) *AliasTable {
	n := len(weights)
	table := &AliasTable{prob: make([]float64, n), alias: make([]int, n)}
	if n == 0 {
		return table
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		// Degenerate: fall back to a uniform table rather than divide
		// by zero.
		for i := range table.prob {
			table.prob[i] = 1
			table.alias[i] = i
		}
		return table
	}

	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
	}

	var small, large []int
	for i, p := range scaled {
		if p < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		table.prob[s] = scaled[s]
		table.alias[s] = l

		scaled[l] = scaled[l] + scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	for len(large) > 0 {
		l := large[len(large)-1]
		large = large[:len(large)-1]
		table.prob[l] = 1
		table.alias[l] = l
	}
	for len(small) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		table.prob[s] = 1
		table.alias[s] = s
	}

	return table
}

// Sample draws an index in O(1) using the provided RNG.
func (t *AliasTable) Sample(rng *rand.Rand) int {
	n := len(t.prob)
	if n == 0 {
		return -1
	}
	i := rng.Intn(n)
	if rng.Float64() < t.prob[i] {
		return i
	}
	return t.alias[i]
}
