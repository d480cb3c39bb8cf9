// Package pdf implements the tabulated function-approximation utility
// and the GGX-derived ProbabilityDensityFunction used by reflective
// materials.
//
// This is a direct semantic port of original_source/src/function_approximation.rs,
// restated with Go method receivers in a small-helper style.
package pdf

import "sort"

// linearInterpolator is a sorted piecewise-linear lookup from xs to ys,
// snapping to the nearest endpoint outside [xs[0], xs[last]].
type linearInterpolator struct {
	xs, ys []float64
}

func newLinearInterpolator(xs, ys []float64) *linearInterpolator {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	sortedXs := make([]float64, n)
	sortedYs := make([]float64, n)
	for i, j := range idx {
		sortedXs[i] = xs[j]
		sortedYs[i] = ys[j]
	}
	return &linearInterpolator{xs: sortedXs, ys: sortedYs}
}

func (l *linearInterpolator) minX() float64 { return l.xs[0] }
func (l *linearInterpolator) maxX() float64 { return l.xs[len(l.xs)-1] }

func (l *linearInterpolator) apply(x float64) float64 {
	if x <= l.xs[0] {
		return l.ys[0]
	}
	last := len(l.xs) - 1
	if x >= l.xs[last] {
		return l.ys[last]
	}
	i := sort.SearchFloat64s(l.xs, x)
	if i == 0 {
		return l.ys[0]
	}
	x0, x1 := l.xs[i-1], l.xs[i]
	y0, y1 := l.ys[i-1], l.ys[i]
	weightA := x1 - x
	weightB := x - x0
	total := weightA + weightB
	if total == 0 {
		return y0
	}
	return (y0*weightA + y1*weightB) / total
}

// FunctionTable stores equi-spaced samples of f on [start, end].
type FunctionTable struct {
	Start, End float64
	stepSize   float64
	Ys         []float64
}

// BuildFunctionTable samples f at numSteps equi-spaced points on
// [start, end].
func BuildFunctionTable(f func(float64) float64, start, end float64, numSteps int) FunctionTable {
	if numSteps < 2 {
		numSteps = 2
	}
	step := (end - start) / float64(numSteps-1)
	ys := make([]float64, numSteps)
	x := start
	for i := range ys {
		ys[i] = f(x)
		x += step
	}
	return FunctionTable{Start: start, End: end, stepSize: step, Ys: ys}
}

// Apply is linear interpolation, snapping to the nearest endpoint value
// outside [Start, End].
func (ft FunctionTable) Apply(x float64) float64 {
	if x < ft.Start {
		return ft.Ys[0]
	}
	center := (x - ft.Start) / ft.stepSize
	left := int(center)
	if left >= len(ft.Ys)-1 {
		return ft.Ys[len(ft.Ys)-1]
	}
	rightWeight := center - float64(left)
	return ft.Ys[left]*(1-rightWeight) + ft.Ys[left+1]*rightWeight
}

// Integrate returns the trapezoidal cumulative integral, sampled at
// N+1 points (the table grows by one sample to hold the running total
// at Start itself, which is always zero).
func (ft FunctionTable) Integrate() FunctionTable {
	ys := make([]float64, len(ft.Ys)+1)
	x := ft.Start
	subtotal := 0.0
	previousY := 0.0
	for i := 1; i < len(ys); i++ {
		x += ft.stepSize
		currentY := ft.Apply(x)
		subtotal += (previousY + currentY) / 2 * ft.stepSize
		ys[i] = subtotal
		previousY = currentY
	}
	return FunctionTable{Start: ft.Start, End: ft.End, stepSize: ft.stepSize, Ys: ys}
}

// Normalize divides every sample by the table's final value.
func (ft FunctionTable) Normalize() FunctionTable {
	last := ft.Ys[len(ft.Ys)-1]
	ys := make([]float64, len(ft.Ys))
	for i, y := range ft.Ys {
		ys[i] = y / last
	}
	return FunctionTable{Start: ft.Start, End: ft.End, stepSize: ft.stepSize, Ys: ys}
}

// Invert builds a sorted (y, x) interpolator and resamples it onto a
// uniform grid, producing the inverse function table.
func (ft FunctionTable) Invert() FunctionTable {
	xs := make([]float64, len(ft.Ys))
	for i := range ft.Ys {
		xs[i] = ft.Start + float64(i)*ft.stepSize
	}
	inv := newLinearInterpolator(ft.Ys, xs)
	return BuildFunctionTable(inv.apply, inv.minX(), inv.maxX(), len(ft.Ys))
}
