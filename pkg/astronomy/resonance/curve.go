package resonance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Value evaluates the curve y = -k/(i·x + j).
//
// At the asymptote x = -j/i the result is ±Inf (or NaN when k is also
// zero); callers must treat that point specially. Value never panics.
func (r ThreeBody) Value(x float64) float64 {
	return -float64(r.K) / (float64(r.I)*x + float64(r.J))
}

// Inverse returns the abscissa at which the curve reaches ordinate y,
// x = -(j·y + k)/i/y.
func (r ThreeBody) Inverse(y float64) float64 {
	return -(float64(r.J)*y + float64(r.K)) / float64(r.I) / y
}

// Singularity returns the abscissa of the vertical asymptote, -j/i.
func (r ThreeBody) Singularity() float64 {
	return -float64(r.J) / float64(r.I)
}

// Sample evaluates the curve at every x in xs.
//
// When xs has more than one element and the asymptote lies within
// [min(xs), max(xs)], the sample closest to the asymptote is replaced by
// NaN so that consumers never see a finite spike joining both branches.
func (r ThreeBody) Sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for n, x := range xs {
		ys[n] = r.Value(x)
	}
	if len(xs) < 2 {
		return ys
	}

	sing := r.Singularity()
	if sing < floats.Min(xs) || sing > floats.Max(xs) {
		return ys
	}

	gap := make([]float64, len(xs))
	for n, x := range xs {
		gap[n] = math.Abs(x - sing)
	}
	ys[floats.MinIdx(gap)] = math.NaN()
	return ys
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n < 2 yields []float64{lo} (or nil for n < 1).
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
