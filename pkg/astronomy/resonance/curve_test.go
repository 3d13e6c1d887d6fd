package resonance_test

import (
	"math"
	"testing"

	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreeBodyValue(t *testing.T) {
	r := resonance.ThreeBody{I: 2, J: -5, K: 3}

	assert.InDelta(t, 1.5, r.Value(1.5), 1e-12)
	assert.InDelta(t, 2.5, r.Singularity(), 1e-12)
	assert.True(t, math.IsInf(r.Value(2.5), 0), "value at the asymptote must be infinite")

	// Inverse undoes Value away from the asymptote
	for _, x := range []float64{1.1, 1.7, 2.3, 3.0} {
		assert.InDelta(t, x, r.Inverse(r.Value(x)), 1e-9, "x=%g", x)
	}
}

func TestThreeBodySample_MasksSingularity(t *testing.T) {
	r := resonance.ThreeBody{I: 2, J: -5, K: 3}
	xs := resonance.Linspace(2.0, 3.0, 101)
	ys := r.Sample(xs)

	require.Len(t, ys, len(xs))
	nans := 0
	for n, y := range ys {
		if math.IsNaN(y) {
			nans++
			assert.InDelta(t, 2.5, xs[n], 1e-9, "masked sample must be the one nearest the asymptote")
		}
	}
	assert.Equal(t, 1, nans, "exactly one sample should be masked")
}

func TestThreeBodySample_NoSingularityInRange(t *testing.T) {
	r := resonance.ThreeBody{I: 2, J: -5, K: 3}
	xs := resonance.Linspace(1.1, 2.0, 50)

	for n, y := range r.Sample(xs) {
		assert.False(t, math.IsNaN(y), "sample %d should not be masked", n)
		assert.Equal(t, r.Value(xs[n]), y)
	}

	// A single sample is never masked, even right at the asymptote.
	single := r.Sample([]float64{2.5})
	assert.True(t, math.IsInf(single[0], 0))
}

func TestLinspace(t *testing.T) {
	assert.Nil(t, resonance.Linspace(0, 1, 0))
	assert.Equal(t, []float64{3}, resonance.Linspace(3, 4, 1))

	xs := resonance.Linspace(1, 2, 5)
	assert.InDeltaSlice(t, []float64{1, 1.25, 1.5, 1.75, 2}, xs, 1e-12)
}

func TestThreeBodyCanonical(t *testing.T) {
	tests := []struct {
		in, want resonance.ThreeBody
	}{
		{resonance.ThreeBody{I: 4, J: -10, K: 6}, resonance.ThreeBody{I: 2, J: -5, K: 3}},
		{resonance.ThreeBody{I: -2, J: 5, K: -3}, resonance.ThreeBody{I: 2, J: -5, K: 3}},
		{resonance.ThreeBody{I: -4, J: 10, K: -6}, resonance.ThreeBody{I: 2, J: -5, K: 3}},
		{resonance.ThreeBody{I: -1, J: 1, K: 1}, resonance.ThreeBody{I: -1, J: 1, K: 1}},
		{resonance.ThreeBody{I: 2, J: 0, K: -2}, resonance.ThreeBody{I: 1, J: 0, K: -1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Canonical(), "Canonical(%s)", tt.in)
	}
}

func TestParseThreeBody(t *testing.T) {
	r, err := resonance.ParseThreeBody("2,-5,3")
	require.NoError(t, err)
	assert.Equal(t, resonance.ThreeBody{I: 2, J: -5, K: 3}, r)
	assert.Equal(t, 0, r.Order())

	r, err = resonance.ParseThreeBody("1 -3 2")
	require.NoError(t, err)
	assert.Equal(t, resonance.ThreeBody{I: 1, J: -3, K: 2}, r)

	for _, bad := range []string{"", "1,2", "1,x,3", "0,1,-1", "1,-1,0"} {
		_, err := resonance.ParseThreeBody(bad)
		assert.ErrorIs(t, err, resonance.ErrInvalidResonance, "input %q", bad)
	}
}

func TestTwoBody(t *testing.T) {
	r := resonance.TwoBody{P: 5, Q: 3}
	assert.InDelta(t, 5.0/3.0, r.Ratio(), 1e-15)
	assert.Equal(t, 2, r.Order())
	assert.Equal(t, "5:3", r.String())
}
