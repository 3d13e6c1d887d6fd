package math_test

import (
	"math"
	"testing"

	astromath "github.com/oxygene76/mmrplane/pkg/astronomy/math"
	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{-4, 2, 2},
		{7, 0, 7},
		{0, -9, 9},
		{0, 0, 0},
		{13, 5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, astromath.GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestGCD3(t *testing.T) {
	assert.Equal(t, 2, astromath.GCD3(4, -10, 6))
	assert.Equal(t, 1, astromath.GCD3(2, -5, 3))
	assert.Equal(t, 5, astromath.GCD3(0, 5, -10))
}

func TestPointDistance(t *testing.T) {
	p := astromath.Point{X: 1, Y: 1}
	q := astromath.Point{X: 4, Y: 5}

	assert.InDelta(t, 5.0, p.Distance(q), 1e-12)
	assert.InDelta(t, 5.0, q.Distance(p), 1e-12)
	assert.Equal(t, astromath.Point{X: -3, Y: -4}, p.Sub(q))

	// no overflow for large coordinates
	far := astromath.Point{X: 3e200, Y: 4e200}
	assert.InEpsilon(t, 5e200, far.Distance(astromath.Point{}), 1e-12)
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, astromath.Point{X: 1.5, Y: -2}.IsFinite())
	assert.False(t, astromath.Point{X: math.NaN(), Y: 1}.IsFinite())
	assert.False(t, astromath.Point{X: 1, Y: math.Inf(-1)}.IsFinite())
}
