package orbital_test

import (
	"math"
	"testing"

	"github.com/oxygene76/mmrplane/pkg/astronomy/orbital"
	"github.com/stretchr/testify/assert"
)

func TestGetOrbitalPeriod_Earth(t *testing.T) {
	earth := orbital.OrbitalElements{SemiMajorAxis: 1.0}

	// one sidereal year
	assert.InDelta(t, 365.2569, earth.GetOrbitalPeriod(orbital.MuSun), 1e-3)
	assert.InDelta(t, orbital.GaussianGravitationalConstant, earth.MeanMotion(orbital.MuSun), 1e-12)
}

func TestGetOrbitalPeriod_KeplerThirdLaw(t *testing.T) {
	inner := orbital.OrbitalElements{SemiMajorAxis: 1.0}
	outer := orbital.OrbitalElements{SemiMajorAxis: 4.0}

	ratio := outer.GetOrbitalPeriod(orbital.MuSun) / inner.GetOrbitalPeriod(orbital.MuSun)
	assert.InDelta(t, 8.0, ratio, 1e-12)
}

func TestMuForStar(t *testing.T) {
	assert.Equal(t, orbital.MuSun, orbital.MuForStar(1))
	assert.InDelta(t, 0.5*orbital.MuSun, orbital.MuForStar(0.5), 1e-18)

	// a lighter star means a longer period at the same distance
	el := orbital.OrbitalElements{SemiMajorAxis: 1.0}
	assert.InDelta(t, math.Sqrt(2), el.GetOrbitalPeriod(orbital.MuForStar(0.5))/el.GetOrbitalPeriod(orbital.MuSun), 1e-12)
}

func TestGetOrbitalPeriod_FromMeanMotion(t *testing.T) {
	for _, a := range []float64{0.05, 0.39, 1.0, 5.2, 30.1} {
		el := orbital.OrbitalElements{SemiMajorAxis: a}
		mu := orbital.MuForStar(0.8)
		assert.InDelta(t, 2*math.Pi, el.GetOrbitalPeriod(mu)*el.MeanMotion(mu), 1e-12)
	}
}
