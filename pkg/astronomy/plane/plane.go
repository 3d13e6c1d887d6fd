// Package plane turns the periods of a planetary system into points of the
// three-body resonance plane.
//
// For bodies sorted by period P_0 < P_1 < ... the plane coordinates of the
// triplet (n, n+1, n+2) are (P_{n+1}/P_n, P_{n+2}/P_{n+1}), equivalently the
// mean-motion ratios (n_n/n_{n+1}, n_{n+1}/n_{n+2}).
package plane

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats"

	astromath "github.com/oxygene76/mmrplane/pkg/astronomy/math"
	"github.com/oxygene76/mmrplane/pkg/astronomy/orbital"
)

// SortedOrder returns the indices of periods in ascending period order.
// Ties keep their input order.
func SortedOrder(periods []float64) ([]int, error) {
	if err := validatePeriods(periods); err != nil {
		return nil, err
	}

	sorted := make([]float64, len(periods))
	copy(sorted, periods)
	idx := make([]int, len(periods))
	floats.ArgsortStable(sorted, idx)
	return idx, nil
}

// ConsecutiveRatios sorts the periods ascending and returns P[n+1]/P[n] for
// every adjacent pair.
func ConsecutiveRatios(periods []float64) ([]float64, error) {
	if len(periods) < 2 {
		return nil, errorsmod.Wrapf(ErrTooFewBodies, "need at least 2 periods, got %d", len(periods))
	}
	idx, err := SortedOrder(periods)
	if err != nil {
		return nil, err
	}

	ratios := make([]float64, len(idx)-1)
	for n := range ratios {
		ratios[n] = periods[idx[n+1]] / periods[idx[n]]
	}
	return ratios, nil
}

// Points returns one plane point per consecutive triplet of bodies.
func Points(periods []float64) ([]astromath.Point, error) {
	if len(periods) < 3 {
		return nil, errorsmod.Wrapf(ErrTooFewBodies, "need at least 3 periods, got %d", len(periods))
	}
	ratios, err := ConsecutiveRatios(periods)
	if err != nil {
		return nil, err
	}

	points := make([]astromath.Point, len(ratios)-1)
	for n := range points {
		points[n] = astromath.Point{X: ratios[n], Y: ratios[n+1]}
	}
	return points, nil
}

// PeriodsFromSemiMajorAxes converts semi-major axes in AU to periods in days
// around a star of starMass solar masses.
func PeriodsFromSemiMajorAxes(axes []float64, starMass float64) ([]float64, error) {
	if !(starMass > 0) || math.IsInf(starMass, 0) {
		return nil, errorsmod.Wrapf(ErrInvalidStarMass, "%g", starMass)
	}
	mu := orbital.MuForStar(starMass)

	periods := make([]float64, len(axes))
	for n, a := range axes {
		if !(a > 0) || math.IsInf(a, 0) {
			return nil, errorsmod.Wrapf(ErrInvalidPeriod, "semi-major axis %d is %g", n, a)
		}
		periods[n] = orbital.OrbitalElements{SemiMajorAxis: a}.GetOrbitalPeriod(mu)
	}
	return periods, nil
}

func validatePeriods(periods []float64) error {
	for n, p := range periods {
		if !(p > 0) || math.IsInf(p, 0) {
			return errorsmod.Wrapf(ErrInvalidPeriod, "period %d is %g", n, p)
		}
	}
	return nil
}
