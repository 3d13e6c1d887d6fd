package orbital

import (
	"math"
)

const (
	// GaussianGravitationalConstant is k in AU^(3/2) / day / M_sun^(1/2).
	GaussianGravitationalConstant = 0.01720209895

	// MuSun is G * M_sun in AU³/day².
	MuSun = GaussianGravitationalConstant * GaussianGravitationalConstant
)

// OrbitalElements holds the in-plane Keplerian elements the resonance
// analysis needs.
type OrbitalElements struct {
	SemiMajorAxis float64 // a - Semi-major axis (AU)
}

// MuForStar returns the gravitational parameter of a star of the given mass
// (in solar masses) in AU³/day².
func MuForStar(massSolar float64) float64 {
	return MuSun * massSolar
}

// GetOrbitalPeriod returns the orbital period in days
func (oe OrbitalElements) GetOrbitalPeriod(mu float64) float64 {
	return 2 * math.Pi / oe.MeanMotion(mu)
}

// MeanMotion returns the mean motion in radians per day.
func (oe OrbitalElements) MeanMotion(mu float64) float64 {
	return math.Sqrt(mu / math.Pow(oe.SemiMajorAxis, 3))
}
