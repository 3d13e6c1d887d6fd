package math

import "math"

// Point represents a position in the period-ratio plane.
// X is n_i/n_{i+1} and Y is n_{i+1}/n_{i+2}.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
	}
}

// Distance returns the Euclidean distance to other
func (p Point) Distance(other Point) float64 {
	d := p.Sub(other)
	return math.Hypot(d.X, d.Y)
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
