package resonance

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats"

	astromath "github.com/oxygene76/mmrplane/pkg/astronomy/math"
)

// Method names the strategy that produced a DistanceResult.
type Method string

const (
	// MethodHalley means the Halley iteration converged.
	MethodHalley Method = "halley"
	// MethodGrid means the iteration was abandoned for the grid search.
	MethodGrid Method = "grid"
)

// DistanceResult is the minimum distance from a point to a resonance curve
// and the curve point (X, Y) that achieves it.
type DistanceResult struct {
	Distance   float64 `json:"distance" yaml:"distance"`
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	Method     Method  `json:"method" yaml:"method"`
	Iterations int     `json:"iterations" yaml:"iterations"`
	Restarts   int     `json:"restarts" yaml:"restarts"`
}

// Nearest returns the curve point as a Point.
func (d DistanceResult) Nearest() astromath.Point {
	return astromath.Point{X: d.X, Y: d.Y}
}

// solverState tracks how often the iteration has jumped across the
// asymptote.
type solverState int

const (
	stateSearching solverState = iota
	// stateRestarted: one crossing seen, iteration restarted.
	stateRestarted
	// stateWatching: a second crossing was recorded; seeing it again means
	// the restarts are cycling.
	stateWatching
	stateNonConvergent
)

// crossing advances the state machine after the iterate landed on the far
// side of the asymptote at x.
func (s solverState) crossing(x, stuckX float64) (solverState, float64) {
	switch s {
	case stateSearching:
		return stateRestarted, stuckX
	case stateRestarted:
		return stateWatching, x
	case stateWatching:
		if x == stuckX {
			return stateNonConvergent, stuckX
		}
		return stateWatching, stuckX
	default:
		return s, stuckX
	}
}

// MinDistance returns the minimum Euclidean distance from p to the left
// branch of the curve of r (the branch x < -j/i).
//
// The stationarity condition of the squared distance,
//
//	g(x) = -2·nx + 2x + 2·y³·(i/k) - 2·ny·y²·(i/k),  y = -k/(i·x + j),
//
// is solved with Halley's method from x0 = nx - 0.5. Whenever an iterate
// lands at or beyond the asymptote (j ≠ 0), the iteration restarts just left
// of it. If those restarts cycle, the iteration exceeds opts.MaxIterations,
// or an iterate stops being finite, the answer comes from a uniform grid of
// opts.FallbackSamples points over [1, -j/i - 1e-5] instead.
//
// Numerical trouble is never reported as an error; only invalid input
// (a degenerate triple, a non-positive tolerance or a non-finite point) is.
func MinDistance(p astromath.Point, r ThreeBody, opts DistanceOptions) (DistanceResult, error) {
	if err := r.Validate(); err != nil {
		return DistanceResult{}, err
	}
	if err := opts.Validate(); err != nil {
		return DistanceResult{}, err
	}
	if !p.IsFinite() {
		return DistanceResult{}, errorsmod.Wrapf(ErrInvalidPoint, "(%g, %g)", p.X, p.Y)
	}
	return minDistance(p, r, opts.withDefaults()), nil
}

// MinDistances applies MinDistance to every (xs[n], ys[n]) pair and
// returns the results in input order.
func MinDistances(xs, ys []float64, r ThreeBody, opts DistanceOptions) ([]DistanceResult, error) {
	if len(xs) != len(ys) {
		return nil, errorsmod.Wrapf(ErrShapeMismatch, "got %d x values and %d y values", len(xs), len(ys))
	}

	points := make([]astromath.Point, len(xs))
	for n := range xs {
		points[n] = astromath.Point{X: xs[n], Y: ys[n]}
	}
	return MinDistancePoints(points, r, opts)
}

// MinDistancePoints is MinDistances for points already paired up.
func MinDistancePoints(points []astromath.Point, r ThreeBody, opts DistanceOptions) ([]DistanceResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for n, p := range points {
		if !p.IsFinite() {
			return nil, errorsmod.Wrapf(ErrInvalidPoint, "point %d: (%g, %g)", n, p.X, p.Y)
		}
	}
	opts = opts.withDefaults()

	results := make([]DistanceResult, len(points))
	for n, p := range points {
		results[n] = minDistance(p, r, opts)
	}
	return results, nil
}

func minDistance(p astromath.Point, r ThreeBody, opts DistanceOptions) DistanceResult {
	x, iterations, restarts, ok := halley(p, r, opts)
	if ok {
		y := r.Value(x)
		d := p.Distance(astromath.Point{X: x, Y: y})
		if !math.IsNaN(d) && !math.IsInf(d, 0) {
			return DistanceResult{
				Distance:   d,
				X:          x,
				Y:          y,
				Method:     MethodHalley,
				Iterations: iterations,
				Restarts:   restarts,
			}
		}
	}

	res := gridSearch(p, r, opts.FallbackSamples)
	res.Iterations = iterations
	res.Restarts = restarts
	return res
}

// halley runs the iteration and reports the converged abscissa. ok is
// false when the solver declared non-convergence.
func halley(p astromath.Point, r ThreeBody, opts DistanceOptions) (x float64, iterations, restarts int, ok bool) {
	ac := float64(r.I) / float64(r.K)
	ac2 := ac * ac
	ac3 := ac * ac2

	sing := r.Singularity()
	guarded := r.J != 0

	x = p.X - startOffset
	state := stateSearching
	stuckX := 0.0

	for iterations < opts.MaxIterations {
		y := r.Value(x)
		if !finite(x) || !finite(y) {
			return x, iterations, restarts, false
		}
		iterations++

		y2 := y * y
		y3 := y2 * y
		y4 := y3 * y
		y5 := y4 * y

		g := -2*p.X + 2*x + 2*y3*ac - 2*p.Y*y2*ac
		dg := 2 + 6*ac2*y4 - 4*ac2*p.Y*y3
		d2g := 24*ac3*y5 - 12*p.Y*ac3*y4

		dx := 2 * g * dg / (2*dg*dg - g*d2g)
		if !finite(dx) {
			return x, iterations, restarts, false
		}
		x -= dx

		// only the branch left of the asymptote is measured
		if guarded && x >= sing {
			state, stuckX = state.crossing(x, stuckX)
			if state == stateNonConvergent {
				return x, iterations, restarts, false
			}
			restarts++
			x = sing - restartOffset
			continue
		}

		if math.Abs(dx) <= opts.Tolerance {
			return x, iterations, restarts, true
		}
	}
	return x, iterations, restarts, false
}

// gridSearch samples the left branch uniformly between x = 1 and the
// asymptote and returns the closest sample.
func gridSearch(p astromath.Point, r ThreeBody, samples int) DistanceResult {
	xs := Linspace(fallbackStart, r.Singularity()-fallbackMargin, samples)

	// squared distances overflow for far points
	dist := make([]float64, len(xs))
	for n, x := range xs {
		v := p.Distance(astromath.Point{X: x, Y: r.Value(x)})
		if math.IsNaN(v) {
			v = math.Inf(1)
		}
		dist[n] = v
	}

	best := floats.MinIdx(dist)
	x := xs[best]
	return DistanceResult{
		Distance: dist[best],
		X:        x,
		Y:        r.Value(x),
		Method:   MethodGrid,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
