// Package analysis places the bodies of a planetary system in the
// three-body resonance plane and measures how close each consecutive
// triplet lies to the resonances crossing the configured window.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/oxygene76/mmrplane/internal/types"
	"github.com/oxygene76/mmrplane/internal/version"
	astromath "github.com/oxygene76/mmrplane/pkg/astronomy/math"
	"github.com/oxygene76/mmrplane/pkg/astronomy/plane"
	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
	"github.com/oxygene76/mmrplane/pkg/compute"
	"github.com/oxygene76/mmrplane/pkg/utils"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

var tracer = otel.Tracer("mmrplane.analysis")

// Manager handles all analysis operations
type Manager struct {
	config  *utils.Config
	jobs    *compute.JobManager
	metrics *Metrics
	logger  *slog.Logger
}

// NewManager creates a new analysis manager. Collectors are registered with
// reg; a nil reg leaves them unregistered. A nil logger uses slog.Default.
func NewManager(config *utils.Config, reg prometheus.Registerer, logger *slog.Logger) (*Manager, error) {
	if config == nil {
		config = utils.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	jobs, err := compute.NewJobManager(config.Analysis.MaxConcurrent)
	if err != nil {
		return nil, fmt.Errorf("failed to create job manager: %w", err)
	}

	return &Manager{
		config:  config,
		jobs:    jobs,
		metrics: NewMetrics(reg),
		logger:  logger.With("component", "analysis"),
	}, nil
}

// AnalyzeSystem sorts the bodies by period, builds one plane point per
// consecutive triplet and finds the nearest three-body resonance of each
// point among those crossing the configured window.
func (m *Manager) AnalyzeSystem(ctx context.Context, system types.PlanetarySystem) (*types.AnalysisResult, error) {
	ctx, span := tracer.Start(ctx, "Manager.AnalyzeSystem",
		trace.WithAttributes(
			attribute.String("system.name", system.Name),
			attribute.Int("system.bodies", len(system.Bodies)),
		),
	)
	defer span.End()

	start := time.Now()
	result, err := m.analyze(ctx, system)
	m.metrics.analysisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		m.metrics.analyses.WithLabelValues(StatusFailed).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.logger.Warn("analysis failed", "system", system.Name, "error", err)
		return nil, err
	}

	result.Duration = time.Since(start)
	m.metrics.analyses.WithLabelValues(StatusCompleted).Inc()
	span.SetAttributes(
		attribute.Int("analysis.triplets", result.Summary.Triplets),
		attribute.Int("analysis.near_resonant", result.Summary.NearResonant),
		attribute.Int("analysis.grid_fallbacks", result.Summary.GridFallbacks),
	)
	m.logger.Info("analysis completed",
		"system", system.Name,
		"resonances", result.Summary.Resonances,
		"triplets", result.Summary.Triplets,
		"near_resonant", result.Summary.NearResonant,
		"duration", result.Duration,
	)
	return result, nil
}

func (m *Manager) analyze(ctx context.Context, system types.PlanetarySystem) (*types.AnalysisResult, error) {
	periods, err := m.resolvePeriods(system)
	if err != nil {
		return nil, err
	}

	order, err := plane.SortedOrder(periods)
	if err != nil {
		return nil, err
	}
	points, err := plane.Points(periods)
	if err != nil {
		return nil, err
	}
	ratios, err := plane.ConsecutiveRatios(periods)
	if err != nil {
		return nil, err
	}

	window := m.config.WindowBounds()
	set, err := resonance.Enumerate(window, m.config.SearchOptions())
	if err != nil {
		return nil, err
	}
	m.metrics.resonances.Set(float64(len(set.ThreeBody)))
	m.logger.Debug("resonances enumerated",
		"window", window.String(),
		"three_body", len(set.ThreeBody),
		"two_body_x", len(set.TwoBodyX),
		"two_body_y", len(set.TwoBodyY),
	)

	nearest, err := compute.Map(ctx, m.jobs, len(points), func(ctx context.Context, n int) (*types.ResonanceDistance, error) {
		return m.nearestResonance(ctx, points[n], set.ThreeBody)
	})
	if err != nil {
		return nil, err
	}

	name := func(n int) string {
		b := system.Bodies[order[n]]
		if b.Name != "" {
			return b.Name
		}
		return fmt.Sprintf("#%d", order[n]+1)
	}

	threshold := m.config.Analysis.NearThreshold
	result := &types.AnalysisResult{
		ID:     uuid.NewString(),
		System: system.Name,
		Status: StatusCompleted,
		Window: window,
		Search: m.config.SearchOptions(),
		Metadata: types.AnalysisMetadata{
			NearThreshold: threshold,
			MaxConcurrent: m.jobs.Workers(),
			Tolerance:     m.config.DistanceOptions().Tolerance,
			Version:       version.Version,
		},
		Timestamp: time.Now().UTC(),
	}

	twoBody := mergeTwoBody(set.TwoBodyX, set.TwoBodyY)
	for n, r := range ratios {
		pair := types.PairRatio{Inner: name(n), Outer: name(n + 1), Ratio: r}
		for _, tb := range twoBody {
			if math.Abs(r-tb.Ratio()) <= threshold {
				pair.NearTwoBody = append(pair.NearTwoBody, tb.String())
			}
		}
		result.Ratios = append(result.Ratios, pair)
	}

	for n, p := range points {
		triplet := types.TripletResult{
			Bodies:   [3]string{name(n), name(n + 1), name(n + 2)},
			X:        p.X,
			Y:        p.Y,
			InWindow: window.ContainsX(p.X) && window.ContainsY(p.Y),
			Nearest:  nearest[n],
		}
		if triplet.Nearest != nil && triplet.Nearest.Distance <= threshold {
			triplet.Near = true
			m.metrics.nearResonant.Inc()
			m.logger.Info("near-resonant triplet",
				"bodies", triplet.Bodies,
				"resonance", triplet.Nearest.Resonance.String(),
				"distance", triplet.Nearest.Distance,
			)
		}
		result.Triplets = append(result.Triplets, triplet)
	}

	result.Summary = summarize(result.Triplets, len(set.ThreeBody))
	return result, nil
}

// resolvePeriods returns the period of every body, deriving it from the
// semi-major axis when no period is given.
func (m *Manager) resolvePeriods(system types.PlanetarySystem) ([]float64, error) {
	starMass := system.StarMass
	if starMass == 0 {
		starMass = m.config.Analysis.StarMass
	}

	periods := system.Periods()
	for n, b := range system.Bodies {
		if b.Period != 0 || b.SemiMajorAxis == 0 {
			continue
		}
		derived, err := plane.PeriodsFromSemiMajorAxes([]float64{b.SemiMajorAxis}, starMass)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "body %q", b.Name)
		}
		periods[n] = derived[0]
	}
	return periods, nil
}

// nearestResonance measures p against every resonance and keeps the
// closest. It returns nil when there are no resonances.
func (m *Manager) nearestResonance(ctx context.Context, p astromath.Point, resonances []resonance.ThreeBody) (*types.ResonanceDistance, error) {
	var best *types.ResonanceDistance
	opts := m.config.DistanceOptions()

	for _, r := range resonances {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d, err := resonance.MinDistance(p, r, opts)
		if err != nil {
			return nil, err
		}
		m.metrics.distanceEvaluations.WithLabelValues(string(d.Method)).Inc()
		if d.Method == resonance.MethodGrid {
			m.logger.Debug("grid fallback", "point", p, "resonance", r.String(), "restarts", d.Restarts)
		}

		if best == nil || d.Distance < best.Distance {
			best = &types.ResonanceDistance{
				Resonance: r,
				Distance:  d.Distance,
				X:         d.X,
				Y:         d.Y,
				Method:    d.Method,
			}
		}
	}
	return best, nil
}

// mergeTwoBody returns the union of the x and y two-body sets, x first.
func mergeTwoBody(xs, ys []resonance.TwoBody) []resonance.TwoBody {
	seen := make(map[resonance.TwoBody]bool, len(xs)+len(ys))
	var out []resonance.TwoBody
	for _, list := range [][]resonance.TwoBody{xs, ys} {
		for _, r := range list {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

func summarize(triplets []types.TripletResult, resonances int) types.AnalysisSummary {
	summary := types.AnalysisSummary{
		Resonances: resonances,
		Triplets:   len(triplets),
	}

	var distances []float64
	for _, t := range triplets {
		if t.Nearest == nil {
			continue
		}
		distances = append(distances, t.Nearest.Distance)
		if t.Near {
			summary.NearResonant++
		}
		if t.Nearest.Method == resonance.MethodGrid {
			summary.GridFallbacks++
		}
	}
	if len(distances) == 0 {
		return summary
	}

	summary.MeanDistance = stat.Mean(distances, nil)
	summary.MinDistance = floats.Min(distances)
	if len(distances) > 1 {
		summary.StdDevDistance = stat.StdDev(distances, nil)
	}
	return summary
}
