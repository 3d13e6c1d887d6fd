package analysis

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxygene76/mmrplane/internal/types"
	"github.com/oxygene76/mmrplane/pkg/astronomy/plane"
	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
	"github.com/oxygene76/mmrplane/pkg/utils"
)

func newTestManager(t *testing.T, threshold float64) (*Manager, *prometheus.Registry) {
	t.Helper()
	cfg := utils.DefaultConfig()
	cfg.Analysis.NearThreshold = threshold
	cfg.Analysis.MaxConcurrent = 2

	reg := prometheus.NewRegistry()
	m, err := NewManager(cfg, reg, nil)
	require.NoError(t, err)
	return m, reg
}

func TestAnalyzeSystem_Galilean(t *testing.T) {
	m, _ := newTestManager(t, 0.01)

	result, err := m.AnalyzeSystem(context.Background(), types.PlanetarySystem{
		Name: "Jupiter",
		Bodies: []types.Body{
			{Name: "Ganymede", Period: 7.15455296},
			{Name: "Io", Period: 1.769137786},
			{Name: "Europa", Period: 3.551181041},
		},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(result.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, result.Status)

	require.Len(t, result.Triplets, 1)
	triplet := result.Triplets[0]
	assert.Equal(t, [3]string{"Io", "Europa", "Ganymede"}, triplet.Bodies)
	assert.InDelta(t, 2.0072948, triplet.X, 1e-6)
	assert.InDelta(t, 2.0146968, triplet.Y, 1e-6)
	assert.True(t, triplet.InWindow)

	require.NotNil(t, triplet.Nearest)
	assert.Equal(t, resonance.ThreeBody{I: 1, J: -3, K: 2}, triplet.Nearest.Resonance)
	assert.InDelta(t, 0, triplet.Nearest.Distance, 1e-6)
	assert.Equal(t, resonance.MethodHalley, triplet.Nearest.Method)
	assert.True(t, triplet.Near)

	require.Len(t, result.Ratios, 2)
	assert.Equal(t, "Io", result.Ratios[0].Inner)
	assert.Equal(t, "Europa", result.Ratios[0].Outer)
	assert.Equal(t, []string{"2:1"}, result.Ratios[0].NearTwoBody)
	assert.Empty(t, result.Ratios[1].NearTwoBody, "Europa-Ganymede is 0.015 away from 2:1")
}

func TestAnalyzeSystem_Summary(t *testing.T) {
	m, reg := newTestManager(t, 0.005)

	result, err := m.AnalyzeSystem(context.Background(), types.PlanetarySystem{
		Name: "synthetic",
		Bodies: []types.Body{
			{Name: "c", Period: 4},
			{Name: "a", Period: 1},
			{Name: "e", Period: 8.5},
			{Name: "b", Period: 2},
			{Name: "d", Period: 6},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Triplets, 3)

	want := []resonance.ThreeBody{{I: 1, J: -3, K: 2}, {I: 1, J: -4, K: 3}, {I: 3, J: -8, K: 5}}
	for n, triplet := range result.Triplets {
		require.NotNil(t, triplet.Nearest)
		assert.Equal(t, want[n], triplet.Nearest.Resonance, "triplet %d", n)
	}
	assert.Equal(t, [3]string{"c", "d", "e"}, result.Triplets[2].Bodies)
	assert.True(t, result.Triplets[0].Near)
	assert.True(t, result.Triplets[1].Near)
	assert.False(t, result.Triplets[2].Near)
	assert.InDelta(t, 0.0075527, result.Triplets[2].Nearest.Distance, 1e-6)

	assert.Equal(t, []string{"2:1"}, result.Ratios[0].NearTwoBody)
	assert.Equal(t, []string{"3:2"}, result.Ratios[2].NearTwoBody)
	assert.Empty(t, result.Ratios[3].NearTwoBody)

	s := result.Summary
	assert.Equal(t, 27, s.Resonances)
	assert.Equal(t, 3, s.Triplets)
	assert.Equal(t, 2, s.NearResonant)
	assert.Zero(t, s.GridFallbacks)
	assert.InDelta(t, 0, s.MinDistance, 1e-6)
	assert.InDelta(t, 0.0025176, s.MeanDistance, 1e-6)
	assert.InDelta(t, 0.0043605, s.StdDevDistance, 1e-6)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.analyses.WithLabelValues(StatusCompleted)))
	assert.Equal(t, 27.0, testutil.ToFloat64(m.metrics.resonances))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.metrics.nearResonant))
	assert.Equal(t, 81.0, testutil.ToFloat64(m.metrics.distanceEvaluations.WithLabelValues(string(resonance.MethodHalley))))

	count, err := testutil.GatherAndCount(reg, "mmrplane_analysis_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAnalyzeSystem_SemiMajorAxes(t *testing.T) {
	m, _ := newTestManager(t, 0.01)

	result, err := m.AnalyzeSystem(context.Background(), types.PlanetarySystem{
		Name:     "axes",
		StarMass: 0.5,
		Bodies: []types.Body{
			{Name: "inner", SemiMajorAxis: 1},
			{Name: "middle", SemiMajorAxis: 1.5874010519681994},
			{Name: "outer", SemiMajorAxis: 2.5198420997897464},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Triplets, 1)

	// a^(3/2) doubling gives period ratios of 2
	assert.InDelta(t, 2, result.Triplets[0].X, 1e-9)
	assert.InDelta(t, 2, result.Triplets[0].Y, 1e-9)
	assert.Equal(t, resonance.ThreeBody{I: 1, J: -3, K: 2}, result.Triplets[0].Nearest.Resonance)
}

func TestAnalyzeSystem_OutsideWindow(t *testing.T) {
	m, _ := newTestManager(t, 0.01)

	result, err := m.AnalyzeSystem(context.Background(), types.PlanetarySystem{
		Bodies: []types.Body{{Period: 1}, {Period: 5}, {Period: 30}},
	})
	require.NoError(t, err)

	triplet := result.Triplets[0]
	assert.False(t, triplet.InWindow)
	assert.Equal(t, [3]string{"#1", "#2", "#3"}, triplet.Bodies)
	require.NotNil(t, triplet.Nearest)
	assert.Equal(t, resonance.ThreeBody{I: 1, J: -6, K: 5}, triplet.Nearest.Resonance)
	assert.InDelta(t, 0.1650701, triplet.Nearest.Distance, 1e-6)
	assert.False(t, triplet.Near)
}

func TestAnalyzeSystem_Errors(t *testing.T) {
	m, _ := newTestManager(t, 0.01)

	_, err := m.AnalyzeSystem(context.Background(), types.PlanetarySystem{
		Bodies: []types.Body{{Period: 1}, {Period: 2}},
	})
	assert.ErrorIs(t, err, plane.ErrTooFewBodies)

	_, err = m.AnalyzeSystem(context.Background(), types.PlanetarySystem{
		Bodies: []types.Body{{Period: 1}, {Period: 2}, {Name: "ghost"}},
	})
	assert.ErrorIs(t, err, plane.ErrInvalidPeriod)

	_, err = m.AnalyzeSystem(context.Background(), types.PlanetarySystem{
		StarMass: -1,
		Bodies:   []types.Body{{Period: 1}, {Period: 2}, {SemiMajorAxis: 3}},
	})
	assert.ErrorIs(t, err, plane.ErrInvalidStarMass)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.AnalyzeSystem(ctx, types.PlanetarySystem{
		Bodies: []types.Body{{Period: 1}, {Period: 2}, {Period: 4}},
	})
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.metrics.analyses.WithLabelValues(StatusFailed)))
}

func TestNewManager_Defaults(t *testing.T) {
	m, err := NewManager(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultConfig().Analysis.MaxConcurrent, m.jobs.Workers())
}
