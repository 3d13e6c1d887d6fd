package types

import (
	"time"

	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
)

// Body is one orbiting body of a planetary system
type Body struct {
	Name          string  `json:"name" yaml:"name"`
	Period        float64 `json:"period" yaml:"period"`                                       // days
	SemiMajorAxis float64 `json:"semi_major_axis,omitempty" yaml:"semi_major_axis,omitempty"` // AU
}

// PlanetarySystem is the input of a resonance analysis
type PlanetarySystem struct {
	Name     string  `json:"name" yaml:"name"`
	StarMass float64 `json:"star_mass" yaml:"star_mass"` // solar masses
	Bodies   []Body  `json:"bodies" yaml:"bodies"`
}

// Periods returns the body periods in input order.
func (s PlanetarySystem) Periods() []float64 {
	periods := make([]float64, len(s.Bodies))
	for n, b := range s.Bodies {
		periods[n] = b.Period
	}
	return periods
}

// AnalysisResult represents the result of a system analysis
type AnalysisResult struct {
	ID        string                  `json:"id" yaml:"id"`
	System    string                  `json:"system" yaml:"system"`
	Status    string                  `json:"status" yaml:"status"`
	Window    resonance.Window        `json:"window" yaml:"window"`
	Search    resonance.SearchOptions `json:"search" yaml:"search"`
	Ratios    []PairRatio             `json:"ratios" yaml:"ratios"`
	Triplets  []TripletResult         `json:"triplets" yaml:"triplets"`
	Summary   AnalysisSummary         `json:"summary" yaml:"summary"`
	Metadata  AnalysisMetadata        `json:"metadata" yaml:"metadata"`
	Timestamp time.Time               `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration           `json:"duration" yaml:"duration"`
}

// PairRatio is the period ratio of two adjacent bodies and the two-body
// commensurabilities it lies close to.
type PairRatio struct {
	Inner       string   `json:"inner" yaml:"inner"`
	Outer       string   `json:"outer" yaml:"outer"`
	Ratio       float64  `json:"ratio" yaml:"ratio"`
	NearTwoBody []string `json:"near_two_body,omitempty" yaml:"near_two_body,omitempty"`
}

// TripletResult holds the resonance-plane position of three consecutive
// bodies and their nearest three-body resonance.
type TripletResult struct {
	Bodies   [3]string          `json:"bodies" yaml:"bodies"`
	X        float64            `json:"x" yaml:"x"`
	Y        float64            `json:"y" yaml:"y"`
	InWindow bool               `json:"in_window" yaml:"in_window"`
	Nearest  *ResonanceDistance `json:"nearest,omitempty" yaml:"nearest,omitempty"`
	Near     bool               `json:"near_resonant" yaml:"near_resonant"`
}

// ResonanceDistance is the distance from a plane point to one resonance curve
type ResonanceDistance struct {
	Resonance resonance.ThreeBody `json:"resonance" yaml:"resonance"`
	Distance  float64             `json:"distance" yaml:"distance"`
	X         float64             `json:"x" yaml:"x"`
	Y         float64             `json:"y" yaml:"y"`
	Method    resonance.Method    `json:"method" yaml:"method"`
}

// AnalysisSummary aggregates the triplet distances. GridFallbacks counts
// triplets whose nearest distance came from the grid search.
type AnalysisSummary struct {
	Resonances     int     `json:"resonances" yaml:"resonances"`
	Triplets       int     `json:"triplets" yaml:"triplets"`
	NearResonant   int     `json:"near_resonant" yaml:"near_resonant"`
	MeanDistance   float64 `json:"mean_distance" yaml:"mean_distance"`
	StdDevDistance float64 `json:"stddev_distance" yaml:"stddev_distance"`
	MinDistance    float64 `json:"min_distance" yaml:"min_distance"`
	GridFallbacks  int     `json:"grid_fallbacks" yaml:"grid_fallbacks"`
}

// AnalysisMetadata contains metadata about the analysis
type AnalysisMetadata struct {
	NearThreshold float64 `json:"near_threshold" yaml:"near_threshold"`
	MaxConcurrent int     `json:"max_concurrent" yaml:"max_concurrent"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`
	Version       string  `json:"version" yaml:"version"`
}
