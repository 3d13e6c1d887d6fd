package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxygene76/mmrplane/internal/types"
	"github.com/oxygene76/mmrplane/pkg/analysis"
)

type analyzeOptions struct {
	name     string
	bodies   []string
	periods  []float64
	axes     []float64
	starMass float64
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(root *RootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Find near-resonant triplets of a planetary system",
		Long: `Sort the bodies by period, place every consecutive triplet in the
period-ratio plane and report the nearest three-body resonance crossing the
configured window. Adjacent pairs are checked against the two-body
resonances of the same window.

Bodies are given either by period (days) or by semi-major axis (AU), in
which case the periods follow from Kepler's third law around a star of
--star-mass solar masses.`,
		Example: `  mmrplane analyze --name Jupiter --bodies Io,Europa,Ganymede --periods 1.769138,3.551181,7.154553
  mmrplane analyze --axes 0.0115,0.0158,0.0223,0.0293 --star-mass 0.089`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "system name")
	cmd.Flags().StringSliceVar(&opts.bodies, "bodies", nil, "body names, in the order of --periods or --axes")
	cmd.Flags().Float64SliceVar(&opts.periods, "periods", nil, "orbital periods in days")
	cmd.Flags().Float64SliceVar(&opts.axes, "axes", nil, "semi-major axes in AU")
	cmd.Flags().Float64Var(&opts.starMass, "star-mass", 0, "stellar mass in solar masses (default from config)")
	cmd.MarkFlagsMutuallyExclusive("periods", "axes")
	cmd.MarkFlagsOneRequired("periods", "axes")

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *RootOptions, opts *analyzeOptions) error {
	system, err := opts.system()
	if err != nil {
		return err
	}

	manager, err := analysis.NewManager(root.config, root.registry, root.logger)
	if err != nil {
		return err
	}

	result, err := manager.AnalyzeSystem(cmd.Context(), system)
	if err != nil {
		return err
	}

	return newFormatter(cmd, root).Write(result, func(w io.Writer) error {
		writeAnalysisText(w, result)
		return nil
	})
}

func (o *analyzeOptions) system() (types.PlanetarySystem, error) {
	values := o.periods
	if len(o.axes) > 0 {
		values = o.axes
	}
	if len(o.bodies) > 0 && len(o.bodies) != len(values) {
		return types.PlanetarySystem{}, usageError("got %d body names for %d bodies", len(o.bodies), len(values))
	}

	system := types.PlanetarySystem{Name: o.name, StarMass: o.starMass}
	for n, v := range values {
		body := types.Body{}
		if len(o.bodies) > 0 {
			body.Name = o.bodies[n]
		}
		if len(o.axes) > 0 {
			body.SemiMajorAxis = v
		} else {
			body.Period = v
		}
		system.Bodies = append(system.Bodies, body)
	}
	return system, nil
}

func writeAnalysisText(w io.Writer, result *types.AnalysisResult) {
	if result.System != "" {
		printf(w, "system: %s\n", result.System)
	}
	printf(w, "window: %s (%d three-body resonances)\n", result.Window, result.Summary.Resonances)

	printf(w, "pairs:\n")
	for _, p := range result.Ratios {
		printf(w, "  %s/%s  %.6f", p.Inner, p.Outer, p.Ratio)
		if len(p.NearTwoBody) > 0 {
			printf(w, "  near %s", strings.Join(p.NearTwoBody, ", "))
		}
		printf(w, "\n")
	}

	printf(w, "triplets:\n")
	for _, t := range result.Triplets {
		printf(w, "  %s  (%.6f, %.6f)", strings.Join(t.Bodies[:], ", "), t.X, t.Y)
		if !t.InWindow {
			printf(w, "  outside window")
		}
		if t.Nearest != nil {
			printf(w, "  nearest %s at %.6f [%s]", t.Nearest.Resonance, t.Nearest.Distance, t.Nearest.Method)
		}
		if t.Near {
			printf(w, "  NEAR")
		}
		printf(w, "\n")
	}

	s := result.Summary
	printf(w, "summary: %d triplets, %d near-resonant, mean distance %.6f, stddev %.6f\n",
		s.Triplets, s.NearResonant, s.MeanDistance, s.StdDevDistance)
}
