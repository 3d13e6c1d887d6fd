package main

import (
	"io"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cobra"

	astromath "github.com/oxygene76/mmrplane/pkg/astronomy/math"
	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
)

type distanceOptions struct {
	resonance string
	points    []string
	tolerance float64
	coords    bool
}

type distanceOutput struct {
	Resonance resonance.ThreeBody `json:"resonance" yaml:"resonance"`
	Results   []pointDistance     `json:"results" yaml:"results"`
}

type pointDistance struct {
	Point                    astromath.Point `json:"point" yaml:"point"`
	resonance.DistanceResult `yaml:",inline"`
}

// NewDistanceCommand creates the distance command.
func NewDistanceCommand(root *RootOptions) *cobra.Command {
	opts := &distanceOptions{}

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Measure the distance from plane points to a resonance curve",
		Long: `Compute the minimum Euclidean distance from each point to the branch of
the curve y = -k/(i·x + j) left of its asymptote x = -j/i.`,
		Example: `  mmrplane distance --resonance 2,-5,3 --point 2,1.2
  mmrplane distance --resonance 1,-3,2 --point 2.007,2.015 --point 1.5,1.5 --coords`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.resonance, "resonance", "", "resonance as i,j,k")
	cmd.Flags().StringArrayVar(&opts.points, "point", nil, "point as x,y (repeatable)")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0, "solver tolerance (default from config)")
	cmd.Flags().BoolVar(&opts.coords, "coords", false, "print the nearest curve point")
	_ = cmd.MarkFlagRequired("resonance")
	_ = cmd.MarkFlagRequired("point")

	return cmd
}

func runDistance(cmd *cobra.Command, root *RootOptions, opts *distanceOptions) error {
	r, err := resonance.ParseThreeBody(opts.resonance)
	if err != nil {
		return err
	}

	points := make([]astromath.Point, len(opts.points))
	for n, s := range opts.points {
		if points[n], err = parsePoint(s); err != nil {
			return err
		}
	}

	solver := root.config.DistanceOptions()
	if cmd.Flags().Changed("tolerance") {
		solver.Tolerance = opts.tolerance
	}

	results, err := resonance.MinDistancePoints(points, r, solver)
	if err != nil {
		return err
	}

	out := distanceOutput{Resonance: r}
	for n, res := range results {
		if res.Method == resonance.MethodGrid {
			root.logger.Debug("grid fallback", "point", points[n], "restarts", res.Restarts)
		}
		out.Results = append(out.Results, pointDistance{Point: points[n], DistanceResult: res})
	}

	return newFormatter(cmd, root).Write(out, func(w io.Writer) error {
		printf(w, "resonance: %s\n", r)
		for _, pd := range out.Results {
			printf(w, "point (%g, %g): distance %.6f", pd.Point.X, pd.Point.Y, pd.Distance)
			if opts.coords {
				printf(w, " at (%.6f, %.6f)", pd.X, pd.Y)
			}
			printf(w, " [%s]\n", pd.Method)
		}
		return nil
	})
}

func parsePoint(s string) (astromath.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return astromath.Point{}, errorsmod.Wrapf(resonance.ErrInvalidPoint, "expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return astromath.Point{}, errorsmod.Wrapf(resonance.ErrInvalidPoint, "x %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return astromath.Point{}, errorsmod.Wrapf(resonance.ErrInvalidPoint, "y %q: %v", parts[1], err)
	}
	return astromath.Point{X: x, Y: y}, nil
}
