package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
)

type enumerateOptions struct {
	window  string
	order3  int
	maxInt3 int
	twoBody bool
	order2  int
	maxInt2 int
}

type enumerateOutput struct {
	Window    resonance.Window        `json:"window" yaml:"window"`
	Search    resonance.SearchOptions `json:"search" yaml:"search"`
	ThreeBody []resonance.ThreeBody   `json:"three_body" yaml:"three_body"`
	TwoBodyX  []string                `json:"two_body_x" yaml:"two_body_x"`
	TwoBodyY  []string                `json:"two_body_y" yaml:"two_body_y"`
}

// NewEnumerateCommand creates the enumerate command.
func NewEnumerateCommand(root *RootOptions) *cobra.Command {
	opts := &enumerateOptions{}

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "List the resonances crossing a window of the plane",
		Long: `List every three-body resonance i·n1 + j·n2 + k·n3 = 0 whose curve
y = -k/(i·x + j) crosses the window, followed by the two-body resonances p:q
whose ratio falls inside the x and y ranges.

Flags left unset fall back to the window and search sections of the config.`,
		Example: `  mmrplane enumerate --window 1.1,2.5
  mmrplane enumerate --window 1.4,1.6,1.9,2.1 --order3 1 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.window, "window", "", "window as xmin,xmax,ymin,ymax or min,max")
	cmd.Flags().IntVar(&opts.order3, "order3", 0, "largest |i+j+k|")
	cmd.Flags().IntVar(&opts.maxInt3, "max-int3", 0, "bound on |i|, |j|, |k|")
	cmd.Flags().BoolVar(&opts.twoBody, "two-body", true, "also list two-body resonances")
	cmd.Flags().IntVar(&opts.order2, "order2", 0, "largest p-q")
	cmd.Flags().IntVar(&opts.maxInt2, "max-int2", 0, "bound on p and q")

	return cmd
}

func runEnumerate(cmd *cobra.Command, root *RootOptions, opts *enumerateOptions) error {
	window := root.config.WindowBounds()
	if opts.window != "" {
		w, err := resonance.ParseWindow(opts.window)
		if err != nil {
			return err
		}
		window = w
	}

	search := root.config.SearchOptions()
	flags := cmd.Flags()
	if flags.Changed("order3") {
		search.Order3 = opts.order3
	}
	if flags.Changed("max-int3") {
		search.MaxInt3 = opts.maxInt3
	}
	if flags.Changed("two-body") {
		search.IncludeTwoBody = opts.twoBody
	}
	if flags.Changed("order2") {
		search.Order2 = opts.order2
	}
	if flags.Changed("max-int2") {
		search.MaxInt2 = opts.maxInt2
	}

	set, err := resonance.Enumerate(window, search)
	if err != nil {
		return err
	}
	root.logger.Debug("enumerated", "window", window.String(), "resonances", set.Len())

	out := enumerateOutput{
		Window:    window,
		Search:    search,
		ThreeBody: set.ThreeBody,
		TwoBodyX:  twoBodyStrings(set.TwoBodyX),
		TwoBodyY:  twoBodyStrings(set.TwoBodyY),
	}
	if out.ThreeBody == nil {
		out.ThreeBody = []resonance.ThreeBody{}
	}

	return newFormatter(cmd, root).Write(out, func(w io.Writer) error {
		printf(w, "window: %s\n", window)
		printf(w, "three-body: %d\n", len(out.ThreeBody))
		for _, r := range out.ThreeBody {
			printf(w, "  %s\n", r)
		}
		if !search.IncludeTwoBody {
			return nil
		}
		printf(w, "two-body x: %d\n", len(out.TwoBodyX))
		for _, r := range out.TwoBodyX {
			printf(w, "  %s\n", r)
		}
		printf(w, "two-body y: %d\n", len(out.TwoBodyY))
		for _, r := range out.TwoBodyY {
			printf(w, "  %s\n", r)
		}
		return nil
	})
}

func twoBodyStrings(rs []resonance.TwoBody) []string {
	out := make([]string, len(rs))
	for n, r := range rs {
		out[n] = r.String()
	}
	return out
}
