package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/oxygene76/mmrplane/internal/version"
	"github.com/oxygene76/mmrplane/pkg/utils"
)

const appName = "mmrplane"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	ConfigFile string
	Format     string // "text" | "json" | "yaml"; empty uses the config
	LogLevel   string
	Metrics    bool

	config   *utils.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	commands *prometheus.CounterVec
}

// NewRootCommand creates the root command for the mmrplane CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Mean-motion resonances in the period-ratio plane",
		Long: `mmrplane enumerates the three-body and two-body mean-motion resonances
whose curves cross a window of the period-ratio plane, measures the distance
of plane points to those curves, and places the bodies of a planetary system
in the plane to find near-resonant triplets.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Metrics {
				return nil
			}
			return opts.writeMetrics(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default $HOME/.mmrplane/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false, "print collected metrics to stderr on exit")

	cmd.AddCommand(NewEnumerateCommand(opts))
	cmd.AddCommand(NewDistanceCommand(opts))
	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// init loads the configuration, applies the global flags on top of it and
// sets up logging and metrics.
func (o *RootOptions) init(cmd *cobra.Command) error {
	config := utils.DefaultConfig()
	if !skipsConfig(cmd) {
		loaded, err := utils.LoadConfig(o.ConfigFile)
		if err != nil {
			return err
		}
		config = loaded
	}

	if o.Format != "" {
		config.Client.OutputFormat = o.Format
	}
	if !isValidFormat(config.Client.OutputFormat) {
		return usageError("invalid format %q: must be one of %v", config.Client.OutputFormat, ValidFormats)
	}
	if o.LogLevel != "" {
		config.Client.LogLevel = o.LogLevel
	}
	level, err := utils.ParseLogLevel(config.Client.LogLevel)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	o.config = config
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(o.logger)

	o.registry = prometheus.NewRegistry()
	o.commands = promauto.With(o.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: appName,
		Name:      "commands_total",
		Help:      "CLI commands executed.",
	}, []string{"command"})
	o.commands.WithLabelValues(cmd.Name()).Inc()

	return nil
}

// skipsConfig reports whether cmd runs without reading the config file, so
// that a broken file can still be replaced or inspected.
func skipsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "init":
		return true
	}
	return false
}

// writeMetrics prints every gathered metric family to stderr in the
// prometheus text format.
func (o *RootOptions) writeMetrics(cmd *cobra.Command) error {
	families, err := o.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
