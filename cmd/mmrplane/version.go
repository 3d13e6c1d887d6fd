package main

import (
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oxygene76/mmrplane/internal/version"
)

type versionOutput struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mmrplane version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := versionOutput{Version: version.Version, GoVersion: runtime.Version()}
			return newFormatter(cmd, root).Write(out, func(w io.Writer) error {
				printf(w, "%s %s (%s)\n", appName, out.Version, out.GoVersion)
				return nil
			})
		},
	}
}
