package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/mmrplane/pkg/utils"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the mmrplane configuration",
	}

	cmd.AddCommand(newConfigInitCommand(root))
	cmd.AddCommand(newConfigShowCommand(root))
	return cmd
}

func newConfigInitCommand(root *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to --config, or to
$HOME/.mmrplane/config.yaml when no path is given. An existing file is kept
unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.ConfigFile
			if path == "" {
				var err error
				if path, err = utils.GetConfigPath(); err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return usageError("config file %s already exists (use --force to overwrite)", path)
			}

			written, err := utils.SaveConfig(utils.DefaultConfig(), path)
			if err != nil {
				return err
			}
			root.logger.Info("configuration written", "path", written)
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", written)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFormatter(cmd, root).Write(root.config, func(w io.Writer) error {
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(root.config); err != nil {
					return err
				}
				return enc.Close()
			})
		},
	}
}
