package commands

import (
	"github.com/spf13/cobra"
	"go.iioon.dev/iioon/internal/app"
)

func (c *CLI) newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Materialize the dev shell and print its environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platform, _ := cmd.Flags().GetString("platform")
			enter, _ := cmd.Flags().GetBool("enter")
			noDaemon, _ := cmd.Flags().GetBool("no-daemon")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// --ci is shorthand for linear output.
			if ci {
				outputMode = "linear"
			}

			return c.app.Shell(cmd.Context(), app.ShellOptions{
				Platform:   platform,
				Enter:      enter,
				NoDaemon:   noDaemon,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("platform", "p", "", "Target platform (defaults to the host platform)")
	cmd.Flags().BoolP("enter", "e", false, "Spawn an interactive shell inside the environment")
	cmd.Flags().Bool("no-daemon", false, "Bypass the resolver daemon and resolve locally")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}

func (c *CLI) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the platforms the manifest exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Platforms(cmd.Context())
		},
	}
}
