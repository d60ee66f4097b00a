package commands

import (
	"github.com/spf13/cobra"
	"go.iioon.dev/iioon/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached inputs and environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs, _ := cmd.Flags().GetBool("inputs")
			envs, _ := cmd.Flags().GetBool("envs")

			opts := app.CleanOptions{
				Inputs: inputs,
				Envs:   envs,
			}

			// Without a selection everything goes.
			if !inputs && !envs {
				opts.Inputs = true
				opts.Envs = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("inputs", "i", false, "Remove the input pin cache")
	cmd.Flags().BoolP("envs", "e", false, "Remove the environment cache")

	return cmd
}
