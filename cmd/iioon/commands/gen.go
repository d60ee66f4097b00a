package commands

import (
	"github.com/spf13/cobra"
	"go.iioon.dev/iioon/internal/app"
)

func (c *CLI) newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate typed accessors from the locale catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			pkg, _ := cmd.Flags().GetString("package")
			output, _ := cmd.Flags().GetString("output")

			return c.app.Generate(cmd.Context(), app.GenOptions{
				Watch:   watch,
				Package: pkg,
				Output:  output,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Keep running and regenerate when locale files change")
	cmd.Flags().String("package", "", "Package name of the generated file")
	cmd.Flags().StringP("output", "o", "", "Output path relative to the project root")
	return cmd
}
