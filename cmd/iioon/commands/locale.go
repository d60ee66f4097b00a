package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate locale catalog consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context())
		},
	}
}

func (c *CLI) newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the catalog's languages and message counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Langs(cmd.Context())
		},
	}
}
