package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/app"
)

func (c *CLI) newResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List the setup resources found by the last scan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			return c.app.Resources(cmd.Context(), app.ResourcesOptions{Source: source})
		},
	}
	addSourceFlag(cmd)
	return cmd
}
