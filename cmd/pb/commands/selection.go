package commands

import "github.com/spf13/cobra"

func (c *CLI) newSelectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selection <directory>",
		Short: "Print the saved dependency selection of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			return c.app.Selection(cmd.Context(), source, args[0])
		},
	}
	addSourceFlag(cmd)
	return cmd
}
