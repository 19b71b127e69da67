package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rescan a source whenever its files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			return c.app.Watch(cmd.Context(), app.WatchOptions{Source: source})
		},
	}
	addSourceFlag(cmd)
	return cmd
}
