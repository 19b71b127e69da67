package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [sources...]",
		Short: "Rescan sources and refresh the package catalog",
		Long:  "Rescan the given sources, or every configured source when none is given.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Scan(cmd.Context(), app.ScanOptions{Sources: args})
		},
	}
}
