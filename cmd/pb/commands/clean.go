package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [archive]",
		Short: "Delete archives, build records and cached catalog data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			archives, _ := cmd.Flags().GetBool("archives")
			records, _ := cmd.Flags().GetBool("records")
			cache, _ := cmd.Flags().GetBool("cache")

			opts := app.CleanOptions{
				Source:  source,
				All:     archives,
				Records: records,
				Cache:   cache,
			}
			if len(args) == 1 {
				opts.Archive = args[0]
			}

			// Default behavior: clean derived workspace state
			if opts.Archive == "" && !opts.All && !opts.Records && !opts.Cache {
				opts.Records = true
				opts.Cache = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	addSourceFlag(cmd)
	cmd.Flags().BoolP("archives", "a", false, "Delete every archive in the source build directory")
	cmd.Flags().BoolP("records", "r", false, "Delete build records")
	cmd.Flags().BoolP("cache", "c", false, "Delete the catalog cache")

	return cmd
}
