package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/app"
	"go.trai.ch/pb/internal/core/domain"
)

func (c *CLI) newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <directory>",
		Short: "Show how the dependencies of a package resolve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			sel, err := selectionFlag(cmd)
			if err != nil {
				return err
			}

			return c.app.Preview(cmd.Context(), app.PreviewOptions{
				Source:    source,
				Directory: args[0],
				Selection: sel,
			})
		},
	}
	addSourceFlag(cmd)
	addSelectionFlag(cmd)
	return cmd
}

func addSelectionFlag(cmd *cobra.Command) {
	cmd.Flags().StringArray("select", nil, "Pin a dependency as name=hash:directory (repeatable)")
}

func selectionFlag(cmd *cobra.Command) (domain.Selection, error) {
	values, _ := cmd.Flags().GetStringArray("select")
	if len(values) == 0 {
		return nil, nil
	}
	return domain.ParseSelection(values)
}
