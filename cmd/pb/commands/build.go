package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <directory>",
		Short: "Build the archive of a package and its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			pattern, _ := cmd.Flags().GetString("pattern")
			save, _ := cmd.Flags().GetBool("save-selection")
			exclude, _ := cmd.Flags().GetStringSlice("exclude")
			dotFiles, _ := cmd.Flags().GetBool("include-dotfiles")

			sel, err := selectionFlag(cmd)
			if err != nil {
				return err
			}

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Source:          source,
				Directory:       args[0],
				Pattern:         pattern,
				Selection:       sel,
				SaveSelection:   save,
				Exclude:         exclude,
				IncludeDotFiles: dotFiles,
			})
		},
	}
	addSourceFlag(cmd)
	addSelectionFlag(cmd)
	cmd.Flags().StringP("pattern", "p", "", "Archive filename pattern (see 'pb patterns')")
	cmd.Flags().Bool("save-selection", false, "Remember --select overrides for this package")
	cmd.Flags().StringSliceP("exclude", "e", nil, "Additional glob patterns to leave out of the archive")
	cmd.Flags().Bool("include-dotfiles", false, "Include hidden files and directories")
	return cmd
}
