package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/core/domain"
)

func (c *CLI) newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the supported archive filename patterns",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			for _, p := range domain.PatternChoices() {
				if p == domain.DefaultPattern {
					_, _ = fmt.Fprintf(cmdo, "%s (default)\n", p)
					continue
				}
				_, _ = fmt.Fprintln(cmdo, p)
			}
		},
	}
}
