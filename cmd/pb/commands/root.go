// Package commands implements the CLI commands for the pb package builder.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pb/internal/app"
	"go.trai.ch/pb/internal/build"
)

// CLI represents the command line interface for pb.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	json    func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Scan(ctx context.Context, opts app.ScanOptions) error
	Preview(ctx context.Context, opts app.PreviewOptions) error
	Build(ctx context.Context, opts app.BuildOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Selection(ctx context.Context, source, directory string) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Resources(ctx context.Context, opts app.ResourcesOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pb",
		Short:         "Build distributable archives of versioned packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Write log output as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.json == nil {
			return
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		c.json(jsonMode)
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newPreviewCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newSelectionCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newResourcesCmd())
	rootCmd.AddCommand(c.newPatternsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// OnJSON registers fn to receive the value of the --json flag before a command runs.
func (c *CLI) OnJSON(fn func(bool)) {
	c.json = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addSourceFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("source", "s", "", "Source name or id (optional when only one source is configured)")
}
