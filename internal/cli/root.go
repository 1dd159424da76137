package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/posetviz/pkg/buildinfo"
	"github.com/matzehuels/posetviz/pkg/observability"
)

// Execute runs the posetviz CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (show, render,
// check, explore, export, orders), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, plus observability hooks that log
//     build, render and cache events
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "posetviz",
		Short:        "Posetviz turns partially ordered sets into Hasse diagrams",
		Long:         `Posetviz builds partially ordered sets from TOML descriptions, maintains their Hasse diagrams under insertion and removal, and renders them as text, DOT, SVG, or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if verbose {
				hooks := &logHooks{logger: logger}
				observability.SetBuildHooks(hooks)
				observability.SetCacheHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newShowCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newOrdersCmd())

	return root.ExecuteContext(ctx)
}
