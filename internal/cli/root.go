package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rowfit/rowfit/pkg/buildinfo"
)

// appName is used for the cache directory and command name.
const appName = "rowfit"

// Execute runs the rowfit CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (fit, wrap,
// cache), configures logging based on the --verbose flag, and executes the
// command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. The given context carries cancellation (e.g. SIGINT)
// into long-running commands.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Rowfit computes spreadsheet row heights for wrapped text",
		Long:         `Rowfit estimates how many display lines wrapped cell text occupies and stretches row heights so every cell fits, including cells merged across multiple rows.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFitCmd())
	root.AddCommand(newWrapCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
