// Package cmd provides the CLI commands for Hollowkeep.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hollowkeep/hollowkeep/internal/logging"
	"github.com/hollowkeep/hollowkeep/pkg/version"
)

// Debug logging flag
var (
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the hollowkeep CLI.
func NewRootCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "hollowkeep",
		Short: "A text adventure set in the castle of Hollowkeep",
		Long: `Hollowkeep is a terminal text adventure. You wake in a damp cell
beneath a ruined castle; explore its rooms, collect what you find,
and make your way out.

Just run 'hollowkeep' to start playing.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If help was explicitly requested, show it
			if len(args) > 0 {
				return cmd.Help()
			}
			return runPlay(cmd, opts)
		},
	}

	// Set version template
	cmd.SetVersionTemplate("hollowkeep version {{.Version}}\n")

	// Root flags mirror the play command so bare `hollowkeep` works.
	cmd.Flags().StringVarP(&opts.world, "world", "w", "", "Path to a world file (default: built-in castle)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Use the line-oriented interface even on a TTY")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable all styling")

	// Debug logging flag
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.hollowkeep/logs/")

	// Setup logging hooks
	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	// Add subcommands
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newFindCmd())
	cmd.AddCommand(newWorldCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startLogging starts debug logging if the flag is set.
func startLogging(_ *cobra.Command, _ []string) error {
	if !debugMode {
		return nil
	}

	logger, cleanup, err := logging.Setup(logging.DebugConfig())
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Info("Debug logging enabled",
		slog.String("log_file", logging.DefaultLogPath()),
		slog.String("version", version.Version))
	return nil
}

// stopLogging flushes and closes the debug log.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		slog.Info("Debug logging stopped")
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
