package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hollowkeep/hollowkeep/internal/config"
	"github.com/hollowkeep/hollowkeep/internal/game"
	"github.com/hollowkeep/hollowkeep/internal/ui"
	"github.com/hollowkeep/hollowkeep/internal/world"
)

// playOptions holds CLI flags for play.
type playOptions struct {
	world   string
	plain   bool
	noColor bool
}

func newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game session",
		Long: `Start a game session in the terminal.

On a TTY this runs the full-screen interface; when output is piped
(or --plain is given) it falls back to a plain line-oriented loop.

Examples:
  hollowkeep play
  hollowkeep play --world my-world.yaml
  hollowkeep play --plain --no-color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.world, "world", "w", "", "Path to a world file (default: built-in castle)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Use the line-oriented interface even on a TTY")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable all styling")

	return cmd
}

func runPlay(cmd *cobra.Command, opts playOptions) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	// Flags win over config file and environment.
	worldPath := opts.world
	if worldPath == "" {
		worldPath = cfg.Game.World
	}

	w, err := loadWorld(worldPath)
	if err != nil {
		return err
	}

	engine, err := game.New(w, game.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	slog.Info("session_started",
		slog.String("world", w.Title),
		slog.Int("rooms", w.RoomCount()))

	return ui.Run(engine, ui.Config{
		Input:   cmd.InOrStdin(),
		Output:  cmd.OutOrStdout(),
		NoColor: opts.noColor || cfg.UI.NoColor || ui.DetectNoColor(),
		Plain:   opts.plain || cfg.UI.Plain,
	})
}

// loadWorld resolves a world path to a loaded world. Empty means the
// embedded castle.
func loadWorld(path string) (*world.World, error) {
	if path == "" {
		return world.Default(), nil
	}
	return world.Load(path)
}
