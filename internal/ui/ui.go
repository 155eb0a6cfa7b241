// Package ui renders the game session in the terminal. On a TTY it
// runs a bubbletea interface (scrolling transcript plus input line);
// for pipes and CI it falls back to a plain line-oriented loop. Both
// drive the same game.Engine.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hollowkeep/hollowkeep/internal/game"
)

// Config configures a game session's rendering.
type Config struct {
	// Input is the player's input stream (default os.Stdin).
	Input io.Reader
	// Output is where the session renders (default os.Stdout).
	Output io.Writer
	// NoColor disables all styling.
	NoColor bool
	// Plain forces the line-oriented renderer even on a TTY.
	Plain bool
}

// WithDefaults fills unset streams with the process's stdio.
func (c Config) WithDefaults() Config {
	if c.Input == nil {
		c.Input = os.Stdin
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	return c
}

// IsTTY reports whether the writer is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectNoColor honors the NO_COLOR convention (https://no-color.org).
func DetectNoColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// Run plays a session with the appropriate renderer: the TUI when the
// output is a TTY and plain mode was not requested, the line loop
// otherwise.
func Run(e Engine, cfg Config) error {
	cfg = cfg.WithDefaults()
	if cfg.Plain || !IsTTY(cfg.Output) {
		return NewPlainRunner(cfg).Run(e)
	}
	return RunTUI(e, cfg)
}

// Engine is the slice of game.Engine the renderers need, kept as an
// interface so renderer tests can script responses.
type Engine interface {
	// Welcome returns the opening banner and first room description.
	Welcome() string
	// Execute runs one input line.
	Execute(line string) game.Response
}
