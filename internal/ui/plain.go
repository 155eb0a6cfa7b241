package ui

import (
	"bufio"
	"fmt"
	"io"
)

// PlainRunner plays a session as a plain line loop: prompt, read,
// print. Used for pipes, CI, and --plain.
type PlainRunner struct {
	in  io.Reader
	out io.Writer
}

// NewPlainRunner creates a plain-mode runner.
func NewPlainRunner(cfg Config) *PlainRunner {
	cfg = cfg.WithDefaults()
	return &PlainRunner{in: cfg.Input, out: cfg.Output}
}

// Run plays the session until the player quits or input ends.
func (r *PlainRunner) Run(e Engine) error {
	fmt.Fprintln(r.out, e.Welcome())

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\n> ")
		if !scanner.Scan() {
			// EOF or read error ends the session quietly.
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		resp := e.Execute(scanner.Text())
		if resp.Text != "" {
			fmt.Fprintln(r.out, resp.Text)
		}
		if resp.Quit {
			return nil
		}
	}
}
