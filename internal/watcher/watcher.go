// Package watcher watches a single world file and reports debounced
// change events, for `hollowkeep world validate --watch`.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options configures the watcher behavior.
type Options struct {
	// Debounce is the quiet period before a change is reported, so a
	// burst of editor writes counts as one event. Default: 200ms.
	Debounce time.Duration
}

// DefaultOptions returns the default watcher options.
func DefaultOptions() Options {
	return Options{Debounce: 200 * time.Millisecond}
}

// WithDefaults returns options with defaults applied for zero values.
func (o Options) WithDefaults() Options {
	if o.Debounce == 0 {
		o.Debounce = DefaultOptions().Debounce
	}
	return o
}

// Watch blocks watching path and calls onChange after each debounced
// modification, until ctx is cancelled. The parent directory is
// watched rather than the file itself: editors typically save by
// writing a temp file and renaming it over the original, which would
// otherwise drop the watch.
func Watch(ctx context.Context, path string, opts Options, onChange func()) error {
	opts = opts.WithDefaults()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(opts.Debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(opts.Debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			onChange()

		case _, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			// Non-fatal; keep watching.
		}
	}
}
