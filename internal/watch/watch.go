// Package watch re-runs work when a file on disk changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a single file. The parent directory is watched so that
// editors that save by writing a temp file and renaming it are seen too.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// New creates a Watcher for path with the given debounce window.
func New(path string, debounce time.Duration, log *slog.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		log:      log.With("component", "watch", "path", path),
	}
}

// Run calls onChange after every debounced burst of writes to the file until
// ctx is cancelled. Calls are made from Run's goroutine, one at a time.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	fire := make(chan struct{}, 1)
	d := NewDebouncer(w.debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
	defer d.Stop()

	w.log.Debug("watching")

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				d.Trigger()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", slog.String("error", err.Error()))

		case <-fire:
			onChange(ctx)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		w.log.Debug("file moved away, waiting for it to reappear", slog.String("op", ev.Op.String()))
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
