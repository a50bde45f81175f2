package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds a Catalog's current snapshot whenever a file changes
// under the directory it was loaded from. It is additive glue around the
// read-only-after-ingest core: a lattice or walker already in progress
// against an older snapshot is never touched, since Reload only ever
// swaps the Catalog's snapshot pointer.
type Watcher struct {
	catalog *Catalog
	fsw     *fsnotify.Watcher
	logger  *slog.Logger
}

// Watch starts watching dir for changes, reloading c on every write,
// create, remove, or rename event. Call Close to stop.
func Watch(c *Catalog, dir string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := fsw.Add(filepath.Clean(dir)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("catalog: watching %s: %w", dir, err)
	}

	w := &Watcher{catalog: c, fsw: fsw, logger: logger}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			if err := w.catalog.Reload(); err != nil {
				if w.logger != nil {
					w.logger.Warn("catalog reload failed", "error", err, "event", event)
				}
				continue
			}
			if w.logger != nil {
				w.logger.Info("catalog reloaded", "event", event)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("catalog watch error", "error", err)
			}
		}
	}
}

// Close stops the watch goroutine and releases the underlying OS watch.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
