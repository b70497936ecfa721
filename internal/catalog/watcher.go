package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/cjrsolutions/cjrweb/internal/pubsub"
)

// Watcher reloads a catalog file into a Store whenever the file changes.
// A file that fails to parse or validate is logged and ignored; the previous
// catalog stays in effect.
type Watcher struct {
	fs        afero.Fs
	path      string
	store     *Store
	publisher pubsub.Publisher

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher for path. publisher may be nil.
func NewWatcher(fs afero.Fs, path string, store *Store, publisher pubsub.Publisher) *Watcher {
	return &Watcher{
		fs:        fs,
		path:      filepath.Clean(path),
		store:     store,
		publisher: publisher,
	}
}

// Start begins watching. The directory is watched rather than the file so
// editors that save by rename are picked up too.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.watcher = watcher
	w.done = make(chan struct{})
	go w.watchFiles(ctx, watcher, w.done)

	slog.Info("Watching catalog file for changes", "path", w.path)
	return nil
}

// Stop ends the watch loop and waits for it to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	watcher, done := w.watcher, w.done
	w.watcher, w.done = nil, nil
	w.mu.Unlock()

	if watcher == nil {
		return nil
	}
	err := watcher.Close()
	<-done
	return err
}

func (w *Watcher) watchFiles(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Catalog watcher context cancelled")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := w.Reload(ctx); err != nil {
				slog.Warn("Catalog reload rejected, keeping previous catalog", "path", w.path, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Catalog watcher error", "error", err)
		}
	}
}

// Reload reads, validates and installs the watched file.
func (w *Watcher) Reload(ctx context.Context) error {
	c, err := Load(w.fs, w.path)
	if err != nil {
		return err
	}

	w.store.Swap(c)
	slog.Info("Catalog reloaded", "path", w.path, "services", c.Len())

	if w.publisher == nil {
		return nil
	}
	event := ReloadedEvent{Path: w.path, Services: c.Len(), Orphans: c.Orphans()}
	if err := pubsub.Publish(ctx, w.publisher, Reloaded, pubsub.SourceSystem, event); err != nil {
		slog.Error("Failed to publish catalog reload", "error", err)
	}
	return nil
}
