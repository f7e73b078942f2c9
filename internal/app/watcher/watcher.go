package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"consolelog/internal/app/errors"
	"consolelog/internal/app/status"
	"consolelog/internal/config"
	"consolelog/internal/config/logger"
)

// Watcher raises statuses for file changes under a directory
type Watcher interface {
	Start(ctx context.Context, cfg *config.Watch) error
	Close()
}

// watcher implements the Watcher interface
type watcher struct {
	broadcaster status.Broadcaster
	log         logger.Logger

	mu      sync.Mutex
	fs      *fsnotify.Watcher
	root    string
	filter  *Filter
	batcher *Batcher
	closed  bool
}

// NewWatcher creates a new Watcher publishing through broadcaster
func NewWatcher(broadcaster status.Broadcaster, log logger.Logger) Watcher {
	return &watcher{
		broadcaster: broadcaster,
		log:         log.WithComponent("WATCHER"),
	}
}

// Start begins watching cfg.Dir recursively until ctx is done or Close is called
func (w *watcher) Start(ctx context.Context, cfg *config.Watch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fs != nil || w.closed {
		return errors.ErrAlreadyStarted
	}

	filter, err := NewFilter(cfg.Include, cfg.Ignore)
	if err != nil {
		return fmt.Errorf("failed to compile watch patterns: %w", err)
	}

	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return err
	}

	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", errors.ErrInvalidWatchDir, root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	w.fs = fsw
	w.root = root
	w.filter = filter
	w.batcher = NewBatcher(cfg.Debounce, w.publishChanged)

	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		w.fs = nil

		return err
	}

	go w.loop(ctx, fsw)

	w.log.Info().Msgf("Started watching %s", root)
	w.broadcaster.Raise(fmt.Sprintf("Watching %s", root), status.WithCategory(status.Subtle))

	return nil
}

// Close stops watching and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.batcher != nil {
		w.batcher.Stop()
	}

	if w.fs != nil {
		w.fs.Close()
	}
}

func (w *watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			w.handle(event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
			w.broadcaster.Raise("File watcher error", status.WithCategory(status.Error), status.WithError(err))
		}
	}
}

// handle turns one fsnotify event into a status; writes are batched
func (w *watcher) handle(event fsnotify.Event) {
	rel, ok := w.relative(event.Name)
	if !ok {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !w.filter.SkipDir(rel) {
				if err := w.addRecursive(event.Name); err != nil {
					w.log.Warn().Err(err).Msgf("Failed to watch new directory: %s", event.Name)
				}
			}

			return
		}
	}

	if !w.filter.Allows(rel) {
		return
	}

	switch {
	case event.Has(fsnotify.Create):
		w.broadcaster.Raise(fmt.Sprintf("Created %s", rel), status.WithCategory(status.Success))
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.broadcaster.Raise(fmt.Sprintf("Removed %s", rel), status.WithCategory(status.Warning))
	case event.Has(fsnotify.Write):
		w.batcher.Add(rel)
	}
}

func (w *watcher) publishChanged(paths []string) {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}

	msg := fmt.Sprintf("Changed %s", paths[0])
	if len(paths) > 1 {
		msg = fmt.Sprintf("Changed %d files: %s", len(paths), strings.Join(paths, ", "))
	}

	w.broadcaster.Raise(msg, status.WithCategory(status.Info))
}

func (w *watcher) relative(path string) (string, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return filepath.ToSlash(rel), true
}

// addRecursive adds dir and every subdirectory not skipped by the filter
func (w *watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if rel, ok := w.relative(path); ok && w.filter.SkipDir(rel) {
			return filepath.SkipDir
		}

		if err := w.fs.Add(path); err != nil {
			w.log.Warn().Err(err).Msgf("Failed to watch directory: %s", path)
		}

		return nil
	})
}
