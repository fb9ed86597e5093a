package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// sourceWatcher reports bursts of changes to source files.
type sourceWatcher struct {
	watcher  *fsnotify.Watcher
	ext      string
	debounce time.Duration
	logger   *slog.Logger
}

// newSourceWatcher watches every directory under paths. A file argument
// watches its parent directory.
func newSourceWatcher(paths []string, ext string, debounce time.Duration, logger *slog.Logger) (*sourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	sw := &sourceWatcher{watcher: w, ext: ext, debounce: debounce, logger: logger}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to access %s: %w", p, err)
		}
		if !info.IsDir() {
			p = filepath.Dir(p)
		}
		if err := sw.addTree(p); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}
	return sw, nil
}

// addTree watches dir and its non-hidden subdirectories.
func (w *sourceWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// relevant reports whether ev touches a source file.
func (w *sourceWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Ext(ev.Name) == w.ext
}

// Run calls onChange once per debounced burst of relevant events until ctx
// is done or the watcher is closed.
func (w *sourceWatcher) Run(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "dir", ev.Name, "error", err)
					}
					continue
				}
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("source changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// Close stops watching.
func (w *sourceWatcher) Close() error {
	return w.watcher.Close()
}
