// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange(path) whenever one of paths is written, created or
// renamed into place. It blocks until ctx is cancelled or the watcher fails,
// and never returns while onChange is still running.
//
// Parent directories are watched rather than the files themselves so that
// editors replacing a file atomically are still observed.
func Watch(ctx context.Context, paths []string, logger *slog.Logger, onChange func(path string)) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("source: failed to create watcher: %w", err)
	}
	defer watcher.Close()

	wanted := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("source: %w", err)
		}
		wanted[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("source: watch %s: %w", dir, err)
		}
		logger.Debug("watching directory", "dir", dir)
	}

	task := lifecycle.Go(ctx, func(ctx context.Context) error {
		return run(ctx, watcher, wanted, logger, onChange)
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("watch loop failed", "error", err)
	}))

	return task.Wait()
}

// run is the event loop. It returns nil on cancellation.
func run(ctx context.Context, w *fsnotify.Watcher, wanted map[string]struct{}, logger *slog.Logger, onChange func(string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := wanted[name]; !ok {
				continue
			}
			logger.Debug("event received", "name", name, "op", event.Op.String())
			onChange(name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("fsnotify error", "error", err)
		}
	}
}
