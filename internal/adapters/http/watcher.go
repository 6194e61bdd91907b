package http

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 150 * time.Millisecond

var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

func shouldSkipDir(name string, ignore map[string]struct{}) bool {
	if _, ok := skipDirs[name]; ok {
		return true
	}
	_, ok := ignore[name]
	return ok
}

// Watch calls onChange after a burst of file changes under root settles.
// Directories named in ignore (the output dir) are not watched. Watch
// blocks until ctx is done.
func Watch(ctx context.Context, root string, ignore []string, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	ignored := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		ignored[filepath.Base(filepath.Clean(name))] = struct{}{}
	}

	if err := watchDirs(watcher, root, ignored); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchEvent(event.Op) {
				continue
			}
			if shouldAddWatchDir(event, ignored) {
				if err := watchDirs(watcher, event.Name, ignored); err != nil {
					slog.Warn("failed to watch new directory", "dir", event.Name, "error", err)
				}
			}
			slog.Debug("file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		case <-timer.C:
			onChange()
		}
	}
}

func watchDirs(watcher *fsnotify.Watcher, root string, ignored map[string]struct{}) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			slog.Warn("failed to access path", "path", path, "error", err)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && shouldSkipDir(d.Name(), ignored) {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}

func isWatchEvent(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func shouldAddWatchDir(event fsnotify.Event, ignored map[string]struct{}) bool {
	if event.Op&fsnotify.Create == 0 {
		return false
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return false
	}

	return info.IsDir() && !shouldSkipDir(info.Name(), ignored)
}
