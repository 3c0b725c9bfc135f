package internal

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchTheme reloads the theme file whenever it changes on disk and delivers
// each successfully parsed theme on updates. Parse failures are logged and the
// previous theme stays in effect. It blocks until ctx is done.
//
// The parent directory is watched rather than the file so editors that save by
// rename keep triggering reloads.
func WatchTheme(ctx context.Context, path string, updates chan<- Theme) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create theme watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve theme path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	log := ComponentLogger("theme")
	log.Debug("Watching theme file", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			theme, err := LoadTheme(abs)
			if err != nil {
				log.Warn("Theme reload failed; keeping previous theme", "error", err)
				continue
			}

			select {
			case updates <- theme:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Theme watcher error", "error", err)
		}
	}
}
