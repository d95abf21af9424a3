package registry

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch reloads dir from path whenever the file is written or recreated, until ctx is done.
// An invalid file keeps the previous descriptors in place.
func Watch(ctx context.Context, path string, dir *Directory, logger logrus.FieldLogger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create registry watcher: %w", err)
	}

	// Watch the parent so editors that replace the file are picked up
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch registry directory: %w", err)
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				types, err := LoadFile(path)
				if err != nil {
					logger.WithError(err).Warn("registry reload failed, keeping previous content types")
					continue
				}
				dir.Replace(types)
				logger.WithField("content_types", len(types)).Info("registry reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.WithError(err).Warn("registry watcher error")
			}
		}
	}()

	return nil
}
