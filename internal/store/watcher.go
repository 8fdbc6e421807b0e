package store

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates the store's parse cache whenever a template
// directory changes. It blocks until ctx is done and is intended for
// long-lived processes such as the MCP server; one-shot CLI commands
// never need it.
//
// Directories that do not exist yet are skipped. Watcher errors are
// drained and ignored: a failed event means at worst a stale cache
// entry for a file that is re-read on the next miss.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // best-effort close on shutdown

	for _, dir := range []string{s.projectDir, s.globalDir} {
		if dir == "" {
			continue
		}
		_ = watcher.Add(dir)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.Invalidate()
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}
