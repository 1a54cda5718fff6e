package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/LegacyCodeHQ/reactor/manifest"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	"build":        true,
	"dist":         true,
	".idea":        true,
	".vscode":      true,
}

// watchAndRecompute watches the manifest tree under dir and calls recompute
// after descriptor changes, debounced so that editor save bursts trigger a
// single recomputation. Recompute failures are reported and watching
// continues; the next change gets a fresh attempt.
func watchAndRecompute(ctx context.Context, dir string, recompute func() error, errOut io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, dir); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	var debounceTimer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			log.Debug("descriptor change detected", "path", event.Name, "op", event.Op.String())

			// A newly created directory may hold descriptors of its own.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchDirs(watcher, event.Name)
				}
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := recompute(); err != nil {
				fmt.Fprintf(errOut, "recompute failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watch error: %v\n", err)
		}
	}
}

// relevantEvent reports whether a filesystem event can affect the build
// order: descriptor file writes, or directory creation/removal/renames.
func relevantEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) == manifest.FileName {
		return true
	}
	return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
}

// addWatchDirs registers dir and every non-skipped subdirectory.
func addWatchDirs(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkipDir(d.Name()) && path != dir {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// shouldSkipDir reports whether a directory name is excluded from watching.
func shouldSkipDir(name string) bool {
	return skippedDirs[name]
}
