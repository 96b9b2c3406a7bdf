// Package watcher wraps fsnotify for the watch command. fsnotify watches
// directories, not files, so we watch the parent directory of every file of
// interest and filter events back down to the tracked set.
package watcher

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// TargetWatcher tracks a fixed set of files through their parent
// directories.
type TargetWatcher struct {
	*fsnotify.Watcher
	targets map[string]bool
	dirs    map[string]bool
	mu      sync.RWMutex
}

// New creates a new TargetWatcher.
func New() (*TargetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &TargetWatcher{
		Watcher: w,
		targets: make(map[string]bool),
		dirs:    make(map[string]bool),
	}, nil
}

// AddTargets registers files to track, adding directory watches as needed.
// Paths must be absolute. Unwatchable directories are skipped so that a
// missing referenced file does not break the watch on the rest.
func (w *TargetWatcher) AddTargets(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, path := range paths {
		w.targets[path] = true
		dir := filepath.Dir(path)
		if w.dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			continue
		}
		w.dirs[dir] = true
	}
}

// IsTarget reports whether an event path is one of the tracked files.
func (w *TargetWatcher) IsTarget(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.targets[path]
}

// Reset drops all tracked files, keeping directory watches alive. Used when
// a rebuild discovers a different set of referenced files.
func (w *TargetWatcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.targets = make(map[string]bool)
}
