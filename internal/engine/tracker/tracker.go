// Package tracker keeps the intermediate artifacts of a build session and removes them once.
package tracker

import (
	"fmt"
	"os"
	"slices"
	"sync"

	"go.trai.ch/pb/internal/core/ports"
)

// Tracker records temporary paths in insertion order.
type Tracker struct {
	logger ports.Logger

	mu    sync.Mutex
	paths []string
	seen  map[string]struct{}
}

// New creates an empty Tracker. Removal failures are reported to logger as warnings.
func New(logger ports.Logger) *Tracker {
	return &Tracker{
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// Register adds path to the set. Registering a path twice keeps its first position.
func (t *Tracker) Register(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[path]; ok {
		return
	}
	t.seen[path] = struct{}{}
	t.paths = append(t.paths, path)
}

// IsTemporary reports whether path is registered.
func (t *Tracker) IsTemporary(path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.seen[path]
	return ok
}

// Paths returns a snapshot of the registered paths.
func (t *Tracker) Paths() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.paths)
}

// PurgeAll removes every registered path and empties the set.
// Individual failures are logged and skipped. Calling it on an empty set does nothing.
func (t *Tracker) PurgeAll() {
	t.mu.Lock()
	paths := t.paths
	t.paths = nil
	t.seen = make(map[string]struct{})
	t.mu.Unlock()

	// Reverse order removes files before the directories holding them.
	for _, p := range slices.Backward(paths) {
		if err := os.RemoveAll(p); err != nil && t.logger != nil {
			t.logger.Warn(fmt.Sprintf("failed to remove temporary file %s: %v", p, err))
		}
	}
}
