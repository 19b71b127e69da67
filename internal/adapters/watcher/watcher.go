// Package watcher implements source tree watching with fsnotify.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/pb/internal/adapters/fs"
	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/pb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const (
	// DefaultDebounceWindow is the default time window for debouncing file events.
	DefaultDebounceWindow = 300 * time.Millisecond
	// DefaultMaxWait bounds how long continuous changes can postpone a rescan.
	DefaultMaxWait = 3 * time.Second
)

// Watcher implements ports.Watcher. Every directory below the root is watched,
// except those rejected by the filter.
type Watcher struct {
	walker *fs.Walker
	filter ports.Filter
	window time.Duration
	logger ports.Logger
}

// NewWatcher creates a watcher that skips VCS metadata, hidden directories and the .pb directory.
func NewWatcher(walker *fs.Walker, filters ports.FilterCompiler, logger ports.Logger, window time.Duration) (*Watcher, error) {
	filter, err := filters.Compile([]string{domain.PbDirName, "node_modules"}, false)
	if err != nil {
		return nil, err
	}
	return &Watcher{walker: walker, filter: filter, window: window, logger: logger}, nil
}

// Watch blocks until ctx is done, calling onChange with each settled batch of changed paths.
func (w *Watcher) Watch(ctx context.Context, root string, onChange func(paths []string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	defer func() { _ = fsw.Close() }()

	root = filepath.Clean(root)
	for dir := range w.walker.WalkDirs(root, w.filter) {
		if err := fsw.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", dir)
		}
	}

	debouncer := NewDebouncer(w.window, onChange).WithMaxWait(DefaultMaxWait)
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(root, event) {
				continue
			}
			debouncer.Add(event.Name)

			if event.Has(fsnotify.Create) {
				w.addTree(fsw, root, event.Name)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

func (w *Watcher) relevant(root string, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	rel, err := filepath.Rel(root, event.Name)
	if err != nil {
		return false
	}
	info, statErr := os.Stat(event.Name)
	isDir := statErr == nil && info.IsDir()
	return !w.filter.Excluded(filepath.ToSlash(rel), isDir)
}

// addTree starts watching a newly created directory and everything below it.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, root, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || w.filter.Excluded(filepath.ToSlash(rel), true) {
		return
	}
	for dir := range w.walker.WalkDirs(path, w.filter) {
		_ = fsw.Add(dir)
	}
}
