package ports

import "context"

// Watcher reports file system changes below a directory tree.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange with the batch of changed
	// paths once events settle.
	Watch(ctx context.Context, root string, onChange func(paths []string)) error
}
