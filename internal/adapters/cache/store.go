// Package cache implements the catalog cache as one JSON file per key.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheStore below <root>/.pb/cache.
type Store struct{}

// NewStore creates a new cache store.
func NewStore() *Store {
	return &Store{}
}

// Get decodes the entry for key into v. A missing entry is a miss, not an error.
func (s *Store) Get(root, key string, v any) (bool, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.filename(root, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}
	return true, nil
}

// Put stores v under key.
func (s *Store) Put(root, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}

	filename := s.filename(root, key)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}

	// Write to a sibling file and rename so readers never see a partial entry.
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	if err := os.Rename(tmp, filename); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	return nil
}

// Invalidate removes the entry for key.
func (s *Store) Invalidate(root, key string) error {
	err := os.Remove(s.filename(root, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheInvalidateFailed.Error()), "key", key)
	}
	return nil
}

func (s *Store) filename(root, key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(root, domain.DefaultCachePath(), hex.EncodeToString(hash[:])+".json")
}
