// Package cas stores build records as one JSON file per package hash.
package cas

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

// Store implements ports.BuildRecordStore using a file-per-package strategy.
type Store struct{}

// NewStore creates a new BuildRecordStore. Every operation takes the workspace root explicitly.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the latest build record for a package hash.
func (s *Store) Get(root, packageHash string) (*domain.BuildRecord, error) {
	filename := s.getFilename(root, packageHash)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var record domain.BuildRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &record, nil
}

// Put stores the build record, replacing any earlier record for the same package.
func (s *Store) Put(root string, record domain.BuildRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, record.PackageHash)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(root, packageHash string) string {
	hash := sha256.Sum256([]byte(packageHash))
	storeDir := filepath.Join(root, domain.DefaultStorePath())
	return filepath.Join(storeDir, hex.EncodeToString(hash[:])+".json")
}
