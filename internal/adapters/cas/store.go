// Package cas persists generation records under content-addressed filenames.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.iioon.dev/iioon/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.GenInfoStore using one JSON file per locale
// folder, named by the sha256 of the folder path.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the generation record for a locale folder. A folder that
// was never generated yields (nil, nil).
func (s *Store) Get(root, folder string) (*domain.GenInfo, error) {
	filename := s.filename(root, folder)
	//nolint:gosec // path is root plus a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var info domain.GenInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &info, nil
}

// Put stores the generation record, replacing any previous one for the
// same folder.
func (s *Store) Put(root string, info domain.GenInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	filename := s.filename(root, info.Folder)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // path is root plus a hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(root, folder string) string {
	hash := sha256.Sum256([]byte(folder))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")
}
