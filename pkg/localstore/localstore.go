package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type (
	// Store is the durable key-value contract the client state packages
	// persist through. Load reports false instead of failing when the
	// stored payload is missing or unreadable, so callers always start
	// from their empty default.
	Store interface {
		Load(key string, v interface{}) bool
		Save(key string, v interface{}) error
		Delete(key string) error
	}

	fileStore struct {
		dir string
	}
)

func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Load(key string, v interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Corrupt payload: fail open, the caller keeps its empty state.
		return false
	}
	return true
}

func (s *fileStore) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %q: %w", key, err)
	}

	tmp := s.path(key) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *fileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
