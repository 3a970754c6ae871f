// Package file provides a Store persisted as one file per key under a
// directory, the server-side analog of the browser storage the identity
// state originally lived in.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marquee-app/marquee/core"
)

type Store struct {
	dir string
}

var _ core.Store = (*Store)(nil)

// New creates the backing directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *Store) Get(key string) ([]byte, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
