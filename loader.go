package finance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadStore opens and decodes the store file at path and binds the store
// to it, so later mutations commit back to the same file. A missing file
// yields an empty bound store, ready for its first commit.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := NewStore()
		s.Bind(path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", path, err)
	}
	s.Bind(path)
	return s, nil
}

// SaveStore persists a store snapshot to path atomically.
func SaveStore(path string, s *Store) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return saveState(path, s.st)
}

// saveState writes st to a temporary file next to path and renames it
// into place, so readers never observe a half-written store and a failed
// write leaves the previous file intact.
func saveState(path string, st *state) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := encodeState(tmp, st); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace store file %q: %w", path, err)
	}
	return nil
}
