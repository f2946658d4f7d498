package objectstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
)

// FSStore keeps objects as files under a root directory, for local runs.
type FSStore struct {
	root string
}

// NewFSStore creates the root directory if needed.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, pkgerrors.Wrap(err, "create object store dir")
	}
	return &FSStore{root: root}, nil
}

// objectPath maps a key to a file path that cannot escape root.
func (s *FSStore) objectPath(key string) string {
	clean := path.Clean("/" + key)
	return filepath.Join(s.root, filepath.FromSlash(clean))
}

// Get reads the object at key.
func (s *FSStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.objectPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "read object %s", key)
	}
	return data, nil
}

// Put writes through a temp file and renames it into place.
func (s *FSStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	dst := s.objectPath(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return pkgerrors.Wrapf(err, "create dir for %s", key)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".put-*")
	if err != nil {
		return pkgerrors.Wrapf(err, "create temp file for %s", key)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return pkgerrors.Wrapf(err, "write object %s", key)
	}
	if err := tmp.Close(); err != nil {
		return pkgerrors.Wrapf(err, "close object %s", key)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return pkgerrors.Wrapf(err, "commit object %s", key)
	}
	return nil
}
