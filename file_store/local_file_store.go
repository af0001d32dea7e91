package file_store

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalFileStore writes files below a root directory, the key is the path
// relative to root.
type LocalFileStore struct {
	root string
}

func NewLocalFileStore(root string) (*LocalFileStore, error) {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "fail to create store root %s", root)
	}
	return &LocalFileStore{root: root}, nil
}

func (s *LocalFileStore) Root() string {
	return s.root
}

func (s *LocalFileStore) Store(ctx context.Context, key string, r io.Reader) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	dest := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return errors.Wrapf(err, "fail to create folder for %s", key)
	}

	// Write to a temp file first so a failed upload never leaves a partial
	// file under the final name.
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".upload-*")
	if err != nil {
		return errors.Wrapf(err, "fail to create temp file for %s", key)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "fail to write %s", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "fail to close %s", key)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), dest), "fail to move %s into place", key)
}

func (s *LocalFileStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "fail to delete %s", key)
	}
	return nil
}
