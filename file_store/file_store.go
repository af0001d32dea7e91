package file_store

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Luismorlan/tribe/app_setting"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FileStore persists uploaded bytes under a key. The key, not the bytes, is
// what ends up in the media table; the public url is derived from it.
type FileStore interface {
	Store(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
}

// UploadKey returns a fresh key "<root>/<userID>/<uuid><ext>" for a file
// uploaded by userID. ext keeps its leading dot and is lower cased.
func UploadKey(root string, userID uint, ext string) string {
	name := uuid.New().String() + strings.ToLower(ext)
	return path.Join(strings.Trim(root, "/"), fmt.Sprint(userID), name)
}

// NewFileStore builds the file store selected by setting.FILE_STORE.
func NewFileStore(setting app_setting.AppSetting) (FileStore, error) {
	switch setting.FILE_STORE {
	case app_setting.LocalFileStore:
		return NewLocalFileStore(setting.LOCAL_STORE_DIR)
	case app_setting.S3FileStore:
		return NewS3FileStore(setting.S3_BUCKET, setting.S3_REGION)
	case app_setting.FakeFileStore:
		return NewFakeFileStore(), nil
	}
	return nil, errors.Errorf("unknown file store %q", setting.FILE_STORE)
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return errors.Errorf("invalid file key %q", key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return errors.Errorf("invalid file key %q", key)
		}
	}
	return nil
}
