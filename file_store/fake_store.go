package file_store

import (
	"context"
	"io"
	"io/ioutil"
	"sync"

	"github.com/pkg/errors"
)

// FakeFileStore keeps files in memory. Err, when set, is returned by every
// call, which lets tests exercise upload failures.
type FakeFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
	Err   error
}

func NewFakeFileStore() *FakeFileStore {
	return &FakeFileStore{files: map[string][]byte{}}
}

func (s *FakeFileStore) Store(ctx context.Context, key string, r io.Reader) error {
	if s.Err != nil {
		return s.Err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "fail to read %s", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[key] = data
	return nil
}

func (s *FakeFileStore) Delete(ctx context.Context, key string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, key)
	return nil
}

// Get returns the bytes stored under key.
func (s *FakeFileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[key]
	return data, ok
}

func (s *FakeFileStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.files))
	for k := range s.files {
		keys = append(keys, k)
	}
	return keys
}
