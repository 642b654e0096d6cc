package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStore keeps blobs in process. URLs look like bucket URLs so the same
// key extraction applies.
type MemoryStore struct {
	mu      sync.Mutex
	urls    urlResolver
	objects map[string][]byte
	deleted []string

	// UploadErr and DeleteErr, when set, make the next calls fail.
	UploadErr error
	DeleteErr error
}

func NewMemoryStore(bucket string) *MemoryStore {
	if bucket == "" {
		bucket = "memory"
	}
	return &MemoryStore{
		urls:    newURLResolver(bucket, ""),
		objects: make(map[string][]byte),
	}
}

func (s *MemoryStore) Upload(ctx context.Context, r io.Reader, originalName, folder string) (string, error) {
	s.mu.Lock()
	failure := s.UploadErr
	s.mu.Unlock()
	if failure != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, failure)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	key := NewKey(folder, originalName)
	s.mu.Lock()
	s.objects[key] = buf.Bytes()
	s.mu.Unlock()
	return s.urls.URL(key), nil
}

func (s *MemoryStore) Delete(ctx context.Context, url string) error {
	key, err := s.urls.Key(url)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	if s.DeleteErr != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, s.DeleteErr)
	}
	delete(s.objects, key)
	return nil
}

// SetDeleteErr toggles delete failures.
func (s *MemoryStore) SetDeleteErr(err error) {
	s.mu.Lock()
	s.DeleteErr = err
	s.mu.Unlock()
}

// Has reports whether the blob behind url is stored.
func (s *MemoryStore) Has(url string) bool {
	key, err := s.urls.Key(url)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

// Len is the number of stored blobs.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Deleted lists every URL passed to Delete, successful or not.
func (s *MemoryStore) Deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}
