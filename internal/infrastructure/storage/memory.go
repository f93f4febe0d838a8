package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	contentapp "github.com/summitmind/backend/internal/application/content"
)

// Ensure InMemoryObjectStorage implements ObjectStorageService
var _ contentapp.ObjectStorageService = (*InMemoryObjectStorage)(nil)

// InMemoryObjectStorage tracks object keys in a map and fabricates
// presigned-looking URLs. It backs local development and tests where no
// S3-compatible backend is running.
type InMemoryObjectStorage struct {
	// BaseURL is the prefix for fabricated upload/download URLs
	BaseURL string

	mu      sync.RWMutex
	objects map[string]struct{}
}

// NewInMemoryObjectStorage creates a new InMemoryObjectStorage
func NewInMemoryObjectStorage() *InMemoryObjectStorage {
	return &InMemoryObjectStorage{
		BaseURL: "https://storage.summitmind.local",
		objects: make(map[string]struct{}),
	}
}

// GenerateUploadURL fabricates an upload URL and records the key as
// uploaded, so the confirmation flow works without a real backend.
func (s *InMemoryObjectStorage) GenerateUploadURL(
	_ context.Context,
	objectKey, _ string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if objectKey == "" {
		return "", time.Time{}, errors.New("object key is required")
	}

	s.mu.Lock()
	s.objects[objectKey] = struct{}{}
	s.mu.Unlock()

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + objectKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// GenerateDownloadURL fabricates a download URL for a stored key
func (s *InMemoryObjectStorage) GenerateDownloadURL(
	_ context.Context,
	objectKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if objectKey == "" {
		return "", time.Time{}, errors.New("object key is required")
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/download/" + objectKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// DeleteObject removes a key from the map
func (s *InMemoryObjectStorage) DeleteObject(_ context.Context, objectKey string) error {
	if objectKey == "" {
		return errors.New("object key is required")
	}

	s.mu.Lock()
	delete(s.objects, objectKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether a key was previously uploaded or marked
func (s *InMemoryObjectStorage) ObjectExists(_ context.Context, objectKey string) (bool, error) {
	if objectKey == "" {
		return false, errors.New("object key is required")
	}

	s.mu.RLock()
	_, ok := s.objects[objectKey]
	s.mu.RUnlock()
	return ok, nil
}
