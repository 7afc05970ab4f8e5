// ABOUTME: In-memory Blob implementation for tests and the ephemeral backend.
// ABOUTME: Map-backed with a RWMutex; optionally fails on demand for tests.
package storage

import (
	"context"
	"sync"
)

// MemStore is a Blob held entirely in memory.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string

	// FailWith, when non-nil, is returned (wrapped) by every operation.
	// Lets tests exercise StorageError propagation.
	FailWith error
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

// Get returns the value for key, or found=false when absent.
func (s *MemStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FailWith != nil {
		return "", false, wrapErr("get", key, s.FailWith)
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *MemStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return wrapErr("set", key, s.FailWith)
	}
	s.data[key] = value
	return nil
}

// Remove deletes key.
func (s *MemStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return wrapErr("remove", key, s.FailWith)
	}
	delete(s.data, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error {
	return nil
}

// Len returns the number of stored keys. Test helper.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
