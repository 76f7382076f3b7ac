package store

import (
	"context"
	"slices"
	"sync"
)

// memorySecureStore keeps values in process memory. It backs the store when
// the session must not outlive the process and serves as a test double.
type memorySecureStore struct {
	mu    sync.RWMutex
	items map[string][]byte

	// failWrites makes every write fail; used to exercise rollback paths.
	failWrites error
}

// NewMemorySecureStore returns an empty in-memory [SecureStore].
func NewMemorySecureStore() SecureStore {
	return &memorySecureStore{items: make(map[string][]byte)}
}

// NewFailingMemorySecureStore returns an in-memory [SecureStore] holding
// initial whose writes all fail with err.
func NewFailingMemorySecureStore(initial map[string][]byte, err error) SecureStore {
	s := &memorySecureStore{items: make(map[string][]byte, len(initial)), failWrites: err}
	for k, v := range initial {
		s.items[k] = slices.Clone(v)
	}
	return s
}

func (s *memorySecureStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (s *memorySecureStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

func (s *memorySecureStore) Delete(ctx context.Context, key string) error {
	return s.DeleteMany(ctx, key)
}

func (s *memorySecureStore) SetMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites != nil {
		return s.failWrites
	}
	for k, v := range entries {
		s.items[k] = slices.Clone(v)
	}
	return nil
}

func (s *memorySecureStore) DeleteMany(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites != nil {
		return s.failWrites
	}
	for _, k := range keys {
		delete(s.items, k)
	}
	return nil
}
