package kvstore

import (
	"context"
	"sync"
)

// MemoryStore is the in-process backend. It backs unit tests and the
// memory store driver.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	subs map[string][]func()
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
		subs: make(map[string][]func()),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	subs := append([]func(){}, s.subs[key]...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return nil
}

func (s *MemoryStore) Subscribe(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[key] = append(s.subs[key], fn)
}

func (s *MemoryStore) Close() {}
