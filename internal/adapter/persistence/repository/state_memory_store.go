package repository

import (
	"context"
	"sync"

	"cotizador/internal/usecase/interfaces"
)

// StateMemoryStore is an in-process key-value store with an optional byte
// quota over the sum of stored values. A quota of 0 means unlimited.
type StateMemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	quota  int
}

var _ interfaces.IKeyValueStore = (*StateMemoryStore)(nil)

func NewStateMemoryStore(quotaBytes int) *StateMemoryStore {
	return &StateMemoryStore{values: map[string][]byte{}, quota: quotaBytes}
}

func (s *StateMemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *StateMemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota > 0 {
		used := len(value)
		for k, v := range s.values {
			if k != key {
				used += len(v)
			}
		}
		if used > s.quota {
			return interfaces.ErrStorageFull
		}
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *StateMemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
