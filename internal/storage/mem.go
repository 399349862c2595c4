package storage

import (
	"context"
	"sync"
)

// MemStore is an in-process store for tests and the "memory" backend, where
// a session intentionally does not survive a restart.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites makes Set/Remove report failure, for exercising the
	// best-effort persistence contract.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

func (m *MemStore) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok || !ValidValue(v) {
		return "", false
	}
	return v, true
}

func (m *MemStore) Set(_ context.Context, key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return false
	}
	m.data[key] = value
	return true
}

func (m *MemStore) Remove(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return false
	}
	delete(m.data, key)
	return true
}

// Put bypasses validation, letting tests seed raw values like "undefined".
func (m *MemStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Len reports how many keys are stored, valid or not.
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
