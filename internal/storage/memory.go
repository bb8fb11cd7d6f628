package storage

import (
	"context"
	"maps"
	"sync"
)

// Memory is a process-local Store. FailGets and FailSets, when non-nil, are
// returned from every Get or Set so callers can exercise failure paths.
type Memory struct {
	mu       sync.Mutex
	data     map[string]string
	FailGets error
	FailSets error
	sets     int
}

// NewMemory creates an empty store, optionally pre-seeded
func NewMemory(seed map[string]string) *Memory {
	data := make(map[string]string, len(seed))
	maps.Copy(data, seed)
	return &Memory{data: data}
}

// Get returns the value for key
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGets != nil {
		return "", m.FailGets
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSets != nil {
		return m.FailSets
	}
	m.data[key] = value
	m.sets++
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}

// Sets returns how many Set calls succeeded
func (m *Memory) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
