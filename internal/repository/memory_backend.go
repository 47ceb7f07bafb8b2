package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

// MemoryBackend keeps blobs in a map. A positive capacity bounds the summed
// size of keys and values, which lets tests exhaust the quota on purpose.
type MemoryBackend struct {
	mu       sync.Mutex
	data     map[string]string
	capacity int
}

// NewMemoryBackend constructs an empty in-memory backend.
func NewMemoryBackend(capacity int) *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string), capacity: capacity}
}

// Get returns the stored value or appErrors.ErrKeyNotFound.
func (m *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return "", appErrors.ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key unless that would exceed the capacity.
func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.capacity > 0 {
		used := 0
		for k, v := range m.data {
			if k != key {
				used += len(k) + len(v)
			}
		}
		if need := used + len(key) + len(value); need > m.capacity {
			return appErrors.Wrap(fmt.Errorf("setting %q needs %d of %d bytes", key, need, m.capacity),
				appErrors.ErrQuotaExceeded.Code, appErrors.ErrQuotaExceeded.Status, appErrors.ErrQuotaExceeded.Message)
		}
	}
	m.data[key] = value
	return nil
}

// Remove deletes key if present.
func (m *MemoryBackend) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// SetCapacity changes the quota; existing data is kept even if it no longer fits.
func (m *MemoryBackend) SetCapacity(capacity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.capacity = capacity
}

// Keys lists stored keys in sorted order.
func (m *MemoryBackend) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
