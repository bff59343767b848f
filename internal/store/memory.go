package store

import (
	"context"
	"sync"
)

// MemoryBackend is an in-process Backend used by tests and local tooling.
// Blobs are copied on the way in and out so callers can never alias the
// stored bytes.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[uint64][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[uint64][]byte)}
}

// Get implements Backend.
func (m *MemoryBackend) Get(_ context.Context, id uint64) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[id]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Put implements Backend.
func (m *MemoryBackend) Put(_ context.Context, id uint64, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = append([]byte(nil), data...)
	return nil
}

// Scan implements Backend. The snapshot is taken under the read lock so a
// concurrent Put never yields a half-seen state.
func (m *MemoryBackend) Scan(_ context.Context, fn func(id uint64, data []byte) error) error {
	m.mu.RLock()
	snapshot := make(map[uint64][]byte, len(m.data))
	for id, data := range m.data {
		snapshot[id] = append([]byte(nil), data...)
	}
	m.mu.RUnlock()
	for id, data := range snapshot {
		if err := fn(id, data); err != nil {
			return err
		}
	}
	return nil
}

// MemoryCell is an in-process Cell for the identity counter.
type MemoryCell struct {
	mu    sync.Mutex
	value uint64
}

// NewMemoryCell returns a cell initialized to zero.
func NewMemoryCell() *MemoryCell { return &MemoryCell{} }

// Get implements Cell.
func (c *MemoryCell) Get(_ context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, nil
}

// Set implements Cell.
func (c *MemoryCell) Set(_ context.Context, v uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	return nil
}
