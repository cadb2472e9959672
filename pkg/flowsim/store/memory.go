package store

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory flow store for testing and throwaway
// sessions. Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	flows  map[string]storedFlow
	closed bool
}

// storedFlow holds document bytes with metadata for List().
type storedFlow struct {
	data      []byte
	revision  int
	updatedAt time.Time
}

// NewMemoryStore creates a new in-memory flow store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		flows: make(map[string]storedFlow),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	// Copy data to avoid retaining caller's slice
	stored := make([]byte, len(data))
	copy(stored, data)

	revision := 1
	if prev, ok := m.flows[name]; ok {
		revision = prev.revision + 1
	}

	m.flows[name] = storedFlow{
		data:      stored,
		revision:  revision,
		updatedAt: time.Now().UTC(),
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	f, ok := m.flows[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent modification
	result := make([]byte, len(f.data))
	copy(result, f.data)
	return result, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.flows))
	for name, f := range m.flows {
		infos = append(infos, Info{
			Name:      name,
			Revision:  f.revision,
			UpdatedAt: f.updatedAt,
			Size:      int64(len(f.data)),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.flows, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.flows = nil
	return nil
}

// Len returns the number of stored documents. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.flows)
}
