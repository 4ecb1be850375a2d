package store

import (
	"context"
	"sync"
)

// Memory is an in-process slot store used by tests and standalone
// runs.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemory creates an empty in-memory slot store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

// Load returns the stored bytes for a slot, or ErrNoSlot.
func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.slots[key]
	if !ok {
		return nil, ErrNoSlot
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save overwrites a slot.
func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.slots[key] = stored
	return nil
}
