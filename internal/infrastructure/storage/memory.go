// Package storage provides implementations of the durable key-value
// port the state containers persist through: files on disk (the CLI
// default), Redis, MongoDB, and an in-memory map for tests.
package storage

import (
	"sync"

	"github.com/shopstream/storefront/internal/core/ports"
)

// Memory is a map-backed Storage. It is the test double of choice and
// also backs ephemeral sessions where persistence is unwanted.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ ports.Storage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return nil, ports.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
