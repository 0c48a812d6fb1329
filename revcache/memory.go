package revcache

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tarantool/go-option"
)

// DefaultMemorySize is the number of entries kept by a memory cache by default.
const DefaultMemorySize = 4096

// Memory is an in-process Cache holding the most recently used entries.
type Memory struct {
	mu      sync.Mutex
	entries *lru.Cache[Key, uint64]
}

var _ Cache = &Memory{} //nolint:exhaustruct

// NewMemory creates a memory cache holding at most size entries.
func NewMemory(size int) (*Memory, error) {
	entries, err := lru.New[Key, uint64](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru: %w", err)
	}

	return &Memory{mu: sync.Mutex{}, entries: entries}, nil
}

// Load implements Cache interface.
func (m *Memory) Load(_ context.Context, key Key) (option.Generic[uint64], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	revision, ok := m.entries.Get(key)
	if !ok {
		return option.None[uint64](), nil
	}

	return option.Some(revision), nil
}

// Store implements Cache interface.
func (m *Memory) Store(_ context.Context, key Key, revision uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.entries.Peek(key); ok && current >= revision {
		return nil
	}

	m.entries.Add(key, revision)

	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	return m.entries.Len()
}
