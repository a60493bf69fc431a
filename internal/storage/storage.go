// Package storage persists raw serialized metadata blobs keyed by
// canonical lookup-key string. It is the offline layer under the caching
// fetcher; blobs are kept indefinitely (no eviction).
package storage

import (
	"context"
	"sync"
)

// Storage defines the blob persistence interface.
type Storage interface {
	// Get returns the blob stored under key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores data under key, replacing any previous blob.
	Put(ctx context.Context, key string, data []byte) error

	Close() error
}

// Memory is an in-process Storage for tests and cache-less setups.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}

func (m *Memory) Close() error { return nil }
