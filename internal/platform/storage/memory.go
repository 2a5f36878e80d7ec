package storage

import (
	"context"
	"sync"
)

type memoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore keeps collections in process memory. Nothing survives a restart.
func NewMemoryStore() Store {
	return newDocumentStore("memory", &memoryBackend{data: make(map[string][]byte)})
}

func (b *memoryBackend) get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (b *memoryBackend) put(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	b.data[key] = stored
	return nil
}

func (b *memoryBackend) ping(_ context.Context) error { return nil }

func (b *memoryBackend) close() error { return nil }
