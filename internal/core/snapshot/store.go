package snapshot

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/charleschow/sportshunt/internal/events"
)

var ErrNotFound = errors.New("snapshot not found")

// Store keeps the latest snapshot per sport under the sport's storage key.
type Store interface {
	Save(ctx context.Context, sport events.Sport, data []byte) error
	// Load returns ErrNotFound when nothing was saved for sport.
	Load(ctx context.Context, sport events.Sport) ([]byte, error)
	Delete(ctx context.Context, sport events.Sport) error
	Close() error
}

// MemoryStore is an in-process Store for tests and for running without a
// database file.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Save(_ context.Context, sport events.Sport, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sport.StorageKey()] = slices.Clone(data)
	return nil
}

func (m *MemoryStore) Load(_ context.Context, sport events.Sport) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[sport.StorageKey()]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(d), nil
}

func (m *MemoryStore) Delete(_ context.Context, sport events.Sport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sport.StorageKey())
	return nil
}

func (m *MemoryStore) Close() error { return nil }
