package repository

import (
	"context"
	"sync"

	"github.com/gogotex/docstore/internal/document"
)

// MemoryStore keeps documents in a map for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]*document.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{store: make(map[string]*document.Document)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		return d.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Put(_ context.Context, d *document.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[d.ID] = d.Clone()
	return nil
}

func (m *MemoryStore) All(_ context.Context) ([]*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		out = append(out, d.Clone())
	}
	return out, nil
}

// Len returns the number of stored documents.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
