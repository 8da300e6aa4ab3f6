package groups

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	order  []string
	bySlug map[string]*Group
}

// NewMemoryRepository constructs an in-memory group repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{bySlug: make(map[string]*Group)}
}

func (m *memoryRepository) Create(_ context.Context, group *Group) (*Group, error) {
	record, err := normalizeGroup(group)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bySlug[record.Slug]; exists {
		return nil, ErrDuplicateSlug
	}
	m.bySlug[record.Slug] = record
	m.order = append(m.order, record.Slug)
	return cloneGroup(record), nil
}

func (m *memoryRepository) GetBySlug(_ context.Context, slug string) (*Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "group", Key: slug}
	}
	return cloneGroup(record), nil
}

// List returns groups in insertion order.
func (m *memoryRepository) List(_ context.Context) ([]*Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Group, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, cloneGroup(m.bySlug[key]))
	}
	return out, nil
}
