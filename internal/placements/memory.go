package placements

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an in-memory placement repository seeded
// with the provided placements.
func NewMemoryRepository(seed ...*Placement) *MemoryRepository {
	repo := &MemoryRepository{
		byArea: make(map[string][]*Placement),
	}
	repo.Load(seed...)
	return repo
}

// MemoryRepository keeps placements in memory, grouped by area.
type MemoryRepository struct {
	mu     sync.RWMutex
	byArea map[string][]*Placement
	order  []*Placement
}

var _ Repository = (*MemoryRepository)(nil)

// Load adds placements to the repository. Missing IDs are generated.
func (m *MemoryRepository) Load(items ...*Placement) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range items {
		if item == nil {
			continue
		}
		cloned := clonePlacement(item)
		if cloned.ID == uuid.Nil {
			cloned.ID = uuid.New()
		}
		key := areaKey(cloned.Template, cloned.Location)
		list := append(m.byArea[key], cloned)
		slices.SortStableFunc(list, byPosition)
		m.byArea[key] = list
		m.order = append(m.order, cloned)
	}
}

func (m *MemoryRepository) ListByArea(_ context.Context, template, location string) ([]*Placement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.byArea[areaKey(template, location)]
	out := make([]*Placement, 0, len(records))
	for _, record := range records {
		out = append(out, clonePlacement(record))
	}
	return out, nil
}

func (m *MemoryRepository) ListAll(_ context.Context) ([]*Placement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Placement, 0, len(m.order))
	for _, record := range m.order {
		out = append(out, clonePlacement(record))
	}
	return out, nil
}

func byPosition(a, b *Placement) int {
	return a.Position - b.Position
}
