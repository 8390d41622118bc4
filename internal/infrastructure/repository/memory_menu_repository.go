package repository

import (
	"context"
	"sync"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	domainRepo "github.com/sangkips/kasirpos/internal/domain/repository"
)

type memoryMenuRepository struct {
	mu    sync.RWMutex
	items []entity.MenuItem
	byID  map[string]int
}

// NewMemoryMenuRepository creates the in-memory catalog, seeded with the
// given items. Catalog order is seed order followed by admin additions.
func NewMemoryMenuRepository(seed []entity.MenuItem) domainRepo.MenuRepository {
	r := &memoryMenuRepository{
		items: make([]entity.MenuItem, 0, len(seed)),
		byID:  make(map[string]int, len(seed)),
	}
	for _, item := range seed {
		r.byID[item.ID] = len(r.items)
		r.items = append(r.items, item)
	}
	return r
}

func (r *memoryMenuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryMenuRepository) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	item := r.items[idx]
	return &item, nil
}

func (r *memoryMenuRepository) Add(ctx context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = len(r.items)
	r.items = append(r.items, *item)
	return nil
}

func (r *memoryMenuRepository) SetAvailable(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil
	}
	r.items[idx].Available = available
	return nil
}
