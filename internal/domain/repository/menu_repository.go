package repository

import (
	"context"

	"github.com/sangkips/kasirpos/internal/domain/entity"
)

// MenuRepository defines the interface for catalog data operations.
// Items are never deleted; availability toggling is reserved for hiding
// an item from purchase.
type MenuRepository interface {
	List(ctx context.Context) ([]entity.MenuItem, error)
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	Add(ctx context.Context, item *entity.MenuItem) error
	SetAvailable(ctx context.Context, id string, available bool) error
}
