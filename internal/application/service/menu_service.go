package service

import (
	"context"
	"strings"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
)

// MenuService handles catalog operations
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// ListItems returns the full catalog in seed-then-added order.
func (s *MenuService) ListItems(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// AddItemInput represents the admin add-item input
type AddItemInput struct {
	Name     string
	Price    int64
	Category string
	ImageRef string
}

// AddItem appends a new catalog item with a fresh time-based id.
// Admin-only; the handler enforces the role gate.
func (s *MenuService) AddItem(ctx context.Context, input *AddItemInput) (*entity.MenuItem, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "Makanan Utama"
	}

	item := entity.NewMenuItem(strings.TrimSpace(input.Name), input.Price, category, input.ImageRef)
	if err := s.menuRepo.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetAvailability toggles whether an item can be purchased. Reserved for
// hiding items without deleting them.
func (s *MenuService) SetAvailability(ctx context.Context, id string, available bool) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.SetAvailable(ctx, id, available)
}
