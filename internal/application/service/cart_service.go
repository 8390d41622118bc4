package service

import (
	"context"
	"sync"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
)

// CartService owns the active cart per operator. Carts are transient:
// they exist only between checkouts and are never persisted.
type CartService struct {
	menuRepo repository.MenuRepository

	mu    sync.Mutex
	carts map[string]*entity.Cart
}

// NewCartService creates a new cart service
func NewCartService(menuRepo repository.MenuRepository) *CartService {
	return &CartService{
		menuRepo: menuRepo,
		carts:    make(map[string]*entity.Cart),
	}
}

// cart returns the operator's cart, creating it on first use. Callers
// must hold s.mu.
func (s *CartService) cart(userID string) *entity.Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = entity.NewCart()
		s.carts[userID] = c
	}
	return c
}

// snapshot copies the cart so callers never share the live slice.
func snapshot(c *entity.Cart) *entity.Cart {
	out := entity.NewCart()
	out.Lines = append(out.Lines, c.Lines...)
	return out
}

// Get returns a copy of the operator's current cart.
func (s *CartService) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.cart(userID)), nil
}

// AddItem merges one unit of the catalog item into the cart.
func (s *CartService) AddItem(ctx context.Context, userID, itemID string) (*entity.Cart, error) {
	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	if !item.Available {
		return nil, apperror.NewBadRequestError("Item is not available")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(userID)
	c.AddItem(item)
	return snapshot(c), nil
}

// SetQuantity sets a line's quantity; zero or below removes the line.
// Unknown item ids are a no-op.
func (s *CartService) SetQuantity(ctx context.Context, userID, itemID string, quantity int) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(userID)
	c.SetQuantity(itemID, quantity)
	return snapshot(c), nil
}

// RemoveItem drops a line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(userID)
	c.RemoveItem(itemID)
	return snapshot(c), nil
}

// Totals computes subtotal, tax and total for the current cart.
func (s *CartService) Totals(ctx context.Context, userID string) (entity.CartTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).Totals(), nil
}

// Clear empties the operator's cart.
func (s *CartService) Clear(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// deduct removes the charged lines from the live cart when a payment
// completes. Each line's quantity drops by the charged quantity and
// emptied lines disappear; lines added while the payment settled stay.
func (s *CartService) deduct(userID string, charged []entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(userID)
	for i := range charged {
		for j := range c.Lines {
			if c.Lines[j].ItemID == charged[i].ItemID {
				c.SetQuantity(charged[i].ItemID, c.Lines[j].Quantity-charged[i].Quantity)
				break
			}
		}
	}
	if c.IsEmpty() {
		delete(s.carts, userID)
	}
}
