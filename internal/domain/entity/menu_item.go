package entity

import (
	"fmt"
	"time"
)

// MenuItem represents a sellable item in the catalog. Prices are stored
// in the smallest currency unit (whole rupiah).
type MenuItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Category  string    `json:"category"`
	ImageRef  string    `json:"image"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMenuItem creates a catalog item with a fresh time-based id, the same
// scheme the admin "add menu" action uses.
func NewMenuItem(name string, price int64, category, imageRef string) *MenuItem {
	return &MenuItem{
		ID:        fmt.Sprintf("custom-%d", time.Now().UnixMilli()),
		Name:      name,
		Price:     price,
		Category:  category,
		ImageRef:  imageRef,
		Available: true,
		CreatedAt: time.Now(),
	}
}
