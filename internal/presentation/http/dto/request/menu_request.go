package request

// CreateMenuItemRequest represents a new catalog item
type CreateMenuItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"required"`
	Category string `json:"category"`
	ImageRef string `json:"image_ref"`
}

// SetAvailabilityRequest toggles whether an item can be sold
type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
