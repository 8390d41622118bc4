package request

// AddToCartRequest adds one unit of an item to the cart
type AddToCartRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// SetQuantityRequest sets the absolute quantity of a cart line
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
