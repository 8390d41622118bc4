package entity

// TaxPercent is the fixed value-added tax applied to every sale.
const TaxPercent = 10

// CartLine is one (item, quantity) pair in the active cart. Lines are
// unique by ItemID; a line whose quantity drops to zero is removed.
type CartLine struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	ImageRef  string `json:"image"`
}

// Total returns the line total in the smallest currency unit.
func (l *CartLine) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// CartTotals holds the computed amounts for the current cart.
type CartTotals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Cart is the ordered collection of lines the operator is building for
// the next sale. It lives only between checkouts and is cleared when a
// payment completes.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// AddItem merges the item into the cart: an existing line for the same
// item id gets its quantity incremented by one and its name, price and
// image refreshed from the catalog; otherwise a new line with quantity 1
// is appended. Always succeeds.
func (c *Cart) AddItem(item *MenuItem) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID {
			c.Lines[i].Quantity++
			c.Lines[i].Name = item.Name
			c.Lines[i].UnitPrice = item.Price
			c.Lines[i].ImageRef = item.ImageRef
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
		ImageRef:  item.ImageRef,
	})
}

// SetQuantity sets the quantity for the given line. A quantity of zero
// or below removes the line entirely. Unknown item ids are a no-op.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line for the given item id if present.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Lines {
		count += c.Lines[i].Quantity
	}
	return count
}

// Totals computes subtotal, tax and total for the current lines. Pure
// function of the cart contents; no side effects.
func (c *Cart) Totals() CartTotals {
	var subtotal int64
	for i := range c.Lines {
		subtotal += c.Lines[i].Total()
	}
	return CartTotals{
		Subtotal: subtotal,
		Tax:      TaxAmount(subtotal),
		Total:    subtotal + TaxAmount(subtotal),
	}
}

// TaxAmount returns the 10% VAT on the given subtotal, rounded half up
// to the smallest currency unit.
func TaxAmount(subtotal int64) int64 {
	return (subtotal*TaxPercent + 50) / 100
}
