package entity

import (
	"fmt"
	"time"

	"github.com/sangkips/kasirpos/internal/domain/enum"
)

// Date and time layouts used on recorded transactions. Comparison with
// "today" is string equality on the same layout, never a range query.
const (
	TransactionDateLayout = "02/01/2006"
	TransactionTimeLayout = "15:04"
)

// TransactionItem is an immutable snapshot of a cart line at the moment
// payment completed. It is decoupled from the live MenuItem so later
// catalog edits never alter recorded history.
type TransactionItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Transaction is one completed sale. Created exactly once per confirmed
// payment and immutable afterwards.
type Transaction struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	Time          string             `json:"time"`
	Items         []TransactionItem  `json:"items"`
	Subtotal      int64              `json:"subtotal"`
	Tax           int64              `json:"tax"`
	Total         int64              `json:"total"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Tendered      int64              `json:"tendered,omitempty"`
	Change        int64              `json:"change,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// NewTransaction snapshots the cart into a sale record stamped with the
// given time. Totals are recomputed from the snapshot so the stored
// invariants (subtotal, 10% tax, total) always hold.
func NewTransaction(cart *Cart, method enum.PaymentMethod, tendered int64, now time.Time) *Transaction {
	items := make([]TransactionItem, 0, len(cart.Lines))
	var subtotal int64
	for i := range cart.Lines {
		line := &cart.Lines[i]
		items = append(items, TransactionItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
		subtotal += line.Total()
	}

	tax := TaxAmount(subtotal)
	total := subtotal + tax

	tx := &Transaction{
		ID:            fmt.Sprintf("TRX-%d", now.UnixMilli()),
		Date:          now.Format(TransactionDateLayout),
		Time:          now.Format(TransactionTimeLayout),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: method,
		CreatedAt:     now,
	}
	if method == enum.PaymentCash {
		tx.Tendered = tendered
		tx.Change = tendered - total
	}
	return tx
}
