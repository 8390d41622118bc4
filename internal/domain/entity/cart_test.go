package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/kasirpos/internal/domain/enum"
)

func menuItem(id, name string, price int64) *MenuItem {
	return &MenuItem{ID: id, Name: name, Price: price, Available: true}
}

func TestCart_AddItem_MergesByID(t *testing.T) {
	c := NewCart()
	nasi := menuItem("1", "Nasi Goreng", 25000)

	c.AddItem(nasi)
	c.AddItem(nasi)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, int64(50000), c.Lines[0].Total())
}

func TestCart_AddItem_RefreshesLineFromCatalog(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Nasi Goreng", 25000))

	// Price changed in the catalog between adds.
	c.AddItem(menuItem("1", "Nasi Goreng Spesial", 28000))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "Nasi Goreng Spesial", c.Lines[0].Name)
	assert.Equal(t, int64(28000), c.Lines[0].UnitPrice)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Es Teh", 5000))

	c.SetQuantity("1", 4)
	assert.Equal(t, 4, c.Lines[0].Quantity)

	// Zero removes the line.
	c.SetQuantity("1", 0)
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantity_NegativeRemoves(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Es Teh", 5000))

	c.SetQuantity("1", -3)
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantity_UnknownIDNoOp(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Es Teh", 5000))

	c.SetQuantity("99", 3)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestCart_RemoveItem(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Es Teh", 5000))
	c.AddItem(menuItem("2", "Nasi Goreng", 25000))

	c.RemoveItem("1")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "2", c.Lines[0].ItemID)
}

func TestCart_Totals(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Nasi Goreng", 25000))
	c.AddItem(menuItem("2", "Ayam Bakar", 30000))

	totals := c.Totals()
	assert.Equal(t, int64(55000), totals.Subtotal)
	assert.Equal(t, int64(5500), totals.Tax)
	assert.Equal(t, int64(60500), totals.Total)
}

func TestCart_Totals_Empty(t *testing.T) {
	totals := NewCart().Totals()
	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Tax)
	assert.Equal(t, int64(0), totals.Total)
}

func TestTaxAmount_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, int64(1), TaxAmount(5))
	assert.Equal(t, int64(0), TaxAmount(4))
	assert.Equal(t, int64(2500), TaxAmount(25000))
}

func TestCart_ItemCount(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Es Teh", 5000))
	c.AddItem(menuItem("1", "Es Teh", 5000))
	c.AddItem(menuItem("2", "Nasi Goreng", 25000))

	assert.Equal(t, 3, c.ItemCount())
}

func TestNewTransaction_SnapshotsCart(t *testing.T) {
	c := NewCart()
	item := menuItem("1", "Nasi Goreng", 25000)
	c.AddItem(item)
	c.AddItem(item)
	c.AddItem(menuItem("2", "Es Teh", 5000))

	now := time.Date(2025, 3, 14, 18, 45, 0, 0, time.UTC)
	tx := NewTransaction(c, enum.PaymentCash, 100000, now)

	assert.Equal(t, "TRX-1741977900000", tx.ID)
	assert.Equal(t, "14/03/2025", tx.Date)
	assert.Equal(t, "18:45", tx.Time)
	require.Len(t, tx.Items, 2)
	assert.Equal(t, int64(55000), tx.Subtotal)
	assert.Equal(t, int64(5500), tx.Tax)
	assert.Equal(t, int64(60500), tx.Total)
	assert.Equal(t, int64(100000), tx.Tendered)
	assert.Equal(t, int64(39500), tx.Change)

	// Later catalog edits must not leak into the snapshot.
	item.Price = 99000
	assert.Equal(t, int64(25000), tx.Items[0].UnitPrice)
}

func TestNewTransaction_NonCashSkipsTender(t *testing.T) {
	c := NewCart()
	c.AddItem(menuItem("1", "Es Teh", 5000))

	tx := NewTransaction(c, enum.PaymentQRIS, 0, time.Now())

	assert.Equal(t, int64(0), tx.Tendered)
	assert.Equal(t, int64(0), tx.Change)
}
