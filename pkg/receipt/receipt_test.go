package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", Rupiah(0))
	assert.Equal(t, "Rp 500", Rupiah(500))
	assert.Equal(t, "Rp 5.000", Rupiah(5000))
	assert.Equal(t, "Rp 55.000", Rupiah(55000))
	assert.Equal(t, "Rp 1.500.000", Rupiah(1500000))
	assert.Equal(t, "-Rp 5.000", Rupiah(-5000))
}

func testReceipt() *Receipt {
	return &Receipt{
		StoreName:     "FoodKasir",
		StoreAddress:  "Jl. Merdeka 1",
		TransactionID: "TRX-1741977900000",
		Date:          "14/03/2025",
		Time:          "18:45",
		Cashier:       "admin",
		PaymentMethod: "cash",
		Items: []Item{
			{Name: "Nasi Goreng", Quantity: 2, UnitPrice: 25000, Total: 50000},
			{Name: "Es Teh", Quantity: 1, UnitPrice: 5000, Total: 5000},
		},
		Subtotal: 55000,
		Tax:      5500,
		Total:    60500,
		Tendered: 100000,
		Change:   39500,
	}
}

func TestFormat_CashReceipt(t *testing.T) {
	data := Format(testReceipt(), 32)
	require.NotEmpty(t, data)

	text := string(data)
	assert.Contains(t, text, "FoodKasir")
	assert.Contains(t, text, "TRX-1741977900000")
	assert.Contains(t, text, "Nasi Goreng")
	assert.Contains(t, text, "Pajak (10%):")
	assert.Contains(t, text, "Rp 60.500")
	assert.Contains(t, text, "Tunai:")
	assert.Contains(t, text, "Kembalian:")
	assert.Contains(t, text, "Rp 39.500")
	assert.Contains(t, text, "Terima kasih!")
}

func TestFormat_NonCashOmitsTenderLines(t *testing.T) {
	r := testReceipt()
	r.PaymentMethod = "qris"
	r.Tendered = 0
	r.Change = 0

	text := string(Format(r, 32))
	assert.NotContains(t, text, "Tunai:")
	assert.NotContains(t, text, "Kembalian:")
}

func TestFormat_EndsWithCut(t *testing.T) {
	data := Format(testReceipt(), 32)
	// GS V is the partial-cut command.
	require.GreaterOrEqual(t, len(data), 3)
	assert.Equal(t, byte(0x1D), data[len(data)-3])
	assert.Equal(t, byte('V'), data[len(data)-2])
}
