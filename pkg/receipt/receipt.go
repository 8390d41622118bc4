package receipt

import (
	"strconv"
	"strings"
)

// Receipt is the printable view of one completed sale. Amounts are in
// the smallest currency unit (whole rupiah).
type Receipt struct {
	StoreName     string
	StoreAddress  string
	StorePhone    string
	TransactionID string
	Date          string
	Time          string
	Cashier       string
	PaymentMethod string
	Items         []Item
	Subtotal      int64
	Tax           int64
	Total         int64
	Tendered      int64
	Change        int64
}

// Item is one line on the receipt.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice int64
	Total     int64
}

// Format renders the receipt into an ESC/POS byte stream.
func Format(r *Receipt, charWidth int) []byte {
	doc := NewDocument(charWidth)

	doc.SetAlign(AlignCenter).
		SetBold(true).
		SetFontSize(FontDouble).
		Text(r.StoreName).
		SetFontSize(FontNormal).
		SetBold(false)

	if r.StoreAddress != "" {
		doc.Text(r.StoreAddress)
	}
	if r.StorePhone != "" {
		doc.Text(r.StorePhone)
	}

	doc.SetAlign(AlignLeft).
		Separator('-')

	doc.KeyValue("No:", r.TransactionID).
		KeyValue("Date:", r.Date+" "+r.Time)
	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, Rupiah(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", Rupiah(item.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", Rupiah(r.Subtotal)).
		KeyValue("Pajak (10%):", Rupiah(r.Tax)).
		SetBold(true).
		KeyValue("TOTAL:", Rupiah(r.Total)).
		SetBold(false)

	if r.Tendered > 0 {
		doc.KeyValue("Tunai:", Rupiah(r.Tendered)).
			KeyValue("Kembalian:", Rupiah(r.Change))
	}

	doc.LineFeed().
		SetAlign(AlignCenter).
		Text("Terima kasih!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// Rupiah formats an amount with dot thousand separators, e.g. "Rp 55.000".
func Rupiah(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(s[i])
	}

	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
