package enum

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a sale is settled at the counter
type PaymentMethod int

const (
	PaymentCash    PaymentMethod = 0
	PaymentDebit   PaymentMethod = 1
	PaymentQRIS    PaymentMethod = 2
	PaymentEWallet PaymentMethod = 3
)

func (m PaymentMethod) String() string {
	return [...]string{"cash", "debit", "qris", "ewallet"}[m]
}

// RequiresTender reports whether the method needs a tendered amount
// before confirmation is allowed. Only cash does; the card and QR
// methods are presentation-only placeholders with no gateway call.
func (m PaymentMethod) RequiresTender() bool {
	return m == PaymentCash
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParsePaymentMethod maps a method name to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return PaymentCash, nil
	case "debit":
		return PaymentDebit, nil
	case "qris":
		return PaymentQRIS, nil
	case "ewallet":
		return PaymentEWallet, nil
	default:
		return PaymentCash, fmt.Errorf("unknown payment method %q", s)
	}
}
