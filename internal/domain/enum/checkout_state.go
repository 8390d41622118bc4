package enum

import "encoding/json"

// CheckoutState represents where an open checkout sits in the payment flow
type CheckoutState int

const (
	CheckoutIdle           CheckoutState = 0
	CheckoutMethodSelected CheckoutState = 1
	CheckoutValidating     CheckoutState = 2
	CheckoutProcessing     CheckoutState = 3
	CheckoutCompleted      CheckoutState = 4
	CheckoutCancelled      CheckoutState = 5
)

func (s CheckoutState) String() string {
	return [...]string{"idle", "method_selected", "validating", "processing", "completed", "cancelled"}[s]
}

// CanCancel reports whether the flow may still be abandoned. Once
// processing has started the flow runs to completion.
func (s CheckoutState) CanCancel() bool {
	return s == CheckoutIdle || s == CheckoutMethodSelected || s == CheckoutValidating
}

func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
