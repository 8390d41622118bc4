package request

// SelectMethodRequest picks the payment method for the open checkout
type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// SetTenderedRequest records the cash amount handed over
type SetTenderedRequest struct {
	Amount *int64 `json:"amount" binding:"required"`
}
