package application

// PaymentRequest is the inbound authorization request. It carries no
// identity; once validated and mapped it is discarded.
type PaymentRequest struct {
	CardNumber  string `json:"card_number" validate:"required,min=14,max=19,digits_only"`
	ExpiryMonth int    `json:"expiry_month" validate:"min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" validate:"min_current_year"`
	Currency    string `json:"currency" validate:"required,len=3,alpha,supported_currency"`
	AmountMinor int64  `json:"amount" validate:"gt=0"`
	CVV         string `json:"cvv" validate:"required,min=3,max=4,digits_only"`
}
