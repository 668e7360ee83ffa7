package application

import (
	"github.com/google/uuid"

	"github.com/acquirepay/payment-gateway/internal/domain"
)

// PaymentResponse is returned right after an authorization attempt.
// Only the last four characters of the card number are ever exposed.
type PaymentResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Status             domain.PaymentStatus `json:"status"`
	CardNumberLastFour string               `json:"card_number_last_four"`
	ExpiryMonth        int                  `json:"expiry_month"`
	ExpiryYear         int                  `json:"expiry_year"`
	Currency           string               `json:"currency"`
	AmountMinor        int64                `json:"amount"`
}

// GetPaymentResponse is the masked projection served on retrieval.
// Same shape as PaymentResponse today; kept separate because the two
// call sites evolve independently.
type GetPaymentResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Status             domain.PaymentStatus `json:"status"`
	CardNumberLastFour string               `json:"card_number_last_four"`
	ExpiryMonth        int                  `json:"expiry_month"`
	ExpiryYear         int                  `json:"expiry_year"`
	Currency           string               `json:"currency"`
	AmountMinor        int64                `json:"amount"`
}
