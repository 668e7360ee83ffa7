// Package mapper holds the pure projections between the shapes in the
// authorization pipeline: inbound request, payment record, bank request
// and the outward responses.
package mapper

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acquirepay/payment-gateway/internal/application"
	"github.com/acquirepay/payment-gateway/internal/domain"
	"github.com/acquirepay/payment-gateway/internal/infrastructure/bank"
)

// FromRequest builds a new pending payment from a validated request.
// The identifier is assigned here, exactly once.
func FromRequest(req *application.PaymentRequest) (*domain.Payment, error) {
	if req == nil {
		return nil, domain.NewInvalidArgumentError("payment request")
	}

	return &domain.Payment{
		ID:          uuid.New(),
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		AmountMinor: req.AmountMinor,
		CVV:         req.CVV,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ToBankRequest projects a payment onto the bank's wire shape. Expiry
// is formatted as MM/YY with zero-padding, e.g. month 3 year 2027
// becomes "03/27".
func ToBankRequest(payment *domain.Payment) (*bank.AuthorizationRequest, error) {
	if payment == nil {
		return nil, domain.NewInvalidArgumentError("payment")
	}

	return &bank.AuthorizationRequest{
		CardNumber: payment.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%02d", payment.ExpiryMonth, payment.ExpiryYear%100),
		Currency:   payment.Currency,
		Amount:     payment.AmountMinor,
		Cvv:        payment.CVV,
	}, nil
}

// ToPaymentResponse builds the caller-facing result right after an
// authorization attempt resolves.
func ToPaymentResponse(payment *domain.Payment) (*application.PaymentResponse, error) {
	if payment == nil {
		return nil, domain.NewInvalidArgumentError("payment")
	}

	return &application.PaymentResponse{
		ID:                 payment.ID,
		Status:             payment.Status,
		CardNumberLastFour: lastFour(payment.CardNumber),
		ExpiryMonth:        payment.ExpiryMonth,
		ExpiryYear:         payment.ExpiryYear,
		Currency:           payment.Currency,
		AmountMinor:        payment.AmountMinor,
	}, nil
}

// ToGetPaymentResponse builds the masked projection for retrieval.
func ToGetPaymentResponse(payment *domain.Payment) (*application.GetPaymentResponse, error) {
	if payment == nil {
		return nil, domain.NewInvalidArgumentError("payment")
	}

	return &application.GetPaymentResponse{
		ID:                 payment.ID,
		Status:             payment.Status,
		CardNumberLastFour: lastFour(payment.CardNumber),
		ExpiryMonth:        payment.ExpiryMonth,
		ExpiryYear:         payment.ExpiryYear,
		Currency:           payment.Currency,
		AmountMinor:        payment.AmountMinor,
	}, nil
}

// lastFour returns the final four characters of the card number, or
// the full string when it is shorter than four.
func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
