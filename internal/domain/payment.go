// Package domain encodes the payment entity and its lifecycle.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the current state of a payment in its lifecycle
type PaymentStatus string

const (
	// StatusPending exists only between record creation and the bank
	// call resolving. It is never visible to a caller.
	StatusPending    PaymentStatus = "PENDING"
	StatusAuthorized PaymentStatus = "AUTHORIZED"
	StatusDeclined   PaymentStatus = "DECLINED"
)

type Payment struct {
	ID          uuid.UUID
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	AmountMinor int64
	CVV         string
	Status      PaymentStatus

	CreatedAt time.Time
}

// Resolve sets the terminal status from the bank's authorized flag.
// A payment resolves exactly once; resolving an already-terminal
// payment is an invalid transition.
func (p *Payment) Resolve(authorized bool) error {
	if p.Status != StatusPending {
		target := StatusDeclined
		if authorized {
			target = StatusAuthorized
		}
		return NewInvalidTransitionError(p.Status, target)
	}
	if authorized {
		p.Status = StatusAuthorized
	} else {
		p.Status = StatusDeclined
	}
	return nil
}

// IsTerminal reports whether the payment has reached a final status.
func (p *Payment) IsTerminal() bool {
	switch p.Status {
	case StatusAuthorized, StatusDeclined:
		return true
	default:
		return false
	}
}
