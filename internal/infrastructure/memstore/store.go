// Package memstore holds resolved payments for the lifetime of the
// process, keyed by identifier.
package memstore

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/acquirepay/payment-gateway/internal/domain"
)

// ErrPaymentNotFound is the miss result for a lookup. An expected
// outcome, distinguishable from a retrieval failure.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentStore is a mutex-guarded arena of payments. Records are
// stored and returned by value so callers can never alias or observe
// a partially-written record. No update or delete is exposed.
type PaymentStore struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]domain.Payment
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		payments: make(map[uuid.UUID]domain.Payment),
	}
}

// Insert stores a payment record. Well-formed records are never
// rejected and content is never deduplicated; identifier uniqueness is
// the mapper's guarantee.
func (s *PaymentStore) Insert(_ context.Context, payment *domain.Payment) error {
	if payment == nil {
		return domain.NewInvalidArgumentError("payment")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.ID] = *payment
	return nil
}

// FindByID returns a copy of the stored record, or ErrPaymentNotFound.
func (s *PaymentStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return &payment, nil
}

// Len reports the number of stored payments.
func (s *PaymentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}
