package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/acquirepay/payment-gateway/internal/domain"
)

// PaymentStore is the port for payment storage. Records are immutable
// once inserted; there is no update or delete.
type PaymentStore interface {
	Insert(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
}
